package attendance

import "time"

// DailySummary is derived from session rows on demand and never stored,
// so it cannot drift from the underlying sessions.
type DailySummary struct {
	Date              time.Time
	TotalSessions     int
	CompletedSessions int
	OngoingSessions   int
	TotalHours        float64
	FirstCheckInAt    *time.Time
	LastCheckOutAt    *time.Time
}

// Summarize aggregates the sessions of one employee on one business day.
// Sessions for other dates are the caller's filtering problem; every row
// passed in is counted.
func Summarize(date time.Time, sessions []Session) DailySummary {
	summary := DailySummary{
		Date:          date,
		TotalSessions: len(sessions),
	}

	for i := range sessions {
		s := &sessions[i]

		if s.IsOpen() {
			summary.OngoingSessions++
		} else {
			summary.CompletedSessions++
			if s.WorkHours != nil {
				summary.TotalHours += *s.WorkHours
			}
			if summary.LastCheckOutAt == nil || s.CheckOutAt.After(*summary.LastCheckOutAt) {
				checkOut := *s.CheckOutAt
				summary.LastCheckOutAt = &checkOut
			}
		}

		if summary.FirstCheckInAt == nil || s.CheckInAt.Before(*summary.FirstCheckInAt) {
			checkIn := s.CheckInAt
			summary.FirstCheckInAt = &checkIn
		}
	}

	return summary
}
