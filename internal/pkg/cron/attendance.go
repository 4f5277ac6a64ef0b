package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/geoattend/attendance-backend-go/internal/domain/attendance"
)

// staleAfter is how long a session may stay open before the reporter
// flags it. Sessions are never auto-closed; an open session from a prior
// day stays open until the employee checks out.
const staleAfter = 24 * time.Hour

type AttendanceJobs struct {
	attendanceRepo attendance.Repository
}

func NewAttendanceJobs(attendanceRepo attendance.Repository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("report_stale_open_sessions", 1*time.Hour, j.ReportStaleOpenSessions)
}

// ReportStaleOpenSessions logs sessions that have been open longer than
// staleAfter so operators can chase missing check-outs.
func (j *AttendanceJobs) ReportStaleOpenSessions(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-staleAfter)

	sessions, err := j.attendanceRepo.ListOpenSessionsBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale open sessions: %w", err)
	}

	for _, s := range sessions {
		slog.Warn("Attendance session open for more than 24h",
			"session_id", s.ID,
			"employee_id", s.EmployeeID,
			"check_in_at", s.CheckInAt,
		)
	}

	if len(sessions) > 0 {
		slog.Info("Stale open session report complete", "count", len(sessions))
	}

	return nil
}
