package attendance

import (
	"time"

	"github.com/geoattend/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationID   *string `json:"location_id,omitempty"`
	LocationCode *string `json:"location_code,omitempty"`
	LocationType *string `json:"location_type,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.LocationID != nil && !validator.IsValidUUID(*r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "location_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationCode *string `json:"location_code,omitempty"`
	LocationType *string `json:"location_type,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type SessionResponse struct {
	ID                   string   `json:"id"`
	EmployeeID           string   `json:"employee_id"`
	Date                 string   `json:"date"`
	CheckInAt            string   `json:"check_in_at"`
	CheckInLatitude      float64  `json:"check_in_latitude"`
	CheckInLongitude     float64  `json:"check_in_longitude"`
	CheckInLocationCode  *string  `json:"check_in_location_code,omitempty"`
	CheckOutAt           *string  `json:"check_out_at,omitempty"`
	CheckOutLatitude     *float64 `json:"check_out_latitude,omitempty"`
	CheckOutLongitude    *float64 `json:"check_out_longitude,omitempty"`
	CheckOutLocationCode *string  `json:"check_out_location_code,omitempty"`
	CheckOutLocationType *string  `json:"check_out_location_type,omitempty"`
	LocationVerified     bool     `json:"location_verified"`
	LocationType         *string  `json:"location_type,omitempty"`
	WorkHours            *float64 `json:"work_hours,omitempty"`
}

type DailySummaryResponse struct {
	Date              string  `json:"date"`
	TotalSessions     int     `json:"total_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
	OngoingSessions   int     `json:"ongoing_sessions"`
	TotalHours        float64 `json:"total_hours"`
	FirstCheckInAt    *string `json:"first_check_in_at,omitempty"`
	LastCheckOutAt    *string `json:"last_check_out_at,omitempty"`
}

type CheckInResponse struct {
	Session SessionResponse      `json:"session"`
	Summary DailySummaryResponse `json:"summary"`
}

type StatusResponse struct {
	IsCheckedIn    bool                 `json:"is_checked_in"`
	CurrentSession *SessionResponse     `json:"current_session,omitempty"`
	TodaySessions  []SessionResponse    `json:"today_sessions"`
	DailySummary   DailySummaryResponse `json:"daily_summary"`
}

const timestampFormat = "2006-01-02 15:04:05"

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(timestampFormat)
	return &format
}

func NewSessionResponse(s Session) SessionResponse {
	return SessionResponse{
		ID:                   s.ID,
		EmployeeID:           s.EmployeeID,
		Date:                 s.Date.Format("2006-01-02"),
		CheckInAt:            s.CheckInAt.Format(timestampFormat),
		CheckInLatitude:      s.CheckInLatitude,
		CheckInLongitude:     s.CheckInLongitude,
		CheckInLocationCode:  s.CheckInLocationCode,
		CheckOutAt:           timePtrToString(s.CheckOutAt),
		CheckOutLatitude:     s.CheckOutLatitude,
		CheckOutLongitude:    s.CheckOutLongitude,
		CheckOutLocationCode: s.CheckOutLocationCode,
		CheckOutLocationType: s.CheckOutLocationType,
		LocationVerified:     s.LocationVerified,
		LocationType:         s.LocationType,
		WorkHours:            s.WorkHours,
	}
}

func NewSessionResponses(sessions []Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, NewSessionResponse(s))
	}
	return out
}

func NewDailySummaryResponse(d DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		Date:              d.Date.Format("2006-01-02"),
		TotalSessions:     d.TotalSessions,
		CompletedSessions: d.CompletedSessions,
		OngoingSessions:   d.OngoingSessions,
		TotalHours:        d.TotalHours,
		FirstCheckInAt:    timePtrToString(d.FirstCheckInAt),
		LastCheckOutAt:    timePtrToString(d.LastCheckOutAt),
	}
}
