package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/geoattend/attendance-backend-go/internal/domain/attendance"
	"github.com/geoattend/attendance-backend-go/internal/domain/employee"
	"github.com/geoattend/attendance-backend-go/internal/domain/location"
	"github.com/geoattend/attendance-backend-go/internal/pkg/geo"
	"github.com/geoattend/attendance-backend-go/internal/pkg/validator"
)

const (
	minSummaryDays = 1
	maxSummaryDays = 365
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	locationRepo   location.Repository

	// now is swapped for a frozen clock in tests.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	locationRepo location.Repository,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		locationRepo:   locationRepo,
		now:            time.Now,
	}
}

// businessDay truncates an instant to its UTC calendar date.
func businessDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

func roundHours(d time.Duration) float64 {
	hours := d.Hours()
	if hours < 0 {
		hours = 0
	}
	return math.Round(hours*100) / 100
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.CheckInResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// Check-then-act: the partial unique index backstops this read under
	// concurrent check-ins for the same employee.
	_, err = s.attendanceRepo.GetOpenSession(ctx, req.EmployeeID)
	if err == nil {
		return attendance.CheckInResponse{}, attendance.ErrSessionAlreadyOpen
	}
	if !errors.Is(err, attendance.ErrNoOpenSession) {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to check for open session: %w", err)
	}

	verified, err := s.verifyLocation(ctx, req, emp)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	nowUTC := s.now().UTC()
	session := attendance.Session{
		EmployeeID: req.EmployeeID,

		// The business day is fixed at creation and never changes.
		Date: businessDay(nowUTC),

		CheckInAt:           nowUTC,
		CheckInLatitude:     req.Latitude,
		CheckInLongitude:    req.Longitude,
		CheckInLocationCode: req.LocationCode,
		LocationVerified:    verified,
		LocationType:        req.LocationType,
	}

	created, err := s.attendanceRepo.Create(ctx, session)
	if err != nil {
		if errors.Is(err, attendance.ErrSessionAlreadyOpen) {
			return attendance.CheckInResponse{}, attendance.ErrSessionAlreadyOpen
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to create session: %w", err)
	}

	summary, err := s.summarizeDay(ctx, req.EmployeeID, created.Date)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{
		Session: attendance.NewSessionResponse(created),
		Summary: attendance.NewDailySummaryResponse(summary),
	}, nil
}

// verifyLocation decides the location_verified flag for a check-in. A
// failed geofence check never blocks the check-in, it only marks the
// session unverified.
func (s *AttendanceServiceImpl) verifyLocation(ctx context.Context, req attendance.CheckInRequest, emp employee.Employee) (bool, error) {
	// The "others" sentinel skips geofencing entirely; the free-text
	// location code is stored verbatim.
	if req.LocationType != nil && strings.EqualFold(*req.LocationType, attendance.LocationTypeOthers) {
		return false, nil
	}

	locationID := req.LocationID
	explicit := locationID != nil
	if locationID == nil {
		locationID = emp.LocationID
	}
	if locationID == nil {
		return false, nil
	}

	loc, err := s.locationRepo.GetByID(ctx, *locationID)
	if err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			if explicit {
				return false, location.ErrLocationNotFound
			}
			// A dangling default assignment just means unverified.
			return false, nil
		}
		return false, fmt.Errorf("failed to get location: %w", err)
	}

	point := geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}
	center := geo.Point{Latitude: loc.Latitude, Longitude: loc.Longitude}
	return geo.IsWithinRadius(point, center, loc.RadiusMeters), nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.CheckInResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	session, err := s.attendanceRepo.GetOpenSession(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenSession) {
			return attendance.CheckInResponse{}, attendance.ErrNoOpenSession
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	nowUTC := s.now().UTC()
	workHours := roundHours(nowUTC.Sub(session.CheckInAt))

	session.CheckOutAt = &nowUTC
	session.CheckOutLatitude = &req.Latitude
	session.CheckOutLongitude = &req.Longitude
	session.CheckOutLocationCode = req.LocationCode
	session.CheckOutLocationType = req.LocationType
	session.WorkHours = &workHours

	closed, err := s.attendanceRepo.Close(ctx, session)
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenSession) {
			return attendance.CheckInResponse{}, attendance.ErrNoOpenSession
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to close session: %w", err)
	}

	summary, err := s.summarizeDay(ctx, req.EmployeeID, closed.Date)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{
		Session: attendance.NewSessionResponse(closed),
		Summary: attendance.NewDailySummaryResponse(summary),
	}, nil
}

// Status implements attendance.Service.
func (s *AttendanceServiceImpl) Status(ctx context.Context, employeeID string) (attendance.StatusResponse, error) {
	if validator.IsEmpty(employeeID) {
		return attendance.StatusResponse{}, validator.ValidationErrors{
			{Field: "employee_id", Message: "employee_id is required"},
		}
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.StatusResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.StatusResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	resp := attendance.StatusResponse{}

	// Open sessions are found across all dates; a session left open
	// yesterday still counts as checked in today.
	current, err := s.attendanceRepo.GetOpenSession(ctx, employeeID)
	switch {
	case err == nil:
		resp.IsCheckedIn = true
		currentResp := attendance.NewSessionResponse(current)
		resp.CurrentSession = &currentResp
	case errors.Is(err, attendance.ErrNoOpenSession):
		// not checked in
	default:
		return attendance.StatusResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	today := businessDay(s.now())
	todaySessions, err := s.attendanceRepo.ListByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to list today's sessions: %w", err)
	}

	resp.TodaySessions = attendance.NewSessionResponses(todaySessions)
	resp.DailySummary = attendance.NewDailySummaryResponse(attendance.Summarize(today, todaySessions))

	return resp, nil
}

// Summary implements attendance.Service.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, employeeID string, days int) ([]attendance.DailySummaryResponse, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if days < minSummaryDays || days > maxSummaryDays {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: fmt.Sprintf("days must be between %d and %d", minSummaryDays, maxSummaryDays),
		})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	to := businessDay(s.now())
	from := to.AddDate(0, 0, -(days - 1))

	sessions, err := s.attendanceRepo.ListByEmployeeAndDateRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	// Rows arrive ordered by date descending; grouping preserves that, so
	// the rollups come out most-recent-first and days without sessions
	// never appear.
	summaries := make([]attendance.DailySummaryResponse, 0)
	var groupDate time.Time
	var group []attendance.Session
	flush := func() {
		if len(group) == 0 {
			return
		}
		summaries = append(summaries, attendance.NewDailySummaryResponse(attendance.Summarize(groupDate, group)))
		group = nil
	}
	for _, session := range sessions {
		if !session.Date.Equal(groupDate) {
			flush()
			groupDate = session.Date
		}
		group = append(group, session)
	}
	flush()

	return summaries, nil
}

func (s *AttendanceServiceImpl) summarizeDay(ctx context.Context, employeeID string, date time.Time) (attendance.DailySummary, error) {
	sessions, err := s.attendanceRepo.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.DailySummary{}, fmt.Errorf("failed to list sessions for summary: %w", err)
	}
	return attendance.Summarize(date, sessions), nil
}
