package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance sessions.
type Repository interface {
	// Create inserts a new session row. Multiple sessions per employee per
	// day are allowed; only one of them may be open at a time.
	Create(ctx context.Context, session Session) (Session, error)

	// GetOpenSession returns the most recently opened session without a
	// check-out, scanning across all dates. Returns ErrNoOpenSession when
	// the employee has nothing open.
	GetOpenSession(ctx context.Context, employeeID string) (Session, error)

	// Close writes the check-out fields of an existing session.
	Close(ctx context.Context, session Session) (Session, error)

	// ListByEmployeeAndDate returns all sessions for one business day,
	// ordered by check-in time ascending.
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Session, error)

	// ListByEmployeeAndDateRange returns sessions with date in [from, to]
	// inclusive, ordered by date descending then check-in ascending.
	ListByEmployeeAndDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]Session, error)

	// ListOpenSessionsBefore returns open sessions whose check-in is older
	// than the cutoff. Used by the stale-session reporter job.
	ListOpenSessionsBefore(ctx context.Context, cutoff time.Time) ([]Session, error)
}
