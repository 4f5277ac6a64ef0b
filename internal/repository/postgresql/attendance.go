package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geoattend/attendance-backend-go/internal/domain/attendance"
	"github.com/geoattend/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const sessionColumns = `
	id, employee_id, date, check_in_at, check_in_latitude, check_in_longitude,
	check_in_location_code, check_out_at, check_out_latitude, check_out_longitude,
	check_out_location_code, check_out_location_type, location_verified,
	location_type, work_hours, created_at, updated_at`

func scanSession(row pgx.Row) (attendance.Session, error) {
	var s attendance.Session
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.CheckInAt, &s.CheckInLatitude, &s.CheckInLongitude,
		&s.CheckInLocationCode, &s.CheckOutAt, &s.CheckOutLatitude, &s.CheckOutLongitude,
		&s.CheckOutLocationCode, &s.CheckOutLocationType, &s.LocationVerified,
		&s.LocationType, &s.WorkHours, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	ctx, cancel := a.db.WithTimeout(ctx)
	defer cancel()

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Session{}, fmt.Errorf("failed to generate session id: %w", err)
	}
	session.ID = id.String()

	// Locking the open row (if any) and inserting in one transaction
	// keeps check-then-act serialized; the partial unique index catches
	// the remaining insert/insert race and turns it into a conflict.
	err = WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, a.db)

		var openID string
		err := q.QueryRow(txCtx, `
			SELECT id FROM attendance_sessions
			WHERE employee_id = $1
			  AND check_out_at IS NULL
			LIMIT 1
			FOR UPDATE
		`, session.EmployeeID).Scan(&openID)
		if err == nil {
			return attendance.ErrSessionAlreadyOpen
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check for open session: %w", err)
		}

		query := `
			INSERT INTO attendance_sessions (
				id, employee_id, date, check_in_at, check_in_latitude, check_in_longitude,
				check_in_location_code, location_verified, location_type
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9
			) RETURNING created_at, updated_at
		`

		return q.QueryRow(txCtx, query,
			session.ID,
			session.EmployeeID,
			session.Date,
			session.CheckInAt,
			session.CheckInLatitude,
			session.CheckInLongitude,
			session.CheckInLocationCode,
			session.LocationVerified,
			session.LocationType,
		).Scan(&session.CreatedAt, &session.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, attendance.ErrSessionAlreadyOpen) {
			return attendance.Session{}, attendance.ErrSessionAlreadyOpen
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return attendance.Session{}, attendance.ErrSessionAlreadyOpen
		}
		return attendance.Session{}, fmt.Errorf("failed to create attendance session: %w", err)
	}

	return session, nil
}

// GetOpenSession implements attendance.Repository.
func (a *attendanceRepository) GetOpenSession(ctx context.Context, employeeID string) (attendance.Session, error) {
	ctx, cancel := a.db.WithTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND check_out_at IS NULL
		ORDER BY check_in_at DESC
		LIMIT 1
	`

	s, err := scanSession(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrNoOpenSession
		}
		return attendance.Session{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return s, nil
}

// Close implements attendance.Repository.
func (a *attendanceRepository) Close(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	ctx, cancel := a.db.WithTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_sessions
		SET check_out_at = $2,
		    check_out_latitude = $3,
		    check_out_longitude = $4,
		    check_out_location_code = $5,
		    check_out_location_type = $6,
		    work_hours = $7,
		    updated_at = NOW()
		WHERE id = $1
		  AND check_out_at IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		session.ID,
		session.CheckOutAt,
		session.CheckOutLatitude,
		session.CheckOutLongitude,
		session.CheckOutLocationCode,
		session.CheckOutLocationType,
		session.WorkHours,
	).Scan(&session.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Row vanished or was closed by a concurrent request.
			return attendance.Session{}, attendance.ErrNoOpenSession
		}
		return attendance.Session{}, fmt.Errorf("failed to close attendance session: %w", err)
	}

	return session, nil
}

// ListByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Session, error) {
	ctx, cancel := a.db.WithTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND date = $2
		ORDER BY check_in_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by date: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

// ListByEmployeeAndDateRange implements attendance.Repository.
func (a *attendanceRepository) ListByEmployeeAndDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Session, error) {
	ctx, cancel := a.db.WithTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date DESC, check_in_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by date range: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

// ListOpenSessionsBefore implements attendance.Repository.
func (a *attendanceRepository) ListOpenSessionsBefore(ctx context.Context, cutoff time.Time) ([]attendance.Session, error) {
	ctx, cancel := a.db.WithTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE check_out_at IS NULL
		  AND check_in_at < $1
		ORDER BY check_in_at ASC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale open sessions: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

func collectSessions(rows pgx.Rows) ([]attendance.Session, error) {
	var sessions []attendance.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance sessions: %w", err)
	}
	return sessions, nil
}
