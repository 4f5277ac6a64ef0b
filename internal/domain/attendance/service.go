package attendance

import "context"

type Service interface {
	// CheckIn opens a new session for the employee, verifying the
	// geofence when a location reference applies.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut closes the employee's open session and computes the
	// worked hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckInResponse, error)

	// Status returns the composite read-only view for one employee.
	Status(ctx context.Context, employeeID string) (StatusResponse, error)

	// Summary returns per-day rollups covering the last days calendar
	// days, most recent first, omitting days without sessions.
	Summary(ctx context.Context, employeeID string, days int) ([]DailySummaryResponse, error)
}
