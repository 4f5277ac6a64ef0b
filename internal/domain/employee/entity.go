package employee

import "time"

// Employee is read-only from the attendance core's perspective; the
// directory owns the records.
type Employee struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber *string
	PINCode     *string
	LocationID  *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
