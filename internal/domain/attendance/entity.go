package attendance

import (
	"time"
)

// LocationTypeOthers skips geofence verification entirely; the free-text
// location code is stored verbatim. Matched case-insensitively.
const LocationTypeOthers = "others"

type Session struct {
	ID                   string
	EmployeeID           string
	Date                 time.Time
	CheckInAt            time.Time
	CheckInLatitude      float64
	CheckInLongitude     float64
	CheckInLocationCode  *string
	CheckOutAt           *time.Time
	CheckOutLatitude     *float64
	CheckOutLongitude    *float64
	CheckOutLocationCode *string
	CheckOutLocationType *string
	LocationVerified     bool
	LocationType         *string
	WorkHours            *float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsOpen reports whether the session has not been checked out yet.
func (s Session) IsOpen() bool {
	return s.CheckOutAt == nil
}
