package location

import "time"

// Location is a registered geofence: a circular area around a center
// point. Read-only from the attendance core's perspective.
type Location struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	LocationCode string
	LocationType string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
