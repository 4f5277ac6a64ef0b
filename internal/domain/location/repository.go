package location

import "context"

type Repository interface {
	// GetByID returns ErrLocationNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (Location, error)

	// Search matches location_code and location_type as case-insensitive
	// substrings; empty filters match everything.
	Search(ctx context.Context, locationCode, locationType string) ([]Location, error)

	// SearchExact matches location_code and location_type exactly.
	SearchExact(ctx context.Context, locationCode, locationType string) ([]Location, error)
}
