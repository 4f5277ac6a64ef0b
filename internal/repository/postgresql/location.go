package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/geoattend/attendance-backend-go/internal/domain/location"
	"github.com/geoattend/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.Repository {
	return &locationRepository{db: db}
}

const locationColumns = `
	id, name, latitude, longitude, radius_meters, location_code, location_type,
	is_active, created_at, updated_at`

func scanLocation(row pgx.Row) (location.Location, error) {
	var l location.Location
	err := row.Scan(
		&l.ID, &l.Name, &l.Latitude, &l.Longitude, &l.RadiusMeters,
		&l.LocationCode, &l.LocationType, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// GetByID implements location.Repository.
func (r *locationRepository) GetByID(ctx context.Context, id string) (location.Location, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE id = $1
	`

	l, err := scanLocation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to get location by ID: %w", err)
	}

	return l, nil
}

// Search implements location.Repository.
func (r *locationRepository) Search(ctx context.Context, locationCode, locationType string) ([]location.Location, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE is_active = TRUE
		  AND location_code ILIKE '%' || $1 || '%'
		  AND location_type ILIKE '%' || $2 || '%'
		ORDER BY location_code ASC
	`

	rows, err := q.Query(ctx, query, locationCode, locationType)
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	defer rows.Close()

	return collectLocations(rows)
}

// SearchExact implements location.Repository.
func (r *locationRepository) SearchExact(ctx context.Context, locationCode, locationType string) ([]location.Location, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE is_active = TRUE
		  AND location_code = $1
		  AND ($2 = '' OR location_type = $2)
		ORDER BY location_code ASC
	`

	rows, err := q.Query(ctx, query, locationCode, locationType)
	if err != nil {
		return nil, fmt.Errorf("failed to search locations exactly: %w", err)
	}
	defer rows.Close()

	return collectLocations(rows)
}

func collectLocations(rows pgx.Rows) ([]location.Location, error) {
	var locations []location.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read locations: %w", err)
	}
	return locations, nil
}
