package location

import (
	"context"
	"fmt"
	"strings"

	"github.com/geoattend/attendance-backend-go/internal/domain/location"
	"github.com/geoattend/attendance-backend-go/internal/pkg/validator"
)

type Service interface {
	Search(ctx context.Context, locationCode, locationType string) ([]location.LocationResponse, error)
	SearchExact(ctx context.Context, locationCode, locationType string) ([]location.LocationResponse, error)
}

type LocationServiceImpl struct {
	locationRepo location.Repository
}

func NewLocationService(locationRepo location.Repository) Service {
	return &LocationServiceImpl{locationRepo: locationRepo}
}

// Search implements Service.
func (s *LocationServiceImpl) Search(ctx context.Context, locationCode, locationType string) ([]location.LocationResponse, error) {
	locations, err := s.locationRepo.Search(ctx, strings.TrimSpace(locationCode), strings.TrimSpace(locationType))
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	return location.NewLocationResponses(locations), nil
}

// SearchExact implements Service.
func (s *LocationServiceImpl) SearchExact(ctx context.Context, locationCode, locationType string) ([]location.LocationResponse, error) {
	code := strings.TrimSpace(locationCode)
	if validator.IsEmpty(code) {
		return nil, validator.ValidationErrors{
			{Field: "location_code", Message: "location_code is required"},
		}
	}

	locations, err := s.locationRepo.SearchExact(ctx, code, strings.TrimSpace(locationType))
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}
	return location.NewLocationResponses(locations), nil
}
