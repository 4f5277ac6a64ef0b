package location

type LocationResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
	LocationCode string  `json:"location_code"`
	LocationType string  `json:"location_type"`
}

func NewLocationResponses(locations []Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, LocationResponse{
			ID:           l.ID,
			Name:         l.Name,
			Latitude:     l.Latitude,
			Longitude:    l.Longitude,
			RadiusMeters: l.RadiusMeters,
			LocationCode: l.LocationCode,
			LocationType: l.LocationType,
		})
	}
	return out
}
