package http

import (
	"net/http"

	"github.com/geoattend/attendance-backend-go/internal/handler/http/response"
	locationService "github.com/geoattend/attendance-backend-go/internal/service/location"
)

type LocationHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
	SearchExact(w http.ResponseWriter, r *http.Request)
}

type locationHandlerImpl struct {
	locationService locationService.Service
}

func NewLocationHandler(svc locationService.Service) LocationHandler {
	return &locationHandlerImpl{
		locationService: svc,
	}
}

// Search implements LocationHandler.
func (h *locationHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("location_code")
	locType := r.URL.Query().Get("location_type")

	result, err := h.locationService.Search(r.Context(), code, locType)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SearchExact implements LocationHandler.
func (h *locationHandlerImpl) SearchExact(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("location_code")
	locType := r.URL.Query().Get("location_type")

	result, err := h.locationService.SearchExact(r.Context(), code, locType)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
