package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/geoattend/attendance-backend-go/internal/domain/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	loginFn func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return f.loginFn(ctx, req)
}

func newAuthTestRouter(svc auth.Service) *chi.Mux {
	h := NewAuthHandler(svc)
	r := chi.NewRouter()
	r.Post("/auth/login", h.Login)
	return r
}

func TestLoginHandler_Success(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
			return auth.LoginResponse{
				EmployeeID:  req.EmployeeID,
				Name:        "Asha Verma",
				Email:       "asha@example.com",
				AccessToken: "token",
				ExpiresAt:   1234567890,
			}, nil
		},
	}
	r := newAuthTestRouter(svc)

	rec := doJSON(t, r, http.MethodPost, "/auth/login", map[string]interface{}{
		"employee_id": "EMP-1001",
		"pin_code":    "4321",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeResponse(t, rec)
	assert.Equal(t, true, payload["success"])

	data, ok := payload["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "EMP-1001", data["employee_id"])
	assert.NotEmpty(t, data["access_token"])
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		},
	}
	r := newAuthTestRouter(svc)

	rec := doJSON(t, r, http.MethodPost, "/auth/login", map[string]interface{}{
		"employee_id": "EMP-1001",
		"pin_code":    "0000",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	payload := decodeResponse(t, rec)
	assert.Equal(t, false, payload["success"])
}
