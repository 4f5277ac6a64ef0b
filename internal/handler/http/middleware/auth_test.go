package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/geoattend/attendance-backend-go/internal/handler/http/middleware"
	"github.com/geoattend/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(ja *jwtauth.JWTAuth) *chi.Mux {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(ja))
	r.Use(middleware.AuthRequired(ja))
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func doGet(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_ValidAccessToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	token, _, err := svc.GenerateAccessToken("EMP-1001", "Asha Verma")
	require.NoError(t, err)

	rec := doGet(newProtectedRouter(svc.JWTAuth()), token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")

	rec := doGet(newProtectedRouter(svc.JWTAuth()), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsNonAccessToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	ja := svc.JWTAuth()

	_, token, err := ja.Encode(map[string]interface{}{
		"employee_id": "EMP-1001",
		"type":        "refresh",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	rec := doGet(newProtectedRouter(ja), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsTokenWithoutEmployee(t *testing.T) {
	svc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	ja := svc.JWTAuth()

	_, token, err := ja.Encode(map[string]interface{}{
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	rec := doGet(newProtectedRouter(ja), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
