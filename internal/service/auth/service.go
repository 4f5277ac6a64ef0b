package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/geoattend/attendance-backend-go/internal/domain/auth"
	"github.com/geoattend/attendance-backend-go/internal/domain/employee"
	"github.com/geoattend/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employeeRepo employee.Repository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.Service. Every failure mode collapses into
// ErrInvalidCredentials so the response never reveals whether the
// employee id or the PIN was wrong.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if emp.PINCode == nil || *emp.PINCode != req.PINCode {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(emp.ID, emp.Name)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		EmployeeID:  emp.ID,
		Name:        emp.Name,
		Email:       emp.Email,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
