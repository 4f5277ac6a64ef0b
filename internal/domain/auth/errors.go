package auth

import "errors"

var (
	// ErrInvalidCredentials covers every login failure mode (unknown id,
	// inactive employee, missing PIN, wrong PIN) so the response never
	// leaks which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken = errors.New("invalid or expired token")
)
