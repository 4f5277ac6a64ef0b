package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrSessionAlreadyOpen = errors.New("an open session already exists, check out first")

	// Check-out errors
	ErrNoOpenSession = errors.New("no open session to check out from")

	// General errors
	ErrSessionNotFound = errors.New("attendance session not found")
)
