package domain

import "errors"

// Error kinds surfaced by the service. Handlers map these to HTTP
// status codes; everything else is treated as an internal failure.
var (
	// ErrNotFound indicates a short code or long URL with no record
	ErrNotFound = errors.New("url not found")

	// ErrRateLimited indicates the client exceeded its request budget
	ErrRateLimited = errors.New("too many requests")

	// ErrCodeExists indicates a short code collided with an existing record
	ErrCodeExists = errors.New("short code already exists")
)
