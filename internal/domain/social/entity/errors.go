package entity

import "errors"

// Domain errors for social KPI retrieval
var (
	// Validation errors
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrMissingAccountID    = errors.New("account ID is required")
	ErrMissingAccessToken  = errors.New("access token is required")
)
