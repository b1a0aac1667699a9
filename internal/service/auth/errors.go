package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token failed verification: bad
	// signature, wrong issuer, malformed structure, or expired. All
	// verification failures collapse into this one error so callers
	// cannot distinguish why a token was rejected.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrTokenCreation indicates signing a new token failed.
	ErrTokenCreation = errors.New("failed to create authentication token")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
