package auth

import (
	"context"

	"forumhub/internal/domain"
)

// TokenIssuer is the issuer claim stamped on every token and required
// during verification. Kept for wire compatibility with existing clients.
const TokenIssuer = "API ForumHub"

// JWTService issues and verifies the signed tokens that authenticate API
// requests. The token subject is the user's login.
type JWTService interface {
	// GenerateToken creates a signed, time-boxed token for the user.
	// Returns ErrTokenCreation if signing fails.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken verifies the token's signature, issuer, and expiry
	// and returns the subject login. Any verification failure, including
	// an expired token, returns ErrInvalidToken.
	ValidateToken(ctx context.Context, token string) (string, error)
}
