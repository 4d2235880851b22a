package ports

import (
	"context"
	"time"
)

// ResetTokenStore holds single-use password-reset tokens with an expiry.
// Consume must atomically fetch-and-delete so a token can never be redeemed
// twice.
type ResetTokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume returns the user id the token was issued for and deletes it.
	// Returns domain.ErrInvalidResetToken for unknown or expired tokens.
	Consume(ctx context.Context, token string) (string, error)
}
