package ports

import (
	"context"

	"github.com/pressroom/pressroom-api/internal/core/domain"
)

// OAuthProfile is the identity returned by an external OAuth provider after
// a successful code exchange.
type OAuthProfile struct {
	Subject string // provider-stable identifier
	Email   string
	Name    string
}

// AuthService implements registration, login, OAuth sign-in and the
// password-reset flow.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login returns a signed session token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// LoginOAuth upserts the user matching the provider profile and returns
	// a session token. OAuth accounts carry no password hash.
	LoginOAuth(ctx context.Context, profile OAuthProfile) (string, *domain.User, error)
	// RequestPasswordReset issues a single-use reset token for the account,
	// if one exists. It never reveals whether the email is registered.
	RequestPasswordReset(ctx context.Context, email string) error
	// CompletePasswordReset consumes the token and replaces the password.
	CompletePasswordReset(ctx context.Context, token, newPassword string) error
}
