package ports

import (
	"context"

	"github.com/pressroom/pressroom-api/internal/core/domain"
)

// UserUpdate carries the mutable profile fields for an admin update.
// Nil fields are left untouched.
type UserUpdate struct {
	Name  *string
	Email *string
}

// UserRepository defines persistence operations over the users collection.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns a page of users (newest first) and the total count.
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	// CountByRole counts users currently holding the given role.
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
	// UpdateRole sets the target's role and refreshes updated_at. Returns
	// domain.ErrUserNotFound when no document matched.
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	// UpdateProfile applies the non-nil fields of upd and refreshes updated_at.
	UpdateProfile(ctx context.Context, id string, upd UserUpdate) error
	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
