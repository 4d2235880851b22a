package ports

import (
	"context"

	"github.com/pressroom/pressroom-api/internal/core/domain"
)

// ListUsersResult is the paginated admin view of the users collection.
type ListUsersResult struct {
	Users      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CreateUserInput carries the fields for an admin-created (invited) account.
type CreateUserInput struct {
	Name  string
	Email string
	Role  domain.Role
}

// UserService defines the admin-panel use cases over users, including the
// role mutation guard.
type UserService interface {
	// ChangeRole validates and applies a role change on behalf of actorID.
	// Checks run in order: role validity, self-demotion, last-admin
	// protection, target existence. On success the audit/notification sink
	// is invoked; its failure never fails the role change.
	ChangeRole(ctx context.Context, actorID, targetID string, desired domain.Role) (domain.Role, error)
	List(ctx context.Context, page, limit int) (*ListUsersResult, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, actorID string, input CreateUserInput) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, upd UserUpdate) error
	Delete(ctx context.Context, actorID, id string) error
}
