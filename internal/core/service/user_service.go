package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pressroom/pressroom-api/internal/api/metrics"
	"github.com/pressroom/pressroom-api/internal/core/domain"
	"github.com/pressroom/pressroom-api/internal/core/ports"
)

const maxPageSize = 100

// UserService implements the admin-panel use cases, including the role
// mutation guard.
type UserService struct {
	repo  ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, log: log}
}

// ChangeRole validates and applies a role change. Validation and the business
// rules run before any write; once the update lands, sink failures are
// swallowed so the committed mutation is always reported as a success.
//
// The last-admin check reads the admin count and the target's role in two
// queries with no transaction around them, same as the system this replaces:
// two concurrent demotions can both observe count=2 and leave zero admins.
// Kept as-is rather than silently changing behavior.
func (s *UserService) ChangeRole(ctx context.Context, actorID, targetID string, desired domain.Role) (domain.Role, error) {
	if !desired.Valid() {
		metrics.RoleChangesTotal.WithLabelValues("invalid_role").Inc()
		return "", domain.ErrInvalidRole
	}

	if actorID == targetID && desired != domain.RoleAdmin {
		metrics.RoleChangesTotal.WithLabelValues("self_demotion").Inc()
		return "", domain.ErrSelfDemotion
	}

	if desired != domain.RoleAdmin {
		adminCount, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return "", fmt.Errorf("change role: count admins: %w", err)
		}
		target, err := s.repo.FindByID(ctx, targetID)
		if err != nil {
			return "", fmt.Errorf("change role: %w", err)
		}
		if target.Role == domain.RoleAdmin && adminCount == 1 {
			metrics.RoleChangesTotal.WithLabelValues("last_admin").Inc()
			return "", domain.ErrLastAdmin
		}
	}

	// Re-fetch for the audit delta; the target may have vanished since the
	// guard checks above.
	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return "", fmt.Errorf("change role: %w", err)
	}
	previous := target.Role

	if err := s.repo.UpdateRole(ctx, targetID, desired); err != nil {
		return "", fmt.Errorf("change role: %w", err)
	}

	s.audit.Record(ctx, actorID, targetID, domain.ActionUpdateRole, map[string]any{
		"previousRole": string(previous),
		"newRole":      string(desired),
	})

	metrics.RoleChangesTotal.WithLabelValues("success").Inc()
	s.log.Info().
		Str("actor_id", actorID).
		Str("target_id", targetID).
		Str("previous_role", string(previous)).
		Str("new_role", string(desired)).
		Msg("role updated")

	return desired, nil
}

// List returns a page of users for the admin panel.
func (s *UserService) List(ctx context.Context, page, limit int) (*ports.ListUsersResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	users, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListUsersResult{
		Users:      users,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create adds an invited account with no password hash. The given role is
// validated but there is no guard here: inviting an admin is always safe
// for the last-admin invariant.
func (s *UserService) Create(ctx context.Context, actorID string, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	user := &domain.User{
		Name:  input.Name,
		Email: domain.NormalizeEmail(input.Email),
		Role:  role,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.audit.Record(ctx, actorID, created.ID, domain.ActionCreateUser, map[string]any{
		"email": created.Email,
		"role":  string(created.Role),
	})
	return created, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, upd ports.UserUpdate) error {
	if upd.Email != nil {
		normalized := domain.NormalizeEmail(*upd.Email)
		upd.Email = &normalized
	}
	if err := s.repo.UpdateProfile(ctx, id, upd); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// Delete removes a user. There is deliberately no last-admin guard on
// delete, matching the admin panel this replaces.
func (s *UserService) Delete(ctx context.Context, actorID, id string) error {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.audit.Record(ctx, actorID, id, domain.ActionDeleteUser, map[string]any{
		"email": target.Email,
		"role":  string(target.Role),
	})
	return nil
}
