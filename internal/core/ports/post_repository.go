package ports

import (
	"context"

	"github.com/pressroom/pressroom-api/internal/core/domain"
)

// PostUpdate carries the editable fields of a post.
type PostUpdate struct {
	Title   string
	Content string
}

// PostRepository defines persistence operations over the posts collection.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns up to limit posts, newest first.
	List(ctx context.Context, limit int) ([]*domain.Post, error)
	Update(ctx context.Context, id string, upd PostUpdate) error
	Delete(ctx context.Context, id string) error
}
