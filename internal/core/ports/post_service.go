package ports

import (
	"context"

	"github.com/pressroom/pressroom-api/internal/core/domain"
)

// CreatePostInput carries the data for a new post. Author fields come from
// the authenticated session, never from the request body.
type CreatePostInput struct {
	Title       string
	Content     string
	Author      string
	AuthorEmail string
}

// PostService defines the blog use cases.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	// Update edits a post; only the author (matched by email) may edit.
	Update(ctx context.Context, id, editorEmail string, upd PostUpdate) error
	// Delete removes a post; only the author may delete.
	Delete(ctx context.Context, id, editorEmail string) error
}
