package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pressroom/pressroom-api/internal/api/metrics"
	"github.com/pressroom/pressroom-api/internal/core/domain"
	"github.com/pressroom/pressroom-api/internal/core/ports"
)

// listLimit caps the public post feed.
const listLimit = 50

// PostService implements the blog use cases.
type PostService struct {
	repo ports.PostRepository
	log  zerolog.Logger
}

func NewPostService(repo ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, log: log}
}

func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, domain.ErrMissingPostFields
	}

	author := input.Author
	if author == "" {
		author = "Anonymous"
	}

	post := &domain.Post{
		Title:       title,
		Content:     content,
		Author:      author,
		AuthorEmail: input.AuthorEmail,
	}
	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	metrics.PostsCreatedTotal.Inc()
	s.log.Info().Str("post_id", created.ID).Str("author_email", created.AuthorEmail).Msg("post created")
	return created, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.List(ctx, listLimit)
}

// Update edits a post. Ownership is matched on the author's email; admins
// get no override here.
func (s *PostService) Update(ctx context.Context, id, editorEmail string, upd ports.PostUpdate) error {
	upd.Title = strings.TrimSpace(upd.Title)
	upd.Content = strings.TrimSpace(upd.Content)
	if upd.Title == "" || upd.Content == "" {
		return domain.ErrMissingPostFields
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if existing.AuthorEmail != editorEmail {
		return domain.ErrNotPostAuthor
	}

	if err := s.repo.Update(ctx, id, upd); err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

func (s *PostService) Delete(ctx context.Context, id, editorEmail string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if existing.AuthorEmail != editorEmail {
		return domain.ErrNotPostAuthor
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
