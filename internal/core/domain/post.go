package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrNotPostAuthor = errors.New("you can only modify your own posts")
var ErrMissingPostFields = errors.New("title and content are required")

// Post is a blog entry. Author name and email are denormalized from the
// session at creation time, matching how posts are displayed.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
