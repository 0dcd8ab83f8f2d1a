package db

import (
	"context"
	"errors"

	"github.com/SrushtiHaryan/blog-app-server/internal/models"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("db: not found")
	// ErrDuplicateUser indicates a username or email is already taken.
	ErrDuplicateUser = errors.New("db: username or email already exists")
)

// BlogUpdate carries the replaceable display fields of a blog post.
// The author reference is never part of an update.
type BlogUpdate struct {
	Title     string
	ImageURL  string
	Highlight string
	Content   string
}

// Store is the persistence contract shared by the Postgres store and
// the in-memory store used in tests.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	CreateBlog(ctx context.Context, blog *models.Blog) error
	ListBlogs(ctx context.Context) ([]models.BlogView, error)
	GetBlogByID(ctx context.Context, id string) (*models.BlogView, error)
	UpdateBlog(ctx context.Context, id string, update BlogUpdate) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}
