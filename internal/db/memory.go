package db

import (
	"context"
	"sync"

	"github.com/SrushtiHaryan/blog-app-server/internal/models"
)

// Memory is an in-memory Store used in tests. Blogs keep insertion
// order, matching the Postgres store's natural ordering.
type Memory struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by id
	blogs []models.Blog
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{users: make(map[string]models.User)}
}

func (s *Memory) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrDuplicateUser
		}
	}
	s.users[user.ID] = *user
	return nil
}

func (s *Memory) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) CreateBlog(_ context.Context, blog *models.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogs = append(s.blogs, *blog)
	return nil
}

func (s *Memory) ListBlogs(_ context.Context) ([]models.BlogView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	views := make([]models.BlogView, 0, len(s.blogs))
	for _, b := range s.blogs {
		views = append(views, s.view(b))
	}
	return views, nil
}

func (s *Memory) GetBlogByID(_ context.Context, id string) (*models.BlogView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.blogs {
		if b.ID == id {
			view := s.view(b)
			return &view, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) UpdateBlog(_ context.Context, id string, update BlogUpdate) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			s.blogs[i].Title = update.Title
			s.blogs[i].ImageURL = update.ImageURL
			s.blogs[i].Highlight = update.Highlight
			s.blogs[i].Content = update.Content
			blog := s.blogs[i]
			return &blog, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) DeleteBlog(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			s.blogs = append(s.blogs[:i], s.blogs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// view resolves the author reference to a username. Caller holds the lock.
func (s *Memory) view(b models.Blog) models.BlogView {
	author := ""
	if u, ok := s.users[b.AuthorID]; ok {
		author = u.Username
	}
	return models.BlogView{
		ID:        b.ID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		Highlight: b.Highlight,
		Content:   b.Content,
		Author:    author,
	}
}
