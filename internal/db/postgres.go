package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SrushtiHaryan/blog-app-server/internal/models"
)

// Postgres implements Store on a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Store = (*Postgres)(nil)

// Pool returns the underlying pgxpool.Pool
func (s *Postgres) Pool() *pgxpool.Pool {
	return s.pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	s := &Postgres{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Postgres) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ensureSchema creates the tables if they don't exist. The unique
// indexes on username and email make concurrent duplicate inserts fail
// atomically instead of relying on an application-level pre-check.
func (s *Postgres) ensureSchema(ctx context.Context) error {
	const usersTableSQL = `CREATE TABLE IF NOT EXISTS users (
	    id UUID PRIMARY KEY,
	    username TEXT NOT NULL UNIQUE,
	    email TEXT NOT NULL UNIQUE,
	    password_hash TEXT NOT NULL,
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`
	if _, err := s.pool.Exec(ctx, usersTableSQL); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	const blogsTableSQL = `CREATE TABLE IF NOT EXISTS blogs (
	    id UUID PRIMARY KEY,
	    title TEXT NOT NULL,
	    image_url TEXT,
	    highlight TEXT,
	    content TEXT,
	    author_id UUID NOT NULL REFERENCES users(id),
	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`
	if _, err := s.pool.Exec(ctx, blogsTableSQL); err != nil {
		return fmt.Errorf("create blogs table: %w", err)
	}
	return nil
}

func (s *Postgres) CreateUser(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := s.pool.QueryRow(ctx, query, user.ID, user.Username, user.Email, user.PasswordHash).
		Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *Postgres) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id::text, username, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	return s.scanUser(s.pool.QueryRow(ctx, query, email))
}

func (s *Postgres) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id::text, username, email, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	return s.scanUser(s.pool.QueryRow(ctx, query, username))
}

func (s *Postgres) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (s *Postgres) CreateBlog(ctx context.Context, blog *models.Blog) error {
	const query = `
		INSERT INTO blogs (id, title, image_url, highlight, content, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := s.pool.QueryRow(
		ctx,
		query,
		blog.ID,
		blog.Title,
		blog.ImageURL,
		blog.Highlight,
		blog.Content,
		blog.AuthorID,
	).Scan(&blog.CreatedAt)
	if err != nil {
		return fmt.Errorf("create blog: %w", err)
	}
	return nil
}

func (s *Postgres) ListBlogs(ctx context.Context) ([]models.BlogView, error) {
	const query = `
		SELECT
			b.id::text,
			b.title,
			COALESCE(b.image_url, ''),
			COALESCE(b.highlight, ''),
			COALESCE(b.content, ''),
			u.username
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		ORDER BY b.created_at
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]models.BlogView, 0)
	for rows.Next() {
		var blog models.BlogView
		if err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.ImageURL,
			&blog.Highlight,
			&blog.Content,
			&blog.Author,
		); err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return blogs, nil
}

func (s *Postgres) GetBlogByID(ctx context.Context, id string) (*models.BlogView, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	const query = `
		SELECT
			b.id::text,
			b.title,
			COALESCE(b.image_url, ''),
			COALESCE(b.highlight, ''),
			COALESCE(b.content, ''),
			u.username
		FROM blogs b
		JOIN users u ON u.id = b.author_id
		WHERE b.id = $1
	`
	var blog models.BlogView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.ImageURL,
		&blog.Highlight,
		&blog.Content,
		&blog.Author,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return &blog, nil
}

func (s *Postgres) UpdateBlog(ctx context.Context, id string, update BlogUpdate) (*models.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	const query = `
		UPDATE blogs
		SET title = $2, image_url = $3, highlight = $4, content = $5
		WHERE id = $1
		RETURNING
			id::text,
			title,
			COALESCE(image_url, ''),
			COALESCE(highlight, ''),
			COALESCE(content, ''),
			author_id::text,
			created_at
	`
	var blog models.Blog
	err := s.pool.QueryRow(
		ctx,
		query,
		id,
		update.Title,
		update.ImageURL,
		update.Highlight,
		update.Content,
	).Scan(
		&blog.ID,
		&blog.Title,
		&blog.ImageURL,
		&blog.Highlight,
		&blog.Content,
		&blog.AuthorID,
		&blog.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return &blog, nil
}

func (s *Postgres) DeleteBlog(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" // unique_violation
}
