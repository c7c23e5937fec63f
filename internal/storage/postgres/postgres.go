package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bloglist/internal/domain/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(64) UNIQUE NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS blogs (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			url TEXT NOT NULL,
			likes INTEGER NOT NULL DEFAULT 0,
			user_id UUID NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		);
	`)
	return err
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (p *PostgresStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if user.Username == "" {
		return models.User{}, models.ErrInvalidData
	}

	user.ID = uuid.New().String()
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO users (id, username, name, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Name, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, models.ErrConflict
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	user.Blogs = []string{}
	return user, nil
}

func (p *PostgresStorage) userBlogIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id FROM blogs WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user blogs: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan blog id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (p *PostgresStorage) scanUser(ctx context.Context, row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUnfound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	user.Blogs, err = p.userBlogIDs(ctx, user.ID)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (p *PostgresStorage) UserGetByID(ctx context.Context, id string) (models.User, error) {
	row := p.db.QueryRowContext(ctx,
		`SELECT id, username, name, password_hash, created_at FROM users WHERE id = $1`, id)
	return p.scanUser(ctx, row)
}

func (p *PostgresStorage) UserGetByUsername(ctx context.Context, username string) (models.User, error) {
	row := p.db.QueryRowContext(ctx,
		`SELECT id, username, name, password_hash, created_at FROM users WHERE username = $1`, username)
	return p.scanUser(ctx, row)
}

func (p *PostgresStorage) UserGetAll(ctx context.Context) ([]models.User, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, username, name, password_hash, created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	for i := range users {
		users[i].Blogs, err = p.userBlogIDs(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (p *PostgresStorage) UserDelete(ctx context.Context, id string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// UserAppendBlog and UserRemoveBlog are no-ops here: the owned-blog list is
// derived from blogs.user_id rather than stored on the user row.
func (p *PostgresStorage) UserAppendBlog(ctx context.Context, userID, blogID string) error {
	return ctx.Err()
}

func (p *PostgresStorage) UserRemoveBlog(ctx context.Context, userID, blogID string) error {
	return ctx.Err()
}

func (p *PostgresStorage) BlogCreate(ctx context.Context, blog models.Blog) (models.Blog, error) {
	if blog.Title == "" || blog.URL == "" {
		return models.Blog{}, models.ErrInvalidData
	}

	blog.ID = uuid.New().String()
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO blogs (id, title, author, url, likes, user_id, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes, blog.UserID, blog.CreatedAt,
	)
	if err != nil {
		return models.Blog{}, fmt.Errorf("failed to insert blog: %w", err)
	}
	return blog, nil
}

func (p *PostgresStorage) BlogGetByID(ctx context.Context, id string) (models.Blog, error) {
	var blog models.Blog
	err := p.db.QueryRowContext(ctx,
		`SELECT id, title, author, url, likes, user_id, created_at FROM blogs WHERE id = $1`, id,
	).Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.UserID, &blog.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blog{}, models.ErrUnfound
		}
		return models.Blog{}, fmt.Errorf("failed to get blog: %w", err)
	}
	return blog, nil
}

func (p *PostgresStorage) blogQuery(ctx context.Context, query string, args ...any) ([]models.Blog, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query blogs: %w", err)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		var blog models.Blog
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.UserID, &blog.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return blogs, nil
}

func (p *PostgresStorage) BlogGetAll(ctx context.Context) ([]models.Blog, error) {
	return p.blogQuery(ctx,
		`SELECT id, title, author, url, likes, user_id, created_at FROM blogs ORDER BY created_at`)
}

func (p *PostgresStorage) BlogGetBatchByUser(ctx context.Context, userID string) ([]models.Blog, error) {
	return p.blogQuery(ctx,
		`SELECT id, title, author, url, likes, user_id, created_at FROM blogs WHERE user_id = $1 ORDER BY created_at`, userID)
}

func (p *PostgresStorage) BlogUpdate(ctx context.Context, blog models.Blog) (models.Blog, error) {
	err := p.db.QueryRowContext(ctx,
		`UPDATE blogs SET title = $2, author = $3, url = $4, likes = $5 WHERE id = $1
		 RETURNING id, title, author, url, likes, user_id, created_at`,
		blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes,
	).Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.UserID, &blog.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blog{}, models.ErrUnfound
		}
		return models.Blog{}, fmt.Errorf("failed to update blog: %w", err)
	}
	return blog, nil
}

func (p *PostgresStorage) BlogDelete(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrUnfound
	}
	return nil
}

func (p *PostgresStorage) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *PostgresStorage) Close() error {
	return p.db.Close()
}
