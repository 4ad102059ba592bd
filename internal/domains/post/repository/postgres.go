package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogsite-backend/internal/domains/post"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListPublished(ctx context.Context, limit, offset int) ([]post.Post, error) {
	query := `
		SELECT id, slug, title, description, content, image, author_name, status, created_at
		FROM posts
		WHERE status = 'published'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	defer rows.Close()

	posts := make([]post.Post, 0, limit)
	for rows.Next() {
		var p post.Post
		err := rows.Scan(
			&p.ID,
			&p.Slug,
			&p.Title,
			&p.Description,
			&p.Content,
			&p.Image,
			&p.AuthorName,
			&p.Status,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return posts, nil
}

func (r *postgresRepository) GetPublishedBySlug(ctx context.Context, slug string) (*post.Post, error) {
	query := `
		SELECT id, slug, title, description, content, image, author_name, status, created_at
		FROM posts
		WHERE slug = $1 AND status = 'published'
	`

	var p post.Post
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&p.ID,
		&p.Slug,
		&p.Title,
		&p.Description,
		&p.Content,
		&p.Image,
		&p.AuthorName,
		&p.Status,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post by slug %q: %w", slug, err)
	}

	return &p, nil
}
