package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogsite-backend/internal/domains/subscriber"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) subscriber.Repository {
	return &postgresRepository{pool: pool}
}

// Upsert collapses the lookup-then-write race into one statement. The email
// uniqueness constraint routes concurrent identical requests through the
// ON CONFLICT branch, so no duplicate row can ever be created. updated_at is
// only bumped when the row actually transitions from unsubscribed to active;
// a subscribe on an already-active row returns it unchanged.
func (r *postgresRepository) Upsert(ctx context.Context, email string) (*subscriber.Subscriber, error) {
	query := `
		INSERT INTO subscribers (id, email, status, created_at, updated_at)
		VALUES ($1, $2, 'active', now(), now())
		ON CONFLICT (email) DO UPDATE
		SET status = 'active',
		    updated_at = CASE
		        WHEN subscribers.status = 'unsubscribed' THEN now()
		        ELSE subscribers.updated_at
		    END
		RETURNING id, email, status, created_at, updated_at
	`

	var s subscriber.Subscriber
	err := r.pool.QueryRow(ctx, query, uuid.New(), email).Scan(
		&s.ID,
		&s.Email,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert subscriber: %w", err)
	}

	return &s, nil
}

// Unsubscribe touches only rows that are currently active, so a repeated
// call (or a call for an unknown email) affects zero rows and reports
// success either way.
func (r *postgresRepository) Unsubscribe(ctx context.Context, email string) error {
	query := `
		UPDATE subscribers
		SET status = 'unsubscribed', updated_at = now()
		WHERE email = $1 AND status <> 'unsubscribed'
	`

	if _, err := r.pool.Exec(ctx, query, email); err != nil {
		return fmt.Errorf("unsubscribe %q: %w", email, err)
	}

	return nil
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]subscriber.Subscriber, error) {
	query := `
		SELECT id, email, status, created_at, updated_at
		FROM subscribers
		WHERE status = 'active'
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active subscribers: %w", err)
	}
	defer rows.Close()

	var subs []subscriber.Subscriber
	for rows.Next() {
		var s subscriber.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return subs, nil
}
