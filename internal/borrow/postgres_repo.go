package borrow

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Take(ctx context.Context, bookSlug, userID string, due time.Time) (bool, error) {
	query := `
	UPDATE books
	SET is_taken = true, borrower_id = $2, due_date = $3, updated_at = now()
	WHERE slug = $1 AND status = 'published' AND is_taken = false`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, query, bookSlug, userID, due)
	if err != nil {
		return false, errors.Wrap(err, "take book")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepo) Release(ctx context.Context, bookSlug, userID string) (bool, error) {
	query := `
	UPDATE books
	SET is_taken = false, borrower_id = NULL, due_date = NULL, updated_at = now()
	WHERE slug = $1 AND borrower_id = $2 AND is_taken = true`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, query, bookSlug, userID)
	if err != nil {
		return false, errors.Wrap(err, "release book")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepo) Exists(ctx context.Context, bookSlug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE slug = $1 AND status = 'published')`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var exists bool
	if err := r.db.QueryRow(timeoutCtx, query, bookSlug).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "check book")
	}
	return exists, nil
}
