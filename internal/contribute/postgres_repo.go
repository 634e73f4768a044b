package contribute

import (
	"context"
	"time"

	"booklibrary/internal/apperr"

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

func (r *PostgresRepo) Record(ctx context.Context, c *Contribution) error {
	const sql = `
		INSERT INTO contributions (user_id, method, bibkey, book_id, book_created, cover_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRow(timeoutCtx, sql, c.UserID, c.Method, c.Bibkey, c.BookID, c.BookCreated, c.CoverStatus).
		Scan(&c.ID, &c.CreatedAt)
	return errors.Wrap(err, "insert contribution")
}

func (r *PostgresRepo) SetBookCover(ctx context.Context, bookID, url string) error {
	const sql = `UPDATE books SET cover_url = $2, updated_at = now() WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, sql, bookID, url)
	if err != nil {
		return errors.Wrap(err, "set book cover")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Book")
	}
	return nil
}

func (r *PostgresRepo) SetAuthorPhoto(ctx context.Context, authorID, url string) error {
	const sql = `UPDATE authors SET photo_url = $2, updated_at = now() WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, sql, authorID, url)
	if err != nil {
		return errors.Wrap(err, "set author photo")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Author")
	}
	return nil
}
