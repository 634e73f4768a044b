package review

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

func (r *PostgresRepo) Create(ctx context.Context, rv *Review) error {
	const query = `
		WITH inserted AS (
			INSERT INTO reviews (id, user_id, book_id, text, created_at)
			VALUES (gen_random_uuid(), $1, $2, $3, now())
			RETURNING id, user_id, created_at
		)
		SELECT i.id, u.username, i.created_at
		FROM inserted i
		JOIN users u ON u.id = i.user_id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, rv.UserID, rv.BookID, rv.Text).Scan(&rv.ID, &rv.Username, &rv.CreatedAt)
	return errors.Wrap(err, "insert review")
}

func (r *PostgresRepo) ListForBook(ctx context.Context, bookID string) ([]Review, error) {
	const query = `
		SELECT rv.id, rv.user_id, u.username, rv.book_id, rv.text, rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.book_id = $1
		ORDER BY rv.created_at DESC, rv.id DESC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "list reviews")
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.Username, &rv.BookID, &rv.Text, &rv.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan review")
		}
		out = append(out, rv)
	}
	return out, errors.Wrap(rows.Err(), "iterate reviews")
}
