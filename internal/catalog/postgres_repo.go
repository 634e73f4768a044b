package catalog

import (
	"context"
	"time"

	"booklibrary/internal/book"

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

func (r *PostgresRepo) Count(ctx context.Context, f Filter) (int, error) {
	stmt := BuildCount(f)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRow(timeoutCtx, stmt.SQL, stmt.Args...).Scan(&total); err != nil {
		return 0, errors.Wrap(err, "count books")
	}
	return total, nil
}

func (r *PostgresRepo) List(ctx context.Context, mode SortMode, f Filter, limit, offset int) ([]Item, error) {
	stmt := BuildList(mode, f, limit, offset)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, errors.Wrap(err, "list books")
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(book.ScanDest(&it.Book, &it.AverageRating, &it.RatingsCount)...); err != nil {
			return nil, errors.Wrap(err, "scan listed book")
		}
		items = append(items, it)
	}
	return items, errors.Wrap(rows.Err(), "iterate listed books")
}
