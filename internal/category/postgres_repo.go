package category

import (
	"context"
	"time"

	"booklibrary/internal/apperr"

	"github.com/jackc/pgx/v5"
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

const columns = `id, name, slug, cover_url, created_at, updated_at`

func scan(row pgx.Row, c *Category) error {
	return row.Scan(&c.ID, &c.Name, &c.Slug, &c.CoverURL, &c.CreatedAt, &c.UpdatedAt)
}

func (r *PostgresRepo) List(ctx context.Context) ([]Category, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, `SELECT `+columns+` FROM categories ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	defer rows.Close()

	out := []Category{}
	for rows.Next() {
		var c Category
		if err := scan(rows, &c); err != nil {
			return nil, errors.Wrap(err, "scan category")
		}
		out = append(out, c)
	}
	return out, errors.Wrap(rows.Err(), "iterate categories")
}

func (r *PostgresRepo) GetBySlug(ctx context.Context, slug string) (Category, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var c Category
	err := scan(r.db.QueryRow(timeoutCtx, `SELECT `+columns+` FROM categories WHERE slug = $1`, slug), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, apperr.NotFound("Category")
	}
	return c, errors.Wrap(err, "get category")
}

// Ensure inserts the category if its slug is free and returns the stored row
// either way.
func (r *PostgresRepo) Ensure(ctx context.Context, name, slug string) (Category, error) {
	const query = `
		WITH ins AS (
			INSERT INTO categories (id, name, slug, created_at, updated_at)
			VALUES (gen_random_uuid(), $1, $2, now(), now())
			ON CONFLICT (slug) DO NOTHING
			RETURNING ` + columns + `
		)
		SELECT ` + columns + ` FROM ins
		UNION ALL
		SELECT ` + columns + ` FROM categories WHERE slug = $2
		LIMIT 1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var c Category
	err := scan(r.db.QueryRow(timeoutCtx, query, name, slug), &c)
	return c, errors.Wrap(err, "ensure category")
}
