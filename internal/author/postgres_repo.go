package author

import (
	"context"
	"time"

	"booklibrary/internal/apperr"
	"booklibrary/internal/platform/postgres"

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

const columns = `id, full_name, slug, photo_url, country, wiki_page, bio, created_at, updated_at`

func scanAuthor(row pgx.Row) (Author, error) {
	var a Author
	err := row.Scan(&a.ID, &a.FullName, &a.Slug, &a.PhotoURL, &a.Country, &a.WikiPage, &a.Bio, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Author{}, apperr.NotFound("Author")
	}
	if err != nil {
		return Author{}, errors.Wrap(err, "scan author")
	}
	return a, nil
}

func (r *PostgresRepo) GetBySlug(ctx context.Context, slug string) (Author, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanAuthor(r.db.QueryRow(timeoutCtx, `SELECT `+columns+` FROM authors WHERE slug = $1`, slug))
}

func (r *PostgresRepo) FindByName(ctx context.Context, fullName string) (Author, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanAuthor(r.db.QueryRow(timeoutCtx,
		`SELECT `+columns+` FROM authors WHERE lower(full_name) = lower($1) ORDER BY created_at LIMIT 1`, fullName))
}

func (r *PostgresRepo) SlugTaken(ctx context.Context, slug string) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var taken bool
	err := r.db.QueryRow(timeoutCtx, `SELECT EXISTS (SELECT 1 FROM authors WHERE slug = $1)`, slug).Scan(&taken)
	return taken, errors.Wrap(err, "author slug taken")
}

func (r *PostgresRepo) Create(ctx context.Context, a *Author) error {
	const query = `
		INSERT INTO authors (id, full_name, slug, photo_url, country, wiki_page, bio, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id, created_at, updated_at`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, a.FullName, a.Slug, a.PhotoURL, a.Country, a.WikiPage, a.Bio).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if postgres.IsUniqueViolation(err) {
		return apperr.Conflict("Author slug already exists")
	}
	return errors.Wrap(err, "insert author")
}
