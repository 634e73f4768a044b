package book

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

// SelectColumns lists the book columns in scan order, joined with the author
// (a) and category (c) rows.
const SelectColumns = `
	b.id, b.title, b.slug,
	b.author_id, a.full_name, a.slug,
	b.category_id, c.name, c.slug,
	b.publisher, b.publisher_slug, b.language, b.pages, b.publish_year,
	b.description, b.cover_url, b.preview_url, b.status,
	b.is_taken, b.borrower_id, b.due_date, b.created_at, b.updated_at`

// FromJoined is the FROM clause matching SelectColumns.
const FromJoined = `
	FROM books b
	JOIN authors a ON a.id = b.author_id
	JOIN categories c ON c.id = b.category_id`

// ScanDest returns the scan targets for SelectColumns, followed by extra.
func ScanDest(b *Book, extra ...any) []any {
	dest := []any{
		&b.ID, &b.Title, &b.Slug,
		&b.AuthorID, &b.AuthorName, &b.AuthorSlug,
		&b.CategoryID, &b.CategoryName, &b.CategorySlug,
		&b.Publisher, &b.PublisherSlug, &b.Language, &b.Pages, &b.PublishYear,
		&b.Description, &b.CoverURL, &b.PreviewURL, &b.Status,
		&b.IsTaken, &b.BorrowerID, &b.DueDate, &b.CreatedAt, &b.UpdatedAt,
	}
	return append(dest, extra...)
}

func scanOne(row pgx.Row) (Book, error) {
	var b Book
	if err := row.Scan(ScanDest(&b)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, apperr.NotFound("Book")
		}
		return Book{}, errors.Wrap(err, "scan book")
	}
	return b, nil
}

func (r *PostgresRepo) GetBySlug(ctx context.Context, slug string) (Book, error) {
	query := `SELECT ` + SelectColumns + FromJoined + `
	WHERE b.slug = $1 AND b.status = 'published'
	LIMIT 1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanOne(r.db.QueryRow(timeoutCtx, query, slug))
}

func (r *PostgresRepo) FindByTitleAndAuthor(ctx context.Context, title, authorID string) (Book, error) {
	query := `SELECT ` + SelectColumns + FromJoined + `
	WHERE lower(b.title) = lower($1) AND b.author_id = $2
	LIMIT 1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanOne(r.db.QueryRow(timeoutCtx, query, title, authorID))
}

func (r *PostgresRepo) SlugTaken(ctx context.Context, slug string) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var taken bool
	err := r.db.QueryRow(timeoutCtx, `SELECT EXISTS (SELECT 1 FROM books WHERE slug = $1)`, slug).Scan(&taken)
	return taken, errors.Wrap(err, "slug taken")
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (id, title, slug, author_id, category_id, publisher, publisher_slug,
		                   language, pages, publish_year, description, cover_url, preview_url,
		                   status, is_taken, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, false, now(), now())
		RETURNING id, created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		b.Title, b.Slug, b.AuthorID, b.CategoryID, b.Publisher, b.PublisherSlug,
		b.Language, b.Pages, b.PublishYear, b.Description, b.CoverURL, b.PreviewURL, b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if postgres.IsUniqueViolation(err) {
		return apperr.Conflict("Book slug already exists")
	}
	return errors.Wrap(err, "insert book")
}
