package rating

import (
	"context"
	"time"

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

func (r *PostgresRepo) BookExists(ctx context.Context, bookID string) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var exists bool
	err := r.db.QueryRow(timeoutCtx,
		`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1 AND status = 'published')`, bookID,
	).Scan(&exists)
	return exists, errors.Wrap(err, "book exists")
}

// Aggregate counts only non-null scores; NULLIF turns an empty set into two
// NULLs rather than a zero count.
func (r *PostgresRepo) Aggregate(ctx context.Context, bookID string) (Aggregate, error) {
	const query = `
		SELECT SUM(score)::int, NULLIF(COUNT(score), 0)::int
		FROM ratings
		WHERE book_id = $1 AND score IS NOT NULL
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var agg Aggregate
	if err := r.db.QueryRow(timeoutCtx, query, bookID).Scan(&agg.TotalScore, &agg.TotalCount); err != nil {
		return Aggregate{}, errors.Wrap(err, "aggregate ratings")
	}
	if agg.TotalScore == nil || agg.TotalCount == nil {
		return Aggregate{}, nil
	}
	return agg, nil
}

func (r *PostgresRepo) Upsert(ctx context.Context, userID, bookID string, score int) error {
	const upsertSQL = `
		INSERT INTO ratings (id, user_id, book_id, score, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, now(), now())
		ON CONFLICT (user_id, book_id)
		DO UPDATE SET score = EXCLUDED.score, updated_at = now()
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, upsertSQL, userID, bookID, score)
	return errors.Wrap(err, "upsert rating")
}

func (r *PostgresRepo) Delete(ctx context.Context, userID, bookID string) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM ratings WHERE user_id = $1 AND book_id = $2`, userID, bookID)
	if err != nil {
		return false, errors.Wrap(err, "delete rating")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepo) UserScore(ctx context.Context, userID, bookID string) (*int, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var score *int
	err := r.db.QueryRow(timeoutCtx,
		`SELECT score FROM ratings WHERE user_id = $1 AND book_id = $2 LIMIT 1`, userID, bookID,
	).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "user score")
	}
	return score, nil
}

func (r *PostgresRepo) UserStats(ctx context.Context, userID string) (Stats, error) {
	const query = `
		SELECT COUNT(score), COALESCE(AVG(score)::float8, 0)
		FROM ratings
		WHERE user_id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var st Stats
	if err := r.db.QueryRow(timeoutCtx, query, userID).Scan(&st.RatingsCount, &st.AverageRating); err != nil {
		return Stats{}, errors.Wrap(err, "user rating stats")
	}
	return st, nil
}
