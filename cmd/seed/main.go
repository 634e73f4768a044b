package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"booklibrary/internal/auth"
	"booklibrary/internal/config"
	"booklibrary/internal/platform/logger"
	"booklibrary/internal/platform/postgres"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const batchSize = 500

var (
	categories = []string{"Fiction", "Science Fiction", "History", "Science", "Technology", "Romance", "Mystery", "Biography", "Philosophy", "Art"}
	languages  = []string{"EN", "RU", "BY", "UNS"}
	publishers = []string{"Penguin", "HarperCollins", "Oxford", "Cambridge", "MIT Press", "Springer", "Wiley", "Elsevier"}
	firstNames = []string{"Anna", "Boris", "Clara", "Dmitri", "Elena", "Felix", "Galina", "Igor", "Julia", "Karl"}
	lastNames  = []string{"Petrova", "Smirnov", "Novak", "Ivanova", "Kowalski", "Berg", "Orlova", "Weiss", "Markov", "Volkova"}
	words      = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
)

func main() {
	var (
		books   = flag.Int("books", 1000, "Number of books to generate")
		authors = flag.Int("authors", 100, "Number of authors to generate")
		readers = flag.Int("readers", 20, "Number of reader accounts that rate books")
	)
	flag.Parse()

	config.LoadEnvFiles()
	log := logger.New(logger.Options{Level: config.GetEnv("LOG_LEVEL", "info")})
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	dsn := config.GetEnv("DB_DSN", config.DefaultDSN)
	pool, err := postgres.Open(ctx, dsn, 5*time.Second)
	if err != nil {
		log.Fatal("connect to database", zap.String("dsn", config.RedactDSN(dsn)), zap.Error(err))
	}
	defer pool.Close()

	s := &seeder{pool: pool, log: log, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
	if err := s.run(ctx, *books, *authors, *readers); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	var total int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&total); err == nil {
		log.Info("seed complete", zap.Int("books_total", total))
	}
}

type seeder struct {
	pool *pgxpool.Pool
	log  *zap.Logger
	rnd  *rand.Rand
}

func (s *seeder) run(ctx context.Context, nBooks, nAuthors, nReaders int) error {
	categoryIDs, err := s.seedCategories(ctx)
	if err != nil {
		return err
	}
	authorIDs, err := s.seedAuthors(ctx, nAuthors)
	if err != nil {
		return err
	}
	bookIDs, err := s.seedBooks(ctx, nBooks, authorIDs, categoryIDs)
	if err != nil {
		return err
	}
	readerIDs, err := s.seedReaders(ctx, nReaders)
	if err != nil {
		return err
	}
	return s.seedRatings(ctx, readerIDs, bookIDs)
}

func (s *seeder) seedCategories(ctx context.Context) ([]string, error) {
	const query = `
		INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	batch := &pgx.Batch{}
	for _, name := range categories {
		batch.Queue(query, uuid.NewString(), name, slug.Make(name))
	}

	ids := make([]string, 0, len(categories))
	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range categories {
		var id string
		if err := results.QueryRow().Scan(&id); err != nil {
			return nil, errors.Wrap(err, "insert category")
		}
		ids = append(ids, id)
	}
	s.log.Info("categories seeded", zap.Int("count", len(ids)))
	return ids, nil
}

func (s *seeder) seedAuthors(ctx context.Context, n int) ([]string, error) {
	const query = `
		INSERT INTO authors (id, full_name, slug, country) VALUES ($1, $2, $3, $4)`

	ids := make([]string, 0, n)
	batch := &pgx.Batch{}
	for i := 0; i < n; i++ {
		id := uuid.NewString()
		name := fmt.Sprintf("%s %s", pick(s.rnd, firstNames), pick(s.rnd, lastNames))
		batch.Queue(query, id, name, slug.Make(name)+"-"+id[:8], "BY")
		ids = append(ids, id)
	}
	if err := s.send(ctx, batch, "insert author"); err != nil {
		return nil, err
	}
	s.log.Info("authors seeded", zap.Int("count", n))
	return ids, nil
}

func (s *seeder) seedBooks(ctx context.Context, n int, authorIDs, categoryIDs []string) ([]string, error) {
	const query = `
		INSERT INTO books (id, title, slug, author_id, category_id, publisher, publisher_slug,
		                   language, pages, publish_year, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'published', $12)`

	ids := make([]string, 0, n)
	now := time.Now()
	batch := &pgx.Batch{}
	for i := 0; i < n; i++ {
		id := uuid.NewString()
		title := fmt.Sprintf("%s of %s", pick(s.rnd, words), pick(s.rnd, words))
		publisher := pick(s.rnd, publishers)
		batch.Queue(query,
			id, title, slug.Make(title)+"-"+id[:8],
			pick(s.rnd, authorIDs), pick(s.rnd, categoryIDs),
			publisher, slug.Make(publisher), pick(s.rnd, languages),
			100+s.rnd.Intn(800), 1950+s.rnd.Intn(75),
			fmt.Sprintf("A book about %s.", pick(s.rnd, words)),
			now.Add(-time.Duration(i)*time.Minute),
		)
		ids = append(ids, id)

		if batch.Len() == batchSize {
			if err := s.send(ctx, batch, "insert book"); err != nil {
				return nil, err
			}
			batch = &pgx.Batch{}
			s.log.Info("books progress", zap.Int("done", i+1), zap.Int("total", n))
		}
	}
	if err := s.send(ctx, batch, "insert book"); err != nil {
		return nil, err
	}
	s.log.Info("books seeded", zap.Int("count", n))
	return ids, nil
}

func (s *seeder) seedReaders(ctx context.Context, n int) ([]string, error) {
	const query = `
		INSERT INTO users (id, email, username, password_hash, role)
		VALUES ($1, $2, $3, $4, 'USER')`

	hash, err := auth.HashPassword("password123")
	if err != nil {
		return nil, errors.Wrap(err, "hash seed password")
	}

	ids := make([]string, 0, n)
	batch := &pgx.Batch{}
	for i := 0; i < n; i++ {
		id := uuid.NewString()
		batch.Queue(query, id, "reader-"+id[:8]+"@example.com", "reader-"+id[:8], hash)
		ids = append(ids, id)
	}
	if err := s.send(ctx, batch, "insert reader"); err != nil {
		return nil, err
	}
	s.log.Info("readers seeded", zap.Int("count", n))
	return ids, nil
}

func (s *seeder) seedRatings(ctx context.Context, readerIDs, bookIDs []string) error {
	if len(readerIDs) == 0 || len(bookIDs) == 0 {
		return nil
	}
	const query = `
		INSERT INTO ratings (user_id, book_id, score) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, book_id) DO NOTHING`

	// Leave a share of books unrated so sort modes have NULL averages to place.
	rated := bookIDs[:len(bookIDs)*3/4]
	count := 0
	batch := &pgx.Batch{}
	for _, readerID := range readerIDs {
		for _, bookID := range rated {
			if s.rnd.Intn(4) != 0 {
				continue
			}
			batch.Queue(query, readerID, bookID, 1+s.rnd.Intn(5))
			count++
			if batch.Len() == batchSize {
				if err := s.send(ctx, batch, "insert rating"); err != nil {
					return err
				}
				batch = &pgx.Batch{}
			}
		}
	}
	if err := s.send(ctx, batch, "insert rating"); err != nil {
		return err
	}
	s.log.Info("ratings seeded", zap.Int("count", count))
	return nil
}

// send executes every queued statement and reports the first failure.
func (s *seeder) send(ctx context.Context, batch *pgx.Batch, what string) error {
	if batch.Len() == 0 {
		return nil
	}
	results := s.pool.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return errors.Wrap(err, what)
		}
	}
	return errors.Wrap(results.Close(), what)
}

func pick[T any](rnd *rand.Rand, items []T) T {
	return items[rnd.Intn(len(items))]
}
