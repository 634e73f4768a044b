package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booklibrary/internal/auth"
	"booklibrary/internal/author"
	"booklibrary/internal/book"
	"booklibrary/internal/borrow"
	"booklibrary/internal/catalog"
	"booklibrary/internal/category"
	"booklibrary/internal/config"
	"booklibrary/internal/contribute"
	"booklibrary/internal/httpx"
	"booklibrary/internal/platform/cache"
	"booklibrary/internal/platform/logger"
	"booklibrary/internal/platform/openlibrary"
	"booklibrary/internal/platform/postgres"
	"booklibrary/internal/platform/storage"
	"booklibrary/internal/profile"
	"booklibrary/internal/rating"
	"booklibrary/internal/review"
	"booklibrary/internal/session"
	"booklibrary/internal/user"

	"go.uber.org/zap"
)

const (
	maxRequestBytes    = 1 << 20
	shutdownTimeout    = 10 * time.Second
	openLibraryRetries = 2
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	dbPool, err := postgres.Open(ctx, cfg.DSN, 2*time.Second)
	if err != nil {
		return fmt.Errorf("open database (%s): %w", config.RedactDSN(cfg.DSN), err)
	}
	defer dbPool.Close()
	log.Info("database connection OK")

	var ratingCache rating.Cache
	if cfg.RedisAddr != "" {
		rc, err := cache.Connect(ctx, cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			Prefix:   "booklibrary",
			TTL:      cfg.RatingCacheTTL,
		})
		if err != nil {
			log.Warn("redis unavailable, rating cache disabled", zap.Error(err))
		} else {
			defer func() { _ = rc.Close() }()
			ratingCache = rating.NewRedisCache(rc)
		}
	}

	var covers contribute.ObjectStore
	if cfg.S3Endpoint != "" {
		store, err := storage.Connect(ctx, storage.Options{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			UseSSL:    cfg.S3UseSSL,
		})
		if err != nil {
			log.Warn("object storage unavailable, covers will be skipped", zap.Error(err))
		} else {
			covers = store
		}
	}

	t := cfg.DBTimeout

	userService := user.NewService(user.NewPostgresRepo(dbPool, t))
	sessionService := session.NewService(session.NewPostgresRepo(dbPool, t), log)
	authService := auth.NewService(cfg.JWTSecret, userService).WithRevocations(sessionService)

	ratingService := rating.NewService(rating.NewPostgresRepo(dbPool, t), ratingCache, log)
	reviewRepo := review.NewPostgresRepo(dbPool, t)
	categoryService := category.NewService(category.NewPostgresRepo(dbPool, t))
	authorService := author.NewService(author.NewPostgresRepo(dbPool, t))

	bookService := book.NewService(book.NewPostgresRepo(dbPool, t), ratingService, reviewRepo)
	reviewService := review.NewService(reviewRepo, bookService)

	catalogRepo := catalog.NewPostgresRepo(dbPool, t)
	catalogService := catalog.NewService(catalogRepo, categoryService, authorService)
	borrowService := borrow.NewService(borrow.NewPostgresRepo(dbPool, t), borrow.SystemClock, cfg.Location, log)
	profileService := profile.NewService(userService, ratingService, catalogRepo, cfg.Location)

	olClient := openlibrary.NewClient(cfg.OpenLibraryUserAgent, cfg.OpenLibraryRPS, openLibraryRetries)
	contributeService := contribute.NewService(olClient, covers, contribute.NewPostgresRepo(dbPool, t),
		authorService, bookService, categoryService, log)

	h := handlers{
		auth:       auth.NewHTTPHandler(authService, log),
		catalog:    catalog.NewHTTPHandler(catalogService, log),
		book:       book.NewHTTPHandler(bookService, log),
		rating:     rating.NewHTTPHandler(ratingService, bookService, log),
		review:     review.NewHTTPHandler(reviewService, log),
		borrow:     borrow.NewHTTPHandler(borrowService, log),
		category:   category.NewHTTPHandler(categoryService, log),
		contribute: contribute.NewHTTPHandler(contributeService, log),
		profile:    profile.NewHTTPHandler(profileService, log),
		ready: func(ctx context.Context) error {
			return dbPool.Ping(ctx)
		},
	}

	router := http.NewServeMux()
	registerRoutes(router, h,
		auth.Middleware(cfg.JWTSecret, sessionService),
		auth.OptionalMiddleware(cfg.JWTSecret, sessionService),
	)

	limiter := httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx)
	go sessionService.RunCleanup(ctx, session.DefaultCleanupInterval)

	handler := httpx.Chain(router,
		httpx.RecoveryMiddleware(log),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.SecurityHeadersMiddleware(false),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(maxRequestBytes),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
