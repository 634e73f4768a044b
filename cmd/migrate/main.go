package main

import (
	"context"
	"flag"
	"time"

	"booklibrary/internal/config"
	"booklibrary/internal/platform/logger"
	"booklibrary/internal/platform/postgres"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, version, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()
	log := logger.New(logger.Options{Level: config.GetEnv("LOG_LEVEL", "info")})
	defer func() { _ = log.Sync() }()

	dir := migrationsDir()
	if *command == "create" {
		if *name == "" {
			log.Fatal("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			log.Fatal("create migration", zap.Error(err))
		}
		log.Info("migration created", zap.String("name", *name), zap.String("dir", dir))
		return
	}

	dsn := databaseDSN()
	pool, err := postgres.Open(context.Background(), dsn, 5*time.Second)
	if err != nil {
		log.Fatal("connect to database", zap.String("dsn", config.RedactDSN(dsn)), zap.Error(err))
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("set dialect", zap.Error(err))
	}

	switch *command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			log.Fatal("apply migrations", zap.Error(err))
		}
		log.Info("migrations applied")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			log.Fatal("roll back migration", zap.Error(err))
		}
		log.Info("migration rolled back")
	case "status":
		if err := goose.Status(db, dir); err != nil {
			log.Fatal("migration status", zap.Error(err))
		}
	case "version":
		v, err := goose.GetDBVersion(db)
		if err != nil {
			log.Fatal("migration version", zap.Error(err))
		}
		log.Info("database version", zap.Int64("version", v))
	default:
		log.Fatal("unknown command, use: up, down, status, version, create", zap.String("command", *command))
	}
}
