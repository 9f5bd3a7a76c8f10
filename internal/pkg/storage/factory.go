package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prakura/hrms-backend-go/internal/pkg/database"
)

type Config struct {
	Driver   string
	BasePath string // local driver directory
	SQLite   string // sqlite database file
	Postgres PostgresConfig
	Redis    RedisConfig
	S3       S3Config
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
	MinConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Open builds the backend named by cfg.Driver. An empty driver selects local.
func Open(ctx context.Context, cfg Config) (Backend, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = DriverLocal
	}

	var (
		backend Backend
		err     error
	)
	switch driver {
	case DriverMemory:
		backend = NewMemoryStorage()
	case DriverLocal:
		backend, err = NewLocalStorage(cfg.BasePath)
	case DriverSQLite:
		backend, err = NewSQLiteStorage(ctx, cfg.SQLite)
	case DriverPostgres:
		var db *database.DB
		db, err = database.NewPostgreSQLDB(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns, cfg.Postgres.MinConns)
		if err == nil {
			backend, err = NewPostgresStorage(ctx, db)
			if err != nil {
				db.Close()
			}
		}
	case DriverRedis:
		backend, err = NewRedisStorage(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	case DriverS3:
		backend, err = NewS3Storage(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", driver, err)
	}

	slog.Info("storage backend ready", "driver", backend.Driver())
	return backend, nil
}
