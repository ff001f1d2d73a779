package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/fitfusion/pkg/cleanup"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config interface {
	GetStringOr(key, fallback string) string
}

// Open builds the KV backend selected by FITFUSION_STORAGE and registers its cleanup
func Open(ctx context.Context, cfg Config) (KV, error) {
	driver := strings.ToLower(cfg.GetStringOr("FITFUSION_STORAGE", DriverSQLite))
	slog.Info("opening local storage", slog.String("driver", driver))
	switch driver {
	case DriverMemory:
		return NewMemoryKV(), nil
	case DriverSQLite:
		path := cfg.GetStringOr("FITFUSION_SQLITE_PATH", "")
		if path == "" {
			var err error
			path, err = DefaultSQLitePath()
			if err != nil {
				return nil, err
			}
		}
		kv, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing sqlite storage",
			F:    kv.Close,
		})
		return kv, nil
	case DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.GetStringOr("FITFUSION_STORAGE_DSN", ""))
		if err != nil {
			return nil, fmt.Errorf("creating pgxpool for storage: %w", err)
		}
		if err = pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("pinging storage database: %w", err)
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing storage pgxpool",
			F: func() error {
				pool.Close()
				return nil
			},
		})
		return NewPgKV(pool), nil
	case DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.GetStringOr("FITFUSION_REDIS_ADDR", "localhost:6379"),
			Password: cfg.GetStringOr("FITFUSION_REDIS_PASSWORD", ""),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("pinging redis storage: %w", err)
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing redis storage",
			F:    rdb.Close,
		})
		return NewRedisKV(rdb, cfg.GetStringOr("FITFUSION_REDIS_PREFIX", defaultRedisPrefix)), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}
}
