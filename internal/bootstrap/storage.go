package bootstrap

import (
	"context"
	"fmt"

	"github.com/Domenick1991/tripmate/config"
	"github.com/Domenick1991/tripmate/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OpenStorage connects the configured backend. The returned close func is never nil.
func OpenStorage(ctx context.Context, cfg *config.Config) (storage.KV, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		r := storage.NewRedis(cfg.Redis)
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return nil, func() {}, fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
		}
		return r, func() { _ = r.Close() }, nil
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, func() {}, fmt.Errorf("connect postgres: %w", err)
		}
		pg := storage.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, func() {}, fmt.Errorf("ensure kv schema: %w", err)
		}
		return pg, pool.Close, nil
	default:
		return storage.NewMemory(), func() {}, nil
	}
}
