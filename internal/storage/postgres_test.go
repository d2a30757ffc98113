package storage

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgres(t *testing.T) {
	pool := &pgxpool.Pool{}
	kv := NewPostgres(pool)
	assert.NotNil(t, kv)
}

func TestPostgresIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	kv := NewPostgres(pool)
	require.NoError(t, kv.EnsureSchema(ctx))

	require.NoError(t, kv.Set(ctx, "it_key", []byte(`[{"id":"1"}]`)))
	v, err := kv.Get(ctx, "it_key")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(v))

	require.NoError(t, kv.Delete(ctx, "it_key"))
	_, err = kv.Get(ctx, "it_key")
	assert.ErrorIs(t, err, ErrNotFound)
}
