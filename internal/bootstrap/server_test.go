package bootstrap

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/Domenick1991/tripmate/config"
	"github.com/Domenick1991/tripmate/internal/logging"
	"github.com/Domenick1991/tripmate/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_shutsDownOnCancel(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, lis, handler, logging.Discard()) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_badAddress(t *testing.T) {
	err := Run(context.Background(), "127.0.0.1:-1", http.NotFoundHandler(), logging.Discard())
	assert.Error(t, err)
}

func TestOpenStorage_memory(t *testing.T) {
	kv, closeFn, err := OpenStorage(context.Background(), &config.Config{Storage: config.StorageConfig{Backend: config.StorageMemory}})
	require.NoError(t, err)
	defer closeFn()

	_, ok := kv.(*storage.Memory)
	assert.True(t, ok)
}

func TestOpenStorage_redisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, closeFn, err := OpenStorage(ctx, &config.Config{
		Storage: config.StorageConfig{Backend: config.StorageRedis},
		Redis:   config.RedisConfig{Addr: "127.0.0.1:1"},
	})
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
