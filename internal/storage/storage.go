package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Keys under which whole collections are stored.
const (
	KeyCurrentUser     = "current_user"
	KeyBookings        = "bookings"
	KeyCarpoolBookings = "carpool_bookings"
	KeyExpenses        = "expenses"
	KeyMatches         = "matches"
	KeyChatMessages    = "chat_messages"
	KeyReviews         = "reviews"
)

var ErrNotFound = errors.New("key not found")

// KV stores opaque JSON blobs under string keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON decodes the blob under key into dst. It reports false with a nil
// error when the key is absent.
func LoadJSON(ctx context.Context, kv KV, key string, dst any) (bool, error) {
	data, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func SaveJSON(ctx context.Context, kv KV, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
