package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

// getJSON decodes the value at key into dst. Undecodable values yield ErrInvalidRecord.
func getJSON(ctx context.Context, store KeyValueStore, key string, dst interface{}) error {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: key %s: %v", ErrInvalidRecord, key, err)
	}
	return nil
}

func encodeJSON(key string, v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return string(b), nil
}

func setJSON(ctx context.Context, store KeyValueStore, key string, v interface{}) error {
	value, err := encodeJSON(key, v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, value)
}
