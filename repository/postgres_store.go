package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"invitation-studio/logger"
)

// PostgresStore keeps key-value pairs in the kv_entries table
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgresStore over an open connection
func NewPostgresStore(conn *sql.DB) *PostgresStore {
	return &PostgresStore{db: conn}
}

// Ensure PostgresStore implements KeyValueStore
var _ KeyValueStore = (*PostgresStore)(nil)

// Get returns the value stored under key
func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	query := `SELECT value FROM kv_entries WHERE key = $1`
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		logger.Log.WithField("key", key).Errorf("❌ Error reading key: %v", err)
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

// Set upserts key
func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		logger.Log.WithField("key", key).Errorf("❌ Error writing key: %v", err)
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// SetIfAbsent inserts key only when it does not exist yet
func (s *PostgresStore) SetIfAbsent(ctx context.Context, key, value string) (bool, error) {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO NOTHING
	`
	result, err := s.db.ExecContext(ctx, query, key, value)
	if err != nil {
		logger.Log.WithField("key", key).Errorf("❌ Error inserting key: %v", err)
		return false, fmt.Errorf("failed to insert key %s: %w", key, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}

// Delete removes key; a missing key is not an error
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_entries WHERE key = $1`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
