package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-redis/redis/v8"
	_ "github.com/jackc/pgx/v5/stdlib"

	"invitation-studio/config"
	"invitation-studio/logger"
)

// DB holds the database connection when the postgres storage driver is used
var DB *sql.DB

// InitDB opens and pings the Postgres connection, then makes sure the schema exists
func InitDB(ctx context.Context, cfg config.DatabaseConfig) error {
	conn, err := sql.Open("pgx", cfg.ConnString())
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	return useDB(ctx, conn)
}

// useDB checks conn and installs it as DB. conn is closed when it cannot be used.
func useDB(ctx context.Context, conn *sql.DB) error {
	// Test the connection
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := EnsureSchema(ctx, conn); err != nil {
		conn.Close()
		return err
	}

	DB = conn
	logger.Log.Info("✓ Database connection established successfully")
	return nil
}

// EnsureSchema creates the key-value table if it is missing
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_entries (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create kv_entries table: %w", err)
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// NewRedisClient connects to Redis and pings it
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	logger.Log.WithField("addr", cfg.Addr).Info("✓ Redis connection established successfully")
	return client, nil
}
