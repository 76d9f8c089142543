package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewPostgresStore(conn), mock
}

func TestPostgresStore_Get(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT value FROM kv_entries WHERE key = \$1`).
		WithArgs("hosted-ann-gala-000001").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"slug":"ann-gala-000001"}`))

	v, err := store.Get(context.Background(), "hosted-ann-gala-000001")
	require.NoError(t, err)
	assert.Equal(t, `{"slug":"ann-gala-000001"}`, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetMissing(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT value FROM kv_entries`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_GetError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT value FROM kv_entries`).
		WillReturnError(errors.New("connection reset"))

	_, err := store.Get(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestPostgresStore_Set(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`INSERT INTO kv_entries .* ON CONFLICT \(key\) DO UPDATE`).
		WithArgs("cart-storage", "{}").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Set(context.Background(), "cart-storage", "{}"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SetIfAbsent(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`ON CONFLICT \(key\) DO NOTHING`).
		WithArgs("hosted-a", "1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`ON CONFLICT \(key\) DO NOTHING`).
		WithArgs("hosted-a", "2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := store.SetIfAbsent(context.Background(), "hosted-a", "1")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.SetIfAbsent(context.Background(), "hosted-a", "2")
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Delete(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`DELETE FROM kv_entries WHERE key = \$1`).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Delete(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
