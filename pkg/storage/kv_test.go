package storage_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/jackc/pgx/v5"
	"github.com/limbo/fitfusion/pkg/storage"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	_, ok, err := kv.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, kv.Set(ctx, "k", "v"))
	v, ok, err := kv.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestSQLiteKV(t *testing.T) {
	ctx := context.Background()
	kv, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	t.Run("absent key", func(t *testing.T) {
		_, ok, err := kv.Get(ctx, storage.KeyWorkouts)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("set and overwrite", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, storage.KeyWorkouts, "[]"))
		require.NoError(t, kv.Set(ctx, storage.KeyWorkouts, `[{"type":"Run"}]`))
		v, ok, err := kv.Get(ctx, storage.KeyWorkouts)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"type":"Run"}]`, v)
	})
	t.Run("adapter round trip", func(t *testing.T) {
		adapter := storage.NewAdapter(kv, nil)
		require.NoError(t, adapter.SaveChallenges(ctx, testChallenges))
		assert.Equal(t, testChallenges, adapter.LoadChallenges(ctx))
	})
}

func TestPgKV(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	kv := storage.NewPgKV(mock)
	ctx := context.Background()
	selectQuery := regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1;`)
	upsertQuery := regexp.QuoteMeta(`INSERT INTO kv_store (key, value) VALUES ($1, $2)`)
	t.Run("get existing", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).
			WithArgs(storage.KeyFavorites).
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(`["Yoga"]`))
		v, ok, err := kv.Get(ctx, storage.KeyFavorites)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `["Yoga"]`, v)
	})
	t.Run("get absent", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).
			WithArgs(storage.KeyFavorites).
			WillReturnError(pgx.ErrNoRows)
		_, ok, err := kv.Get(ctx, storage.KeyFavorites)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("get db error", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).
			WithArgs(storage.KeyFavorites).
			WillReturnError(errors.New("db error"))
		_, _, err := kv.Get(ctx, storage.KeyFavorites)
		assert.Error(t, err)
	})
	t.Run("set", func(t *testing.T) {
		mock.ExpectExec(upsertQuery).
			WithArgs(storage.KeyFavorites, `["Yoga"]`).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, kv.Set(ctx, storage.KeyFavorites, `["Yoga"]`))
	})
	t.Run("set db error", func(t *testing.T) {
		mock.ExpectExec(upsertQuery).
			WithArgs(storage.KeyFavorites, `[]`).
			WillReturnError(errors.New("db error"))
		assert.Error(t, kv.Set(ctx, storage.KeyFavorites, `[]`))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKV(t *testing.T) {
	db, mock := redismock.NewClientMock()
	kv := storage.NewRedisKV(db, "test:")
	ctx := context.Background()
	t.Run("get existing", func(t *testing.T) {
		mock.ExpectGet("test:theme").SetVal("dark")
		v, ok, err := kv.Get(ctx, storage.KeyTheme)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "dark", v)
	})
	t.Run("get absent", func(t *testing.T) {
		mock.ExpectGet("test:theme").RedisNil()
		_, ok, err := kv.Get(ctx, storage.KeyTheme)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("get error", func(t *testing.T) {
		mock.ExpectGet("test:theme").SetErr(errors.New("connection refused"))
		_, _, err := kv.Get(ctx, storage.KeyTheme)
		assert.Error(t, err)
	})
	t.Run("set", func(t *testing.T) {
		mock.ExpectSet("test:theme", "light", 0).SetVal("OK")
		assert.NoError(t, kv.Set(ctx, storage.KeyTheme, "light"))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
