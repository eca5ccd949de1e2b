package state

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/flowhigh/internal/testutil"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, store.Open(":memory:"))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestKey(t *testing.T) {
	k := Key("SELECT 1", "realm")
	assert.Len(t, k, 64)
	assert.Equal(t, k, Key("  SELECT 1\n", "realm"))
	assert.NotEqual(t, k, Key("SELECT 1", "other"))
	assert.NotEqual(t, k, Key("SELECT 2", "realm"))
	assert.NotEqual(t, Key("ab", "c"), Key("b", "ca"))
}

func TestPutGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	e := &Entry{SQL: testutil.OrdersSQL, RealmID: "realm-1", QueryName: "orders", Response: testutil.OrdersResponse()}
	require.NoError(t, store.Put(ctx, e))
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, Key(testutil.OrdersSQL, "realm-1"), e.Key)
	assert.False(t, e.CreatedAt.IsZero())

	got, err := store.Get(ctx, e.Key)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, "orders", got.QueryName)
	assert.Equal(t, testutil.OrdersSQL, got.SQL)
	assert.JSONEq(t, string(testutil.OrdersResponse()), string(got.Response))
	assert.True(t, e.CreatedAt.Equal(got.CreatedAt))
}

func TestPutReplacesResponse(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	clock := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	first := &Entry{SQL: "SELECT 1", Response: []byte(`{"v":1}`)}
	require.NoError(t, store.Put(ctx, first))

	clock = clock.Add(time.Minute)
	second := &Entry{SQL: "SELECT 1", Response: []byte(`{"v":2}`)}
	require.NoError(t, store.Put(ctx, second))

	got, err := store.Get(ctx, first.Key)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID, "upsert keeps the original row")
	assert.Equal(t, `{"v":2}`, string(got.Response))
	assert.True(t, got.CreatedAt.Equal(first.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(clock))
	assert.Equal(t, first.ID, second.ID, "replacing entry receives the stored id")
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt), "replacing entry receives the stored creation time")

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetMissing(t *testing.T) {
	store := setupTestStore(t)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	clock := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }
	for _, q := range []string{"SELECT 1", "SELECT 2", "SELECT 3"} {
		require.NoError(t, store.Put(ctx, &Entry{SQL: q, Response: []byte(`{}`)}))
		clock = clock.Add(time.Second)
	}

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "SELECT 3", all[0].SQL)
	assert.Equal(t, "SELECT 1", all[2].SQL)
}

func TestDeleteAndClear(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	a := &Entry{SQL: "SELECT a", Response: []byte(`{}`)}
	b := &Entry{SQL: "SELECT b", Response: []byte(`{}`)}
	require.NoError(t, store.Put(ctx, a))
	require.NoError(t, store.Put(ctx, b))

	require.NoError(t, store.Delete(ctx, a.Key))
	assert.ErrorIs(t, store.Delete(ctx, a.Key), ErrNotFound)

	n, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	ctx := context.Background()

	store := NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, store.Open(path))
	require.NoError(t, store.Put(ctx, &Entry{SQL: "SELECT 1", Response: []byte(`{}`)}))
	require.NoError(t, store.Close())

	reopened := NewSQLiteStore(nil)
	require.NoError(t, reopened.Open(path))
	defer reopened.Close() //nolint:errcheck
	assert.Equal(t, path, reopened.Path())

	_, err := reopened.Get(ctx, Key("SELECT 1", ""))
	require.NoError(t, err)

	v, err := reopened.MigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestNotOpened(t *testing.T) {
	store := NewSQLiteStore(nil)
	ctx := context.Background()

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, errNotOpen)
	assert.ErrorIs(t, store.Put(ctx, &Entry{}), errNotOpen)
	_, err = store.List(ctx)
	assert.ErrorIs(t, err, errNotOpen)
	assert.ErrorIs(t, store.Delete(ctx, "k"), errNotOpen)
	_, err = store.Clear(ctx)
	assert.ErrorIs(t, err, errNotOpen)
	assert.ErrorIs(t, store.Migrate(), errNotOpen)
	assert.NoError(t, store.Close())
}

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	store := NewSQLiteStore(testutil.NewTestLogger(t))
	store.OpenDB(db)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return store, mock
}

func TestDriverErrors(t *testing.T) {
	boom := errors.New("disk I/O error")
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery("SELECT (.+) FROM responses WHERE cache_key").WithArgs("k").WillReturnError(boom)
		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("put", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery("INSERT INTO responses (.+) RETURNING id, created_at").WillReturnError(boom)
		err := store.Put(ctx, &Entry{SQL: "SELECT 1"})
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to put cache entry")
	})

	t.Run("list bad timestamp", func(t *testing.T) {
		store, mock := newMockStore(t)
		rows := sqlmock.NewRows([]string{"id", "cache_key", "realm_id", "query_name", "sql_text", "response", "created_at", "updated_at"}).
			AddRow("id", "k", "", "", "SELECT 1", []byte(`{}`), "yesterday", "today")
		mock.ExpectQuery("SELECT (.+) FROM responses ORDER BY").WillReturnRows(rows)
		_, err := store.List(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `bad created_at "yesterday"`)
	})

	t.Run("clear", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec("DELETE FROM responses").WillReturnError(boom)
		_, err := store.Clear(ctx)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("delete missing", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec("DELETE FROM responses WHERE cache_key").WithArgs("k").WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, store.Delete(ctx, "k"), ErrNotFound)
	})
}
