package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeContract(t *testing.T, store persistence.KeyValueStore) {
	ctx := context.Background()

	t.Run("Missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "absent")
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)
	})

	t.Run("Set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "preferredLanguage", []byte(`"ar"`)))

		value, err := store.Get(ctx, "preferredLanguage")
		require.NoError(t, err)
		assert.Equal(t, `"ar"`, string(value))
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "token", []byte("a")))
		require.NoError(t, store.Set(ctx, "token", []byte("b")))

		value, err := store.Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "b", string(value))
	})

	t.Run("SetMany writes every entry", func(t *testing.T) {
		err := store.SetMany(ctx, map[string][]byte{
			"appUsers":        []byte(`[]`),
			"transactionLogs": []byte(`[{"id":1}]`),
		})
		require.NoError(t, err)

		users, err := store.Get(ctx, "appUsers")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(users))

		logs, err := store.Get(ctx, "transactionLogs")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, string(logs))
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "currentUser", []byte(`{}`)))
		require.NoError(t, store.Remove(ctx, "currentUser"))
		require.NoError(t, store.Remove(ctx, "currentUser"))

		_, err := store.Get(ctx, "currentUser")
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, store.Set(cancelled, "k", []byte("v")), context.Canceled)
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())

	t.Run("Returned values are copies", func(t *testing.T) {
		ctx := context.Background()
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, "k", []byte("abc")))

		value, err := store.Get(ctx, "k")
		require.NoError(t, err)
		value[0] = 'z'

		again, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(again))
	})
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "store.json")

	store, err := OpenFileStore(path)
	require.NoError(t, err)
	storeContract(t, store)
	require.NoError(t, store.Close())

	t.Run("Survives reopen", func(t *testing.T) {
		reopened, err := OpenFileStore(path)
		require.NoError(t, err)
		defer reopened.Close()

		value, err := reopened.Get(context.Background(), "transactionLogs")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, string(value))
		assert.Equal(t, path, reopened.Path())
	})
}

func TestFileStoreFailedWriteKeepsCommittedState(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	store, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetMany(ctx, map[string][]byte{
		"appUsers":        []byte(`[{"id":1,"balance":2500}]`),
		"transactionLogs": []byte(`[]`),
	}))

	// every later write lands in a file that can no longer be written
	store.createTemp = func(dir, pattern string) (*os.File, error) {
		f, err := os.CreateTemp(dir, pattern)
		if err != nil {
			return nil, err
		}
		_ = f.Close()
		return f, nil
	}

	err = store.SetMany(ctx, map[string][]byte{
		"appUsers":        []byte(`[{"id":1,"balance":3000}]`),
		"transactionLogs": []byte(`[{"id":1700000000000,"amount":500}]`),
	})
	require.ErrorIs(t, err, errs.ErrStorage)

	users, err := store.Get(ctx, "appUsers")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"balance":2500}]`, string(users))

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)

	users, err = reopened.Get(ctx, "appUsers")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"balance":2500}]`, string(users))
	logs, err := reopened.Get(ctx, "transactionLogs")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(logs))

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileStoreEmptyFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := OpenFileStore(path)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "appUsers")
	assert.ErrorIs(t, err, errs.ErrKeyNotFound)
}

func TestScopedStore(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryStore()
	alice := Scoped(shared, "alice")
	bob := Scoped(shared, "bob")

	storeContract(t, alice)

	require.NoError(t, alice.Set(ctx, "currentUser", []byte(`{"isAuthenticated":true}`)))

	_, err := bob.Get(ctx, "currentUser")
	assert.ErrorIs(t, err, errs.ErrKeyNotFound)

	_, err = shared.Get(ctx, "currentUser")
	assert.ErrorIs(t, err, errs.ErrKeyNotFound)

	raw, err := shared.Get(ctx, "session:alice:currentUser")
	require.NoError(t, err)
	assert.JSONEq(t, `{"isAuthenticated":true}`, string(raw))
}

func TestScopedStoreStampsActivity(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryStore()
	alice := Scoped(shared, "alice")
	written := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	alice.now = func() time.Time { return written }

	require.NoError(t, alice.Set(ctx, "preferredLanguage", []byte(`"ar"`)))

	raw, err := shared.Get(ctx, "session:alice:_lastActive")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:00:00Z", string(raw))
}
