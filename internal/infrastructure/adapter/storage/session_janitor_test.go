package storage

import (
	"context"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time                  { return c.now }
func (c *stubClock) Since(t time.Time) core.Duration { return core.Duration(c.now.Sub(t)) }
func (c *stubClock) WithTimeout(ctx context.Context, d core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.Std())
}

func newJanitor(store *MemoryStore) (*SessionJanitor, *stubClock) {
	clock := &stubClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewSessionJanitor(store, 10*time.Hour, clock, logger.NewNoopLogger()), clock
}

func TestSessionJanitorSweep(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryStore()
	janitor, clock := newJanitor(shared)

	require.NoError(t, shared.SetMany(ctx, map[string][]byte{
		"appUsers":        []byte(`[]`),
		"transactionLogs": []byte(`[]`),
	}))
	require.NoError(t, janitor.Scope("idle").SetMany(ctx, map[string][]byte{
		"currentUser":       []byte(`{"isAuthenticated":true}`),
		"preferredLanguage": []byte(`"ar"`),
	}))
	require.NoError(t, shared.Set(ctx, "session:legacy:currentUser", []byte(`{}`)))

	clock.now = clock.now.Add(8 * time.Hour)
	require.NoError(t, janitor.Scope("recent").Set(ctx, "preferredLanguage", []byte(`"en"`)))

	// idle is now 11h past its last write, beyond maxAge plus the touch slack
	clock.now = clock.now.Add(3*time.Hour + time.Minute)

	purged, err := janitor.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	idleKeys, err := shared.KeysWithPrefix(ctx, "session:idle:")
	require.NoError(t, err)
	assert.Empty(t, idleKeys)

	value, err := janitor.Scope("recent").Get(ctx, "preferredLanguage")
	require.NoError(t, err)
	assert.Equal(t, `"en"`, string(value))

	_, err = shared.Get(ctx, "session:legacy:currentUser")
	assert.NoError(t, err, "sessions without a stamp get one instead of being purged")
	_, err = shared.Get(ctx, "session:legacy:"+activityKey)
	assert.NoError(t, err)

	_, err = shared.Get(ctx, "appUsers")
	assert.NoError(t, err)

	t.Run("Stamped legacy session expires later", func(t *testing.T) {
		clock.now = clock.now.Add(12 * time.Hour)

		purged, err := janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, purged)

		_, err = shared.Get(ctx, "session:legacy:currentUser")
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)
		_, err = shared.Get(ctx, "transactionLogs")
		assert.NoError(t, err)
	})
}

func TestSessionJanitorTouch(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryStore()
	janitor, clock := newJanitor(shared)
	stamp := "session:active:" + activityKey

	t.Run("Stateless session stays empty", func(t *testing.T) {
		require.NoError(t, janitor.Touch(ctx, "anonymous"))

		keys, err := shared.KeysWithPrefix(ctx, "session:anonymous:")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	require.NoError(t, janitor.Scope("active").Set(ctx, "currentUser", []byte(`{}`)))
	written, err := shared.Get(ctx, stamp)
	require.NoError(t, err)

	t.Run("Recent stamp is kept", func(t *testing.T) {
		clock.now = clock.now.Add(30 * time.Minute)
		require.NoError(t, janitor.Touch(ctx, "active"))

		current, err := shared.Get(ctx, stamp)
		require.NoError(t, err)
		assert.Equal(t, string(written), string(current))
	})

	t.Run("Old stamp is refreshed", func(t *testing.T) {
		clock.now = clock.now.Add(2 * time.Hour)
		require.NoError(t, janitor.Touch(ctx, "active"))

		current, err := shared.Get(ctx, stamp)
		require.NoError(t, err)
		assert.Equal(t, string(formatActivity(clock.now)), string(current))
	})

	t.Run("Visits keep a session alive past maxAge", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			clock.now = clock.now.Add(4 * time.Hour)
			require.NoError(t, janitor.Touch(ctx, "active"))
		}

		purged, err := janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, purged)

		_, err = shared.Get(ctx, "session:active:currentUser")
		assert.NoError(t, err)
	})
}
