package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
)

// SessionJanitor tracks client session activity and purges the keys of
// sessions whose cookie can no longer be presented.
//
// The sid cookie slides by maxAge on every request, while the activity stamp
// is refreshed at most once per touchEvery. A session is therefore expired
// only once its stamp is older than maxAge+touchEvery.
type SessionJanitor struct {
	store      persistence.ScannableStore
	maxAge     time.Duration
	touchEvery time.Duration
	clock      core.TimeProvider
	logger     core.Logger
}

// NewSessionJanitor creates a janitor for sessions kept in store
func NewSessionJanitor(store persistence.ScannableStore, maxAge time.Duration, clock core.TimeProvider, logger core.Logger) *SessionJanitor {
	return &SessionJanitor{
		store:      store,
		maxAge:     maxAge,
		touchEvery: maxAge / 10,
		clock:      clock,
		logger:     logger,
	}
}

// Scope returns the store of session sid, stamped with the janitor's clock
func (j *SessionJanitor) Scope(sid string) *ScopedStore {
	scoped := Scoped(j.store, sid)
	scoped.now = j.clock.Now
	return scoped
}

// Touch refreshes the activity stamp of a session that holds state.
// Sessions that never stored anything are left alone.
func (j *SessionJanitor) Touch(ctx context.Context, sid string) error {
	key := sessionKeyPrefix(sid) + activityKey
	raw, err := j.store.Get(ctx, key)
	if errors.Is(err, errs.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	now := j.clock.Now()
	if last, err := time.Parse(time.RFC3339Nano, string(raw)); err == nil && now.Sub(last) < j.touchEvery {
		return nil
	}
	return j.store.Set(ctx, key, formatActivity(now))
}

// Sweep removes every key of the expired sessions and returns how many
// sessions were purged. Sessions without a readable stamp are stamped now.
func (j *SessionJanitor) Sweep(ctx context.Context) (int, error) {
	keys, err := j.store.KeysWithPrefix(ctx, sessionPrefix)
	if err != nil {
		return 0, err
	}

	bySession := make(map[string][]string)
	for _, key := range keys {
		sid, _, ok := strings.Cut(strings.TrimPrefix(key, sessionPrefix), ":")
		if !ok {
			continue
		}
		bySession[sid] = append(bySession[sid], key)
	}

	now := j.clock.Now()
	cutoff := j.maxAge + j.touchEvery
	var expired []string
	purged := 0
	unstamped := make(map[string][]byte)

	for sid, sessionKeys := range bySession {
		stampKey := sessionKeyPrefix(sid) + activityKey
		raw, err := j.store.Get(ctx, stampKey)
		if err != nil && !errors.Is(err, errs.ErrKeyNotFound) {
			return 0, err
		}

		last, parseErr := time.Parse(time.RFC3339Nano, string(raw))
		if err != nil || parseErr != nil {
			unstamped[stampKey] = formatActivity(now)
			continue
		}
		if now.Sub(last) > cutoff {
			expired = append(expired, sessionKeys...)
			purged++
		}
	}

	if len(unstamped) > 0 {
		if err := j.store.SetMany(ctx, unstamped); err != nil {
			return 0, err
		}
	}
	if err := j.store.RemoveMany(ctx, expired); err != nil {
		return 0, err
	}
	return purged, nil
}

// Run sweeps immediately and then every interval until ctx is done
func (j *SessionJanitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		purged, err := j.Sweep(ctx)
		switch {
		case err != nil && ctx.Err() == nil:
			j.logger.Warn("Failed to purge expired sessions", map[string]any{
				"error": err.Error(),
			})
		case purged > 0:
			j.logger.Info("Purged expired sessions", map[string]any{
				"sessions": purged,
				"max_age":  j.maxAge.String(),
			})
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
