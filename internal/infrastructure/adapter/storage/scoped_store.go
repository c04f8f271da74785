package storage

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
)

const (
	sessionPrefix = "session:"

	// activityKey records when a session last wrote or was touched
	activityKey = "_lastActive"
)

// ScopedStore confines keys to a single client session by prefixing them.
// Every write also stamps the session's last activity.
type ScopedStore struct {
	inner  persistence.KeyValueStore
	prefix string
	now    func() time.Time
}

var _ persistence.KeyValueStore = (*ScopedStore)(nil)

// Scoped returns a view of inner that only sees the keys of session sid
func Scoped(inner persistence.KeyValueStore, sid string) *ScopedStore {
	return &ScopedStore{inner: inner, prefix: sessionKeyPrefix(sid), now: time.Now}
}

func sessionKeyPrefix(sid string) string { return sessionPrefix + sid + ":" }

func formatActivity(t time.Time) []byte { return []byte(t.UTC().Format(time.RFC3339Nano)) }

func (s *ScopedStore) key(k string) string { return s.prefix + k }

func (s *ScopedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, s.key(key))
}

func (s *ScopedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

func (s *ScopedStore) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, s.key(key))
}

func (s *ScopedStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	scoped := make(map[string][]byte, len(entries)+1)
	for k, v := range entries {
		scoped[s.key(k)] = v
	}
	scoped[s.key(activityKey)] = formatActivity(s.now())
	return s.inner.SetMany(ctx, scoped)
}
