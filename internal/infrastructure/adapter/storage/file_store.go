package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
)

const snapshotVersion = 1

type snapshot struct {
	Version   int               `json:"version"`
	Entries   map[string]string `json:"entries"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// FileStore keeps every key in one JSON snapshot file.
// Each write goes to a temp file that replaces the snapshot by rename,
// so the file on disk always holds the last committed state.
type FileStore struct {
	mu   sync.RWMutex
	snap *snapshot
	path string

	createTemp func(dir, pattern string) (*os.File, error)
}

var (
	_ persistence.KeyValueStore = (*FileStore)(nil)
	_ persistence.KeyScanner    = (*FileStore)(nil)
)

// OpenFileStore opens or creates the snapshot at path
func OpenFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}
	store := &FileStore{path: path, createTemp: os.CreateTemp}
	if err := store.load(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrStorage, path, err)
	}
	return store, nil
}

// Close is a no-op; no handle stays open between writes
func (s *FileStore) Close() error { return nil }

// Path returns the snapshot location
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(raw) == 0) {
		s.snap = &snapshot{Version: snapshotVersion, Entries: map[string]string{}, UpdatedAt: time.Now()}
		return s.flush(s.snap)
	}
	if err != nil {
		return err
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return err
	}
	if snap.Entries == nil {
		snap.Entries = map[string]string{}
	}
	s.snap = &snap
	return nil
}

// flush writes snap next to the snapshot and renames it into place
func (s *FileStore) flush(snap *snapshot) (err error) {
	tmp, err := s.createTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err = enc.Encode(snap); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// withWrite applies fn to a copy of the snapshot and swaps it in only
// after the copy is on disk
func (s *FileStore) withWrite(ctx context.Context, fn func(entries map[string]string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	next := &snapshot{
		Version:   snapshotVersion,
		Entries:   make(map[string]string, len(s.snap.Entries)+1),
		UpdatedAt: time.Now(),
	}
	for k, v := range s.snap.Entries {
		next.Entries[k] = v
	}
	fn(next.Entries)

	if err := s.flush(next); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStorage, err)
	}
	s.snap = next
	return nil
}

// Get returns the value stored under key
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.snap.Entries[key]
	if !ok {
		return nil, errs.ErrKeyNotFound
	}
	return []byte(value), nil
}

// Set stores value under key
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

// Remove deletes key
func (s *FileStore) Remove(ctx context.Context, key string) error {
	return s.withWrite(ctx, func(entries map[string]string) {
		delete(entries, key)
	})
}

// SetMany writes all entries in one snapshot rewrite
func (s *FileStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	return s.withWrite(ctx, func(current map[string]string) {
		for key, value := range entries {
			current[key] = string(value)
		}
	})
}

// KeysWithPrefix returns every key starting with prefix
func (s *FileStore) KeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for key := range s.snap.Entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// RemoveMany deletes keys in one snapshot rewrite
func (s *FileStore) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return ctx.Err()
	}
	return s.withWrite(ctx, func(entries map[string]string) {
		for _, key := range keys {
			delete(entries, key)
		}
	})
}
