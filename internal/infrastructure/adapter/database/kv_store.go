package database

import (
	"context"
	"strings"
	"time"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KeyValueStore keeps the application state in the kv_entries table
type KeyValueStore struct {
	db           *gorm.DB
	errorMapper  *ErrorMapper
	queryTimeout time.Duration
}

var (
	_ persistence.KeyValueStore = (*KeyValueStore)(nil)
	_ persistence.KeyScanner    = (*KeyValueStore)(nil)
)

// NewKeyValueStore creates a postgres-backed store
func NewKeyValueStore(db *gorm.DB, errorMapper *ErrorMapper, queryTimeout time.Duration) *KeyValueStore {
	return &KeyValueStore{db: db, errorMapper: errorMapper, queryTimeout: queryTimeout}
}

func (s *KeyValueStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// Get returns the value stored under key
func (s *KeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var entry model.KVEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&entry).Error
	if err != nil {
		return nil, s.errorMapper.MapError(err, "get")
	}
	return entry.Value, nil
}

// Set stores value under key
func (s *KeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

// Remove deletes key
func (s *KeyValueStore) Remove(ctx context.Context, key string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.KVEntry{}).Error
	return s.errorMapper.MapError(err, "remove")
}

// SetMany upserts every entry inside one database transaction
func (s *KeyValueStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows := make([]model.KVEntry, 0, len(entries))
	for key, value := range entries {
		if value == nil {
			value = []byte{}
		}
		rows = append(rows, model.KVEntry{Key: key, Value: value})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rows).Error
	})
	return s.errorMapper.MapError(err, "set")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// KeysWithPrefix returns every key starting with prefix
func (s *KeyValueStore) KeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var keys []string
	err := s.db.WithContext(ctx).
		Model(&model.KVEntry{}).
		Where("key LIKE ?", likeEscaper.Replace(prefix)+"%").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, s.errorMapper.MapError(err, "scan")
	}
	return keys, nil
}

// RemoveMany deletes every listed key in one statement
func (s *KeyValueStore) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Where("key IN ?", keys).Delete(&model.KVEntry{}).Error
	return s.errorMapper.MapError(err, "remove")
}
