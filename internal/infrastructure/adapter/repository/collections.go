package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
)

// Collections stores the user list and the transaction log as JSON
// documents in a KeyValueStore. Every writer shares one lock so that a
// read-modify-write of a document never interleaves with another.
type Collections struct {
	kv     persistence.KeyValueStore
	mu     sync.Mutex
	logger coreport.Logger
}

// NewCollections creates the shared document layer
func NewCollections(kv persistence.KeyValueStore, logger coreport.Logger) *Collections {
	return &Collections{kv: kv, logger: logger}
}

// Users returns the user repository
func (c *Collections) Users() *UserRepository {
	return &UserRepository{c: c}
}

// Logs returns the transaction log repository
func (c *Collections) Logs() *TransactionLogRepository {
	return &TransactionLogRepository{c: c}
}

// Ledger returns the ledger writer
func (c *Collections) Ledger() *LedgerRepository {
	return &LedgerRepository{c: c}
}

// load decodes the document under key into out.
// It reports false when the key has never been written.
func (c *Collections) load(ctx context.Context, key string, out any) (bool, error) {
	raw, err := c.kv.Get(ctx, key)
	if errors.Is(err, errs.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, c.handleStoreError("reading", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Error("Stored collection is corrupt", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return true, fmt.Errorf("%w: %s is not valid JSON", errs.ErrStorage, key)
	}
	return true, nil
}

func (c *Collections) loadUsers(ctx context.Context) ([]*entity.User, bool, error) {
	users := []*entity.User{}
	found, err := c.load(ctx, entity.KeyAppUsers, &users)
	return users, found, err
}

func (c *Collections) loadLogs(ctx context.Context) ([]*entity.TransactionLog, bool, error) {
	logs := []*entity.TransactionLog{}
	found, err := c.load(ctx, entity.KeyTransactionLogs, &logs)
	return logs, found, err
}

// write encodes every document first and stores them in one SetMany
func (c *Collections) write(ctx context.Context, docs map[string]any) error {
	entries := make(map[string][]byte, len(docs))
	for key, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("%w: encoding %s: %v", errs.ErrInternalServer, key, err)
		}
		entries[key] = raw
	}
	if err := c.kv.SetMany(ctx, entries); err != nil {
		return c.handleStoreError("writing", "collections", err)
	}
	return nil
}

// handleStoreError standardizes store error handling
func (c *Collections) handleStoreError(operation, key string, err error) error {
	c.logger.Error(fmt.Sprintf("Store error when %s", operation), map[string]any{
		"key":   key,
		"error": err.Error(),
	})
	if errors.Is(err, errs.ErrStorage) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}
