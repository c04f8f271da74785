package repository

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
)

// TransactionLogRepository implements persistence.TransactionLogRepository
// over the transactionLogs document
type TransactionLogRepository struct {
	c *Collections
}

var _ persistence.TransactionLogRepository = (*TransactionLogRepository)(nil)

// List returns every entry, newest first
func (r *TransactionLogRepository) List(ctx context.Context) ([]*entity.TransactionLog, error) {
	logs, _, err := r.c.loadLogs(ctx)
	return logs, err
}

// Seed stores entries only when transactionLogs has never been written
func (r *TransactionLogRepository) Seed(ctx context.Context, entries []*entity.TransactionLog) (bool, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	_, found, err := r.c.loadLogs(ctx)
	if err != nil || found {
		return false, err
	}
	if entries == nil {
		entries = []*entity.TransactionLog{}
	}
	if err := r.c.write(ctx, map[string]any{entity.KeyTransactionLogs: entries}); err != nil {
		return false, err
	}
	return true, nil
}
