package repository

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
)

// LedgerRepository implements persistence.LedgerWriter
type LedgerRepository struct {
	c *Collections
}

var _ persistence.LedgerWriter = (*LedgerRepository)(nil)

// Commit builds both updated documents before writing either, then stores
// them together
func (r *LedgerRepository) Commit(ctx context.Context, user *entity.User, entry *entity.TransactionLog) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	users, _, err := r.c.loadUsers(ctx)
	if err != nil {
		return err
	}
	logs, _, err := r.c.loadLogs(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range users {
		if existing.ID == user.ID {
			users[i] = user
			replaced = true
			break
		}
	}
	if !replaced {
		return errs.ErrUserNotFound
	}

	logs = append([]*entity.TransactionLog{entry}, logs...)

	if err := r.c.write(ctx, map[string]any{
		entity.KeyAppUsers:        users,
		entity.KeyTransactionLogs: logs,
	}); err != nil {
		return err
	}

	r.c.logger.Debug("Ledger entry committed", map[string]any{
		"user_id":  user.ID,
		"entry_id": entry.ID,
		"balance":  user.Balance,
	})
	return nil
}
