package persistence

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
)

// TransactionLogRepository reads the append-only ledger log
type TransactionLogRepository interface {
	// List returns every entry, newest first. An absent log is empty.
	List(ctx context.Context) ([]*entity.TransactionLog, error)

	// Seed stores entries only when the log has never been written.
	// It reports whether the seed was applied.
	Seed(ctx context.Context, entries []*entity.TransactionLog) (bool, error)
}
