package persistence

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
)

// LedgerWriter commits a balance change together with its log entry
type LedgerWriter interface {
	// Commit replaces the stored user and prepends entry to the log in a
	// single write. Either both become visible or neither does.
	//
	// Possible errors:
	// - ErrUserNotFound: If the user is no longer in the collection
	// - ErrStorage: If the backing store fails
	Commit(ctx context.Context, user *entity.User, entry *entity.TransactionLog) error
}
