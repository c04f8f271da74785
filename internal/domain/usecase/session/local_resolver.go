package session

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
)

// LocalResolver trusts the persisted currentUser record
type LocalResolver struct {
	store  persistence.KeyValueStore
	logger coreport.Logger
}

// NewLocalResolver creates a resolver over one client session's store
func NewLocalResolver(store persistence.KeyValueStore, logger coreport.Logger) *LocalResolver {
	return &LocalResolver{store: store, logger: logger}
}

// Resolve never fails: bad or missing data means unauthenticated
func (r *LocalResolver) Resolve(ctx context.Context) entity.Resolution {
	if ctx.Err() != nil {
		return entity.Resolution{}
	}

	session := readSession(ctx, r.store, r.logger)
	if session == nil || !session.IsAuthenticated {
		return entity.Unauthenticated()
	}
	return entity.Authenticated(session)
}
