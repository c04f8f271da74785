package usecase

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
)

// AuthUseCase signs actors in and out of a client session
type AuthUseCase interface {
	// Login checks credentials and persists the session in store
	Login(ctx context.Context, store persistence.KeyValueStore, username, password string) (*entity.Session, error)

	// Logout clears the session held in store
	Logout(ctx context.Context, store persistence.KeyValueStore) error

	// VerifyToken checks a credential token and returns its identity
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
}

// SessionResolver determines the current actor from a client session
type SessionResolver interface {
	Resolve(ctx context.Context) entity.Resolution
}

// SessionResolverFactory binds a resolver to one client session's store
type SessionResolverFactory func(store persistence.KeyValueStore) SessionResolver
