package session

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/identity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
)

// Mode selects how the current actor is resolved
type Mode string

const (
	// ModeLocal trusts the stored currentUser record
	ModeLocal Mode = "local"
	// ModeVerified confirms the stored token with a verification endpoint
	ModeVerified Mode = "verified"
)

// ParseMode validates a configured mode name
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLocal, ModeVerified:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown session mode %q", s)
	}
}

// NewResolverFactory returns a factory producing resolvers of the given mode.
// verifier is only used in verified mode.
func NewResolverFactory(mode Mode, verifier identity.Verifier, logger coreport.Logger) usecase.SessionResolverFactory {
	return func(store persistence.KeyValueStore) usecase.SessionResolver {
		if mode == ModeVerified {
			return NewVerifiedResolver(store, verifier, logger)
		}
		return NewLocalResolver(store, logger)
	}
}

// readSession loads currentUser. A missing or unreadable record is reported as nil.
func readSession(ctx context.Context, store persistence.KeyValueStore, logger coreport.Logger) *entity.Session {
	data, err := store.Get(ctx, entity.KeyCurrentUser)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			logger.Warn("Failed to read session record", map[string]any{
				"error": err.Error(),
			})
		}
		return nil
	}

	session, err := entity.DecodeSession(data)
	if err != nil {
		logger.Warn("Discarding malformed session record", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	return session
}
