package session

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/identity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
)

// VerifiedResolver confirms the stored token with a trusted endpoint on every call.
// The server's answer always wins over the cached currentUser.
type VerifiedResolver struct {
	store    persistence.KeyValueStore
	verifier identity.Verifier
	logger   coreport.Logger
}

// NewVerifiedResolver creates a resolver over one client session's store
func NewVerifiedResolver(store persistence.KeyValueStore, verifier identity.Verifier, logger coreport.Logger) *VerifiedResolver {
	return &VerifiedResolver{store: store, verifier: verifier, logger: logger}
}

// Resolve never fails: verification errors clear the session and resolve unauthenticated
func (r *VerifiedResolver) Resolve(ctx context.Context) entity.Resolution {
	if ctx.Err() != nil {
		return entity.Resolution{}
	}

	raw, err := r.store.Get(ctx, entity.KeyToken)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			r.logger.Warn("Failed to read session token", map[string]any{
				"error": err.Error(),
			})
		}
		return entity.Unauthenticated()
	}
	token := string(raw)
	if token == "" {
		return entity.Unauthenticated()
	}

	verification, err := r.verifier.Verify(ctx, token)
	if err != nil {
		if ctx.Err() != nil {
			return entity.Resolution{}
		}
		r.logger.Warn("Session verification failed", map[string]any{
			"error":    err.Error(),
			"category": string(errs.CategoryOf(err)),
		})
		r.clear(ctx)
		return entity.Unauthenticated()
	}

	session := r.reconcile(ctx, verification)
	if !session.IsAuthenticated {
		return entity.Unauthenticated()
	}
	return entity.Authenticated(session)
}

// reconcile overwrites the cached session when any field differs from the server's
func (r *VerifiedResolver) reconcile(ctx context.Context, verification *identity.Verification) *entity.Session {
	server := entity.NewSession(verification.User)
	server.IsAuthenticated = verification.Auth

	cached := readSession(ctx, r.store, r.logger)
	if cached != nil && *cached == *server {
		return cached
	}

	data, err := server.Encode()
	if err == nil {
		err = r.store.Set(ctx, entity.KeyCurrentUser, data)
	}
	if err != nil {
		r.logger.Warn("Failed to refresh cached session", map[string]any{
			"error": err.Error(),
		})
	} else if cached != nil {
		r.logger.Info("Cached session replaced by verified identity", map[string]any{
			"userId": server.ID,
			"role":   string(server.Role),
		})
	}
	return server
}

func (r *VerifiedResolver) clear(ctx context.Context) {
	for _, key := range []string{entity.KeyCurrentUser, entity.KeyToken} {
		if err := r.store.Remove(ctx, key); err != nil && !errs.IsNotFoundError(err) {
			r.logger.Warn("Failed to clear session state", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
}
