package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/identity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
)

// Account is an operator login defined in configuration
type Account struct {
	ID           uint64
	Username     string
	Name         string
	Role         entity.Role
	PasswordHash string
}

func (a Account) identity() entity.Identity {
	return entity.Identity{ID: a.ID, Role: a.Role, Name: a.Name, Username: a.Username}
}

// Service signs operators and students in and out
type Service struct {
	accounts map[string]Account
	users    persistence.UserRepository
	hasher   identity.PasswordHasher
	issuer   identity.TokenIssuer
	logger   coreport.Logger
}

var _ usecase.AuthUseCase = (*Service)(nil)

// NewService creates the auth service. With a nil issuer no token is
// stored at login and every token fails verification.
func NewService(
	accounts []Account,
	users persistence.UserRepository,
	hasher identity.PasswordHasher,
	issuer identity.TokenIssuer,
	logger coreport.Logger,
) *Service {
	byName := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byName[a.Username] = a
	}
	return &Service{
		accounts: byName,
		users:    users,
		hasher:   hasher,
		issuer:   issuer,
		logger:   logger,
	}
}

// Login checks credentials and persists currentUser, plus token when tokens are issued.
// Operator accounts take precedence over students with the same matric number.
func (s *Service) Login(ctx context.Context, store persistence.KeyValueStore, username, password string) (*entity.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", errs.ErrMissingField)
	}

	who, err := s.authenticate(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	session := entity.NewSession(who)
	data, err := session.Encode()
	if err != nil {
		return nil, fmt.Errorf("%w: encoding session: %v", errs.ErrInternalServer, err)
	}
	entries := map[string][]byte{entity.KeyCurrentUser: data}

	if s.issuer != nil {
		token, err := s.issuer.Issue(who)
		if err != nil {
			return nil, err
		}
		entries[entity.KeyToken] = []byte(token)
	}

	if err := store.SetMany(ctx, entries); err != nil {
		s.logger.Error("Failed to persist session", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Login succeeded", map[string]any{
		"username": who.Username,
		"role":     string(who.Role),
	})
	return session, nil
}

func (s *Service) authenticate(ctx context.Context, username, password string) (entity.Identity, error) {
	if account, ok := s.accounts[username]; ok {
		if !s.hasher.Compare(account.PasswordHash, password) {
			return entity.Identity{}, errs.ErrAuthFailure
		}
		return account.identity(), nil
	}

	user, err := s.users.GetByMatricNumber(ctx, username)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return entity.Identity{}, errs.ErrAuthFailure
		}
		return entity.Identity{}, err
	}
	if user.PasswordHash == "" || !s.hasher.Compare(user.PasswordHash, password) {
		return entity.Identity{}, errs.ErrAuthFailure
	}
	return user.Identity(), nil
}

// Logout clears currentUser and token
func (s *Service) Logout(ctx context.Context, store persistence.KeyValueStore) error {
	for _, key := range []string{entity.KeyCurrentUser, entity.KeyToken} {
		if err := store.Remove(ctx, key); err != nil && !errs.IsNotFoundError(err) {
			s.logger.Error("Failed to clear session", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}

// VerifyToken checks a token issued at login
func (s *Service) VerifyToken(_ context.Context, token string) (*entity.Identity, error) {
	token = strings.TrimSpace(token)
	if s.issuer == nil || token == "" {
		return nil, errs.ErrSessionInvalid
	}
	return s.issuer.Parse(token)
}
