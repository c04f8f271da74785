package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/identity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	logRepo      persistence.TransactionLogRepository
	hasher       identity.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	demoData     bool
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	logRepo persistence.TransactionLogRepository,
	hasher identity.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		logRepo:      logRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// WithDemoData makes seeding also fill an empty log with sample entries
func (u *UserUseCase) WithDemoData(enabled bool) *UserUseCase {
	u.demoData = enabled
	return u
}

// GetUser retrieves a single user
func (u *UserUseCase) GetUser(ctx context.Context, id uint64) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// ListUsers returns users whose name, matric or card number contain search
func (u *UserUseCase) ListUsers(ctx context.Context, search string) ([]*entity.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return users, nil
	}

	matched := make([]*entity.User, 0, len(users))
	for _, user := range users {
		if user.Matches(search) {
			matched = append(matched, user)
		}
	}
	return matched, nil
}
