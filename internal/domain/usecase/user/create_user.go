package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
)

// CreateUser validates and registers a new card holder
func (u *UserUseCase) CreateUser(ctx context.Context, req usecase.CreateUserRequest) (*entity.User, error) {
	name := strings.TrimSpace(req.Name)
	matric := strings.TrimSpace(req.MatricNumber)
	card := strings.TrimSpace(req.CardNumber)

	// Validate required fields
	required := []struct{ field, value string }{
		{"name", name},
		{"matricNumber", matric},
		{"cardNumber", card},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%w: %s", errs.ErrMissingField, r.field)
		}
	}

	// Validate initial balance
	if req.InitialBalance < 0 {
		return nil, errs.ErrNegativeAmount
	}
	if req.InitialBalance > entity.MaxBalance {
		return nil, errs.ErrAmountOverflow
	}

	password := req.Password
	if password == "" {
		password = matric
	}
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %v", errs.ErrInternalServer, err)
	}

	user := &entity.User{
		Name:         name,
		MatricNumber: matric,
		CardNumber:   card,
		Balance:      req.InitialBalance,
		CreatedAt:    u.timeProvider.Now(),
		PasswordHash: hash,
	}

	// Save the user; the repository assigns the ID and rejects duplicates
	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"matricNumber": matric,
			"error":        err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":         user.ID,
		"matricNumber":   matric,
		"initialBalance": req.InitialBalance,
	})

	return user, nil
}
