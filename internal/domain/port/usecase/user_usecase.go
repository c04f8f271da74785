package usecase

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
)

// CreateUserRequest carries the fields of the new user form
type CreateUserRequest struct {
	Name           string
	MatricNumber   string
	CardNumber     string
	InitialBalance int64
	// Password defaults to the matric number when empty
	Password string
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// CreateUser validates and registers a new card holder
	CreateUser(ctx context.Context, req CreateUserRequest) (*entity.User, error)

	// ListUsers returns users whose name, matric or card number contain search
	ListUsers(ctx context.Context, search string) ([]*entity.User, error)

	// GetUser retrieves a single user
	GetUser(ctx context.Context, id uint64) (*entity.User, error)

	// SeedDefaultUsers fills empty collections with the demo data set
	SeedDefaultUsers(ctx context.Context) error
}
