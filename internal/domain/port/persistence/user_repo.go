package persistence

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
)

// UserRepository defines essential methods to interact with the user collection
type UserRepository interface {
	// List returns every user in insertion order. An absent collection is empty.
	List(ctx context.Context) ([]*entity.User, error)

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByMatricNumber retrieves a user by matric number, ignoring case
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that matric number
	GetByMatricNumber(ctx context.Context, matricNumber string) (*entity.User, error)

	// Create appends a user and assigns it the next ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the matric or card number is already registered
	Create(ctx context.Context, user *entity.User) error

	// Seed stores users only when the collection has never been written.
	// It reports whether the seed was applied.
	Seed(ctx context.Context, users []*entity.User) (bool, error)
}
