package repository

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
)

// UserRepository implements persistence.UserRepository over the appUsers document
type UserRepository struct {
	c *Collections
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// List returns every user in insertion order
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	users, _, err := r.c.loadUsers(ctx)
	return users, err
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	users, _, err := r.c.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}

	r.c.logger.Debug("User not found", map[string]any{"user_id": id})
	return nil, errs.ErrUserNotFound
}

// GetByMatricNumber retrieves a user by matric number
func (r *UserRepository) GetByMatricNumber(ctx context.Context, matricNumber string) (*entity.User, error) {
	users, _, err := r.c.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if strings.EqualFold(user.MatricNumber, matricNumber) {
			return user, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

// Create appends user with the next free ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	users, _, err := r.c.loadUsers(ctx)
	if err != nil {
		return err
	}

	var maxID uint64
	for _, existing := range users {
		if existing.SameHolder(user) {
			r.c.logger.Warn("Duplicate user", map[string]any{
				"matric_number": user.MatricNumber,
				"card_number":   user.CardNumber,
			})
			return errs.ErrDuplicateUser
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	user.ID = maxID + 1
	if err := r.c.write(ctx, map[string]any{entity.KeyAppUsers: append(users, user)}); err != nil {
		return err
	}

	r.c.logger.Debug("User stored", map[string]any{"user_id": user.ID})
	return nil
}

// Seed stores users only when appUsers has never been written
func (r *UserRepository) Seed(ctx context.Context, users []*entity.User) (bool, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	_, found, err := r.c.loadUsers(ctx)
	if err != nil || found {
		return false, err
	}
	if err := r.c.write(ctx, map[string]any{entity.KeyAppUsers: users}); err != nil {
		return false, err
	}
	return true, nil
}
