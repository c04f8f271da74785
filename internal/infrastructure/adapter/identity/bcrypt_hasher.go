package identity

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/identity"
)

// BcryptHasher hashes passwords with bcrypt
type BcryptHasher struct {
	cost int
}

var _ identity.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher. A cost outside bcrypt's range uses the default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash hashes a plaintext password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(hash), err
}

// Compare reports whether password matches hash
func (h *BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
