package identity

import (
	"context"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
)

// Verification is the answer of the token verification endpoint
type Verification struct {
	Auth bool            `json:"auth"`
	User entity.Identity `json:"user"`
}

// Verifier confirms a credential token with a trusted endpoint
type Verifier interface {
	// Verify returns the server's verdict for token.
	//
	// Possible errors:
	// - ErrNetworkFailure: If the endpoint cannot be reached
	// - ErrSessionInvalid: If the endpoint rejects the token or answers with something undecodable
	Verify(ctx context.Context, token string) (*Verification, error)
}

// TokenIssuer signs and checks credential tokens
type TokenIssuer interface {
	// Issue signs a token carrying identity
	Issue(identity entity.Identity) (string, error)

	// Parse checks a token and returns the identity it carries
	//
	// Possible errors:
	// - ErrSessionInvalid: If the token is malformed, badly signed or expired
	Parse(token string) (*entity.Identity, error)
}

// PasswordHasher hashes and checks passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
