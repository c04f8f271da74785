package identity

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/identity"
)

// Claims is the payload of an access token
type Claims struct {
	Role     string `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 access tokens
type JWTIssuer struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

var _ identity.TokenIssuer = (*JWTIssuer)(nil)

// NewJWTIssuer creates an issuer. A zero ttl means tokens never expire.
func NewJWTIssuer(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) *JWTIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue signs a token carrying id
func (j *JWTIssuer) Issue(id entity.Identity) (string, error) {
	now := j.timeProvider.Now()
	claims := Claims{
		Role:     string(id.Role),
		Name:     id.Name,
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Subject:   strconv.FormatUint(id.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if j.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(j.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("%w: signing token: %v", errs.ErrInternalServer, err)
	}
	return signed, nil
}

// Parse validates signature, issuer and lifetime and returns the identity
func (j *JWTIssuer) Parse(tokenString string) (*entity.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	},
		jwt.WithIssuer(j.issuer),
		jwt.WithTimeFunc(j.timeProvider.Now),
	)
	if err != nil {
		reason := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "token has expired"
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrSessionInvalid, reason)
	}
	if !token.Valid {
		return nil, errs.ErrSessionInvalid
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", errs.ErrSessionInvalid)
	}

	return &entity.Identity{
		ID:       id,
		Role:     entity.ParseRole(claims.Role),
		Name:     claims.Name,
		Username: claims.Username,
	}, nil
}
