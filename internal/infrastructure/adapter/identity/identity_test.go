package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/cardpay-admin/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer(t *testing.T) {
	issuedAt := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)
	admin := entity.Identity{ID: 1, Role: entity.RoleAdmin, Name: "Administrator", Username: "admin"}

	t.Run("Round trip", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(issuedAt).Maybe()

		issuer := NewJWTIssuer("secret", "cardpay-admin", time.Hour, mockTime)

		token, err := issuer.Issue(admin)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		parsed, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, admin, *parsed)
	})

	t.Run("Expired token", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(issuedAt).Once()

		issuer := NewJWTIssuer("secret", "cardpay-admin", time.Minute, mockTime)
		token, err := issuer.Issue(admin)
		require.NoError(t, err)

		mockTime.EXPECT().Now().Return(issuedAt.Add(2 * time.Minute)).Maybe()

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, errs.ErrSessionInvalid)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("Wrong secret", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(issuedAt).Maybe()

		token, err := NewJWTIssuer("secret", "cardpay-admin", time.Hour, mockTime).Issue(admin)
		require.NoError(t, err)

		_, err = NewJWTIssuer("other", "cardpay-admin", time.Hour, mockTime).Parse(token)
		assert.ErrorIs(t, err, errs.ErrSessionInvalid)
	})

	t.Run("Wrong issuer", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(issuedAt).Maybe()

		token, err := NewJWTIssuer("secret", "someone-else", time.Hour, mockTime).Issue(admin)
		require.NoError(t, err)

		_, err = NewJWTIssuer("secret", "cardpay-admin", time.Hour, mockTime).Parse(token)
		assert.ErrorIs(t, err, errs.ErrSessionInvalid)
	})

	t.Run("Garbage", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(issuedAt).Maybe()

		_, err := NewJWTIssuer("secret", "cardpay-admin", time.Hour, mockTime).Parse("not-a-token")
		assert.ErrorIs(t, err, errs.ErrSessionInvalid)
	})
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("MAT123456")
	require.NoError(t, err)
	assert.NotEqual(t, "MAT123456", hash)

	assert.True(t, hasher.Compare(hash, "MAT123456"))
	assert.False(t, hasher.Compare(hash, "wrong"))
	assert.False(t, hasher.Compare("not-a-hash", "MAT123456"))
}

func TestHTTPVerifier(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful verification", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, VerifyPath, r.URL.Path)
			assert.Equal(t, "abc", r.Header.Get(TokenHeader))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"auth":true,"user":{"id":7,"role":"admin","name":"Administrator","username":"admin"}}`))
		}))
		defer server.Close()

		verification, err := NewHTTPVerifier(server.URL+"/", time.Second).Verify(ctx, "abc")
		require.NoError(t, err)
		assert.True(t, verification.Auth)
		assert.Equal(t, uint64(7), verification.User.ID)
		assert.Equal(t, entity.RoleAdmin, verification.User.Role)
	})

	t.Run("Non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"auth":false}`))
		}))
		defer server.Close()

		_, err := NewHTTPVerifier(server.URL, time.Second).Verify(ctx, "abc")
		assert.ErrorIs(t, err, errs.ErrSessionInvalid)
	})

	t.Run("Undecodable body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer server.Close()

		_, err := NewHTTPVerifier(server.URL, time.Second).Verify(ctx, "abc")
		assert.ErrorIs(t, err, errs.ErrSessionInvalid)
	})

	t.Run("Unreachable endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := NewHTTPVerifier(url, time.Second).Verify(ctx, "abc")
		assert.True(t, errors.Is(err, errs.ErrNetworkFailure))
	})
}
