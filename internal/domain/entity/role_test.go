package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleHome(t *testing.T) {
	testCases := []struct {
		role     Role
		expected string
	}{
		{RoleAdmin, "/dashboard"},
		{RoleStudent, "/student-dashboard"},
		{RoleUser, "/logs"},
		{Role("auditor"), "/logs"},
		{Role(""), "/logs"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role), func(t *testing.T) {
			assert.Equal(t, tc.expected, RoleHome(tc.role))
		})
	}
}

func TestRoleIn(t *testing.T) {
	assert.True(t, RoleAdmin.In([]Role{RoleAdmin, RoleUser}))
	assert.False(t, RoleStudent.In([]Role{RoleAdmin}))
	assert.False(t, RoleAdmin.In(nil))
	assert.Equal(t, RoleAdmin, ParseRole(" Admin "))
}

func TestDecodeSession(t *testing.T) {
	t.Run("Valid record", func(t *testing.T) {
		session, err := DecodeSession([]byte(`{"isAuthenticated":true,"role":"admin","id":0,"name":"Administrator","username":"admin"}`))

		require.NoError(t, err)
		assert.True(t, session.IsAuthenticated)
		assert.Equal(t, RoleAdmin, session.Role)
		assert.Equal(t, "admin", session.Username)
	})

	t.Run("Malformed record", func(t *testing.T) {
		for _, payload := range []string{"not json", "", `{"isAuthenticated":"yes"}`} {
			session, err := DecodeSession([]byte(payload))

			assert.Nil(t, session)
			assert.ErrorIs(t, err, errs.ErrSessionInvalid)
		}
	})

	t.Run("Round trip", func(t *testing.T) {
		original := NewSession(Identity{ID: 3, Role: RoleStudent, Name: "Robert Johnson", Username: "MAT789012"})

		data, err := original.Encode()
		require.NoError(t, err)

		decoded, err := DecodeSession(data)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
		assert.True(t, decoded.Matches(original.Identity()))
	})
}
