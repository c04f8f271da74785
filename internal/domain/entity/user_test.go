package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserClone(t *testing.T) {
	user := newTestUser(2500)

	clone := user.Clone()
	clone.Balance = 0
	clone.Name = "Changed"

	assert.Equal(t, int64(2500), user.Balance)
	assert.Equal(t, "John Doe", user.Name)
}

func TestUserMatches(t *testing.T) {
	user := newTestUser(0)

	assert.True(t, user.Matches(""))
	assert.True(t, user.Matches("JOHN"))
	assert.True(t, user.Matches("mat123"))
	assert.True(t, user.Matches("0xab12"))
	assert.False(t, user.Matches("jane"))
}

func TestUserSameHolder(t *testing.T) {
	user := newTestUser(0)

	assert.True(t, user.SameHolder(&User{MatricNumber: "mat123456", CardNumber: "other"}))
	assert.True(t, user.SameHolder(&User{MatricNumber: "other", CardNumber: "0XAB12CD34"}))
	assert.False(t, user.SameHolder(&User{MatricNumber: "MAT1", CardNumber: "0x1"}))
}

func TestUserIdentity(t *testing.T) {
	identity := newTestUser(0).Identity()

	assert.Equal(t, Identity{ID: 1, Role: RoleStudent, Name: "John Doe", Username: "MAT123456"}, identity)
}
