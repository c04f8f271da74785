package entity

import (
	"strings"
	"time"
)

// User is a card holder with a balance in whole currency units
type User struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	MatricNumber string    `json:"matricNumber"`
	CardNumber   string    `json:"cardNumber"`
	Balance      int64     `json:"balance"`
	CreatedAt    time.Time `json:"createdAt"`
	PasswordHash string    `json:"passwordHash,omitempty"`
}

// Clone returns a copy that can be changed without touching the receiver
func (u *User) Clone() *User {
	clone := *u
	return &clone
}

// Identity returns the student identity used for sessions
func (u *User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Role:     RoleStudent,
		Name:     u.Name,
		Username: u.MatricNumber,
	}
}

// Matches reports whether the user's name, matric number or card number
// contains term, ignoring case. An empty term matches everyone.
func (u *User) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), term) ||
		strings.Contains(strings.ToLower(u.MatricNumber), term) ||
		strings.Contains(strings.ToLower(u.CardNumber), term)
}

// SameHolder reports whether other uses the same matric or card number
func (u *User) SameHolder(other *User) bool {
	return strings.EqualFold(u.MatricNumber, other.MatricNumber) ||
		strings.EqualFold(u.CardNumber, other.CardNumber)
}
