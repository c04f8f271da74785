package dto

import "github.com/shopspring/decimal"

// CreateUserRequest is the new user form
type CreateUserRequest struct {
	Name           string          `json:"name"`
	MatricNumber   string          `json:"matricNumber"`
	CardNumber     string          `json:"cardNumber"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Password       string          `json:"password"`
}

// UsersView is the user management page
type UsersView struct {
	View
	Search       string    `json:"search"`
	Users        []UserDTO `json:"users"`
	EmptyMessage string    `json:"emptyMessage,omitempty"`
}

// UserResponse reports a single user
type UserResponse struct {
	Message string  `json:"message,omitempty"`
	User    UserDTO `json:"user"`
}
