package dto

import "github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"

// LoginRequest is the login form
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginView is the login page
type LoginView struct {
	View
	From string `json:"from,omitempty"`
}

// LoginResponse tells the client where to go after signing in
type LoginResponse struct {
	Session  *entity.Session `json:"session"`
	Redirect string          `json:"redirect"`
}

// VerifyResponse is the body of the token verification endpoint
type VerifyResponse struct {
	Auth bool             `json:"auth"`
	User *entity.Identity `json:"user,omitempty"`
}

// LanguageRequest switches the UI language
type LanguageRequest struct {
	Language string `json:"language" form:"language"`
}

// LanguageResponse confirms the active language
type LanguageResponse struct {
	Locale    string `json:"locale"`
	Direction string `json:"direction"`
	Message   string `json:"message"`
}
