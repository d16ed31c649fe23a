package dto

import "github.com/mkaraca/careergate/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
}

// RegisterRequest represents a new account request. The confirmation field is
// checked at the gateway boundary before anything goes upstream.
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	UserType        string `json:"userType" binding:"required"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	CompanyName     string `json:"companyName,omitempty"`
}

// AdminLoginRequest represents admin login credentials
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse reports the established session and where to navigate next
type LoginResponse struct {
	UserID      int64       `json:"userId"`
	UserType    models.Role `json:"userType"`
	RedirectURL string      `json:"redirectUrl"`
}

// SessionResponse reports the current session state
type SessionResponse struct {
	Session models.Session `json:"session"`
}
