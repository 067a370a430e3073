package auth

import (
	"go-ems/internal/employee"
	"go-ems/internal/session"
)

const (
	MessageRegistered = "Employee registered successfully"
	MessageLoggedOut  = "Successfully logged out"
)

type Credentials struct {
	Username             string `json:"username" binding:"required,max=150,username"`
	Email                string `json:"email" binding:"required,email,max=254"`
	Password             string `json:"password" binding:"required,max=128"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
}

// RegisterRequest is the flat registration payload. The two halves are
// validated in separate steps, so binding skips them.
type RegisterRequest struct {
	Credentials      `binding:"-"`
	employee.Profile `binding:"-"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Company     string `json:"company"`
	Department  string `json:"department"`
	DateHired   string `json:"date_hired"`
	Salary      string `json:"salary"`
}

// LoginResult carries the new session even when the profile lookup fails,
// so the caller can still set the cookie.
type LoginResult struct {
	Token   string
	Session *session.Session
	Profile *ProfileResponse
}
