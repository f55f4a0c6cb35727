package dto

import "github.com/ridebite/backend/internal/session"

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	User  *session.User `json:"user"`
}

// DataResponse is the success envelope the web client expects: payloads
// are nested under "data".
type DataResponse struct {
	Data interface{} `json:"data"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	// Redirect carries the login entry point (with the originally
	// requested path) when the route guard turns a request away.
	Redirect string `json:"redirect,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
