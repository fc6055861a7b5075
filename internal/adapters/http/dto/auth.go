package dto

import "github.com/jsamuelsen/quotes-api/internal/domain"

// CredentialsRequest is the body of POST /auth/signup and POST /auth/signin.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// AuthResponse is returned by a successful signup or signin.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// NewAuthResponse converts an auth result to its response body.
func NewAuthResponse(r *domain.AuthResult) AuthResponse {
	return AuthResponse{
		Message: r.Message,
		User:    UserResponse{ID: r.User.ID, Username: r.User.Username},
		Token:   r.Token,
	}
}
