package auth

import (
	domain "github.com/Darshank007/task-manager-fullstack/domain/user"
)

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse represents a user registration response.
type RegisterResponse struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a user login response.
type LoginResponse struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

// ResolveTokenRequest represents a token resolution request.
type ResolveTokenRequest struct {
	Token string `json:"token"`
}

// ResolveTokenResponse carries the resolved identity for a valid token.
type ResolveTokenResponse struct {
	User domain.Identity `json:"user"`
}
