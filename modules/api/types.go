package api

import (
	taskdomain "github.com/Darshank007/task-manager-fullstack/domain/task"
	userdomain "github.com/Darshank007/task-manager-fullstack/domain/user"
)

// RegisterRequest represents a user registration request body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login: a bearer token plus the
// public user projection.
type AuthResponse struct {
	Token string              `json:"token"`
	User  userdomain.Identity `json:"user"`
}

// ProfileResponse represents the authenticated user's profile.
type ProfileResponse struct {
	User userdomain.Identity `json:"user"`
}

// CreateTaskRequest represents a task creation request body.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateTaskRequest represents a partial task update body. Absent fields are
// left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// TaskListResponse represents a task list with its count.
type TaskListResponse struct {
	Count int               `json:"count"`
	Tasks []taskdomain.Task `json:"tasks"`
}

// MessageResponse represents a simple confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
