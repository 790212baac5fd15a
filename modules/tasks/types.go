package tasks

import (
	domain "github.com/Darshank007/task-manager-fullstack/domain/task"
)

// ListTasksRequest represents a task list request for one owner.
type ListTasksRequest struct {
	OwnerID string `json:"owner_id"`
	Search  string `json:"search,omitempty"`
	Status  string `json:"status,omitempty"`
}

// ListTasksResponse represents a task list response.
type ListTasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
}

// GetTaskRequest represents a single-task fetch request.
type GetTaskRequest struct {
	OwnerID string `json:"owner_id"`
	TaskID  string `json:"task_id"`
}

// GetTaskResponse represents a single-task fetch response.
type GetTaskResponse struct {
	Task domain.Task `json:"task"`
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// CreateTaskResponse represents a task creation response.
type CreateTaskResponse struct {
	Task domain.Task `json:"task"`
}

// UpdateTaskRequest represents a partial task update. Nil fields are not
// touched; present fields are validated as a whole before persisting.
type UpdateTaskRequest struct {
	OwnerID     string  `json:"owner_id"`
	TaskID      string  `json:"task_id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// UpdateTaskResponse represents a task update response.
type UpdateTaskResponse struct {
	Task domain.Task `json:"task"`
}

// DeleteTaskRequest represents a task deletion request.
type DeleteTaskRequest struct {
	OwnerID string `json:"owner_id"`
	TaskID  string `json:"task_id"`
}

// DeleteTaskResponse represents a task deletion response.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}
