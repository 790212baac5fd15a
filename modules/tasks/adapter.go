package tasks

import (
	"context"
	"encoding/json"

	domain "github.com/Darshank007/task-manager-fullstack/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TasksPort defines the interface other modules use to access task
// functionality. Every operation takes the resolved owner identity; there is
// no unscoped variant.
type TasksPort interface {
	List(ctx context.Context, ownerID, search, status string) ([]domain.Task, error)
	Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error)
	Create(ctx context.Context, ownerID, title, description, status string) (*domain.Task, error)
	Update(ctx context.Context, ownerID, taskID string, title, description, status *string) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}

// TasksAdapter implements TasksPort using the service container.
type TasksAdapter struct {
	container mono.ServiceContainer
}

// NewTasksAdapter creates a new TasksAdapter.
func NewTasksAdapter(container mono.ServiceContainer) *TasksAdapter {
	return &TasksAdapter{
		container: container,
	}
}

// List retrieves the owner's tasks with optional filters.
func (a *TasksAdapter) List(ctx context.Context, ownerID, search, status string) ([]domain.Task, error) {
	req := ListTasksRequest{OwnerID: ownerID, Search: search, Status: status}
	var resp ListTasksResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-tasks",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// Get retrieves a single owned task.
func (a *TasksAdapter) Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	req := GetTaskRequest{OwnerID: ownerID, TaskID: taskID}
	var resp GetTaskResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-task",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

// Create stores a new task owned by ownerID.
func (a *TasksAdapter) Create(ctx context.Context, ownerID, title, description, status string) (*domain.Task, error) {
	req := CreateTaskRequest{OwnerID: ownerID, Title: title, Description: description, Status: status}
	var resp CreateTaskResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-task",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

// Update applies a partial update to an owned task.
func (a *TasksAdapter) Update(ctx context.Context, ownerID, taskID string, title, description, status *string) (*domain.Task, error) {
	req := UpdateTaskRequest{
		OwnerID:     ownerID,
		TaskID:      taskID,
		Title:       title,
		Description: description,
		Status:      status,
	}
	var resp UpdateTaskResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-task",
		json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, err
	}
	return &resp.Task, nil
}

// Delete removes an owned task.
func (a *TasksAdapter) Delete(ctx context.Context, ownerID, taskID string) error {
	req := DeleteTaskRequest{OwnerID: ownerID, TaskID: taskID}
	var resp DeleteTaskResponse

	return helper.CallRequestReplyService(
		ctx, a.container, "delete-task",
		json.Marshal, json.Unmarshal, &req, &resp,
	)
}
