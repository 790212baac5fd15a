package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	domain "github.com/Darshank007/task-manager-fullstack/domain/task"
	"github.com/Darshank007/task-manager-fullstack/modules/cache"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TasksModule provides owner-scoped task services.
type TasksModule struct {
	db      *gorm.DB
	service *Service
	cache   *cache.Cache
	dbPath  string
}

// Compile-time interface checks.
var _ mono.Module = (*TasksModule)(nil)
var _ mono.ServiceProviderModule = (*TasksModule)(nil)
var _ mono.HealthCheckableModule = (*TasksModule)(nil)

// NewModule creates a new TasksModule.
func NewModule() *TasksModule {
	dbPath := os.Getenv("TASKS_DB_PATH")
	if dbPath == "" {
		dbPath = "tasks.db"
	}
	return &TasksModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *TasksModule) Name() string {
	return "tasks"
}

// SetCache wires the optional read cache. May be called before or right
// after Start; a module without a cache serves every read from the database.
func (m *TasksModule) SetCache(c *cache.Cache) {
	m.cache = c
	if m.service != nil {
		m.service.SetCache(c)
	}
}

// Start initializes the tasks module.
func (m *TasksModule) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.service = NewService(db, m.cache)

	log.Printf("[tasks] Module started (database: %s, cache: %v)", m.dbPath, m.cache != nil)
	return nil
}

// Stop shuts down the module.
func (m *TasksModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[tasks] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *TasksModule) Health(_ context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.dbPath,
			"cache":    m.cache != nil,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *TasksModule) RegisterServices(container mono.ServiceContainer) error {
	services := []struct {
		name     string
		register func() error
	}{
		{"list-tasks", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "list-tasks", json.Unmarshal, json.Marshal, m.handleList)
		}},
		{"get-task", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "get-task", json.Unmarshal, json.Marshal, m.handleGet)
		}},
		{"create-task", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "create-task", json.Unmarshal, json.Marshal, m.handleCreate)
		}},
		{"update-task", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "update-task", json.Unmarshal, json.Marshal, m.handleUpdate)
		}},
		{"delete-task", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "delete-task", json.Unmarshal, json.Marshal, m.handleDelete)
		}},
	}

	for _, svc := range services {
		if err := svc.register(); err != nil {
			return fmt.Errorf("failed to register %s service: %w", svc.name, err)
		}
	}

	log.Printf("[tasks] Registered services: list-tasks, get-task, create-task, update-task, delete-task")
	return nil
}

func (m *TasksModule) handleList(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	results, err := m.service.List(ctx, req.OwnerID, req.Search, req.Status)
	if err != nil {
		return ListTasksResponse{}, err
	}
	return ListTasksResponse{Tasks: results}, nil
}

func (m *TasksModule) handleGet(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (GetTaskResponse, error) {
	t, err := m.service.Get(ctx, req.OwnerID, req.TaskID)
	if err != nil {
		return GetTaskResponse{}, err
	}
	return GetTaskResponse{Task: *t}, nil
}

func (m *TasksModule) handleCreate(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (CreateTaskResponse, error) {
	t, err := m.service.Create(ctx, req.OwnerID, req.Title, req.Description, req.Status)
	if err != nil {
		return CreateTaskResponse{}, err
	}
	return CreateTaskResponse{Task: *t}, nil
}

func (m *TasksModule) handleUpdate(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (UpdateTaskResponse, error) {
	t, err := m.service.Update(ctx, req.OwnerID, req.TaskID, UpdateFields{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return UpdateTaskResponse{}, err
	}
	return UpdateTaskResponse{Task: *t}, nil
}

func (m *TasksModule) handleDelete(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if err := m.service.Delete(ctx, req.OwnerID, req.TaskID); err != nil {
		return DeleteTaskResponse{}, err
	}
	return DeleteTaskResponse{Deleted: true}, nil
}
