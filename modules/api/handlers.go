package api

import (
	"log"
	"os"
	"strings"

	userdomain "github.com/Darshank007/task-manager-fullstack/domain/user"
	"github.com/Darshank007/task-manager-fullstack/modules/auth"
	"github.com/Darshank007/task-manager-fullstack/modules/tasks"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	auth  auth.AuthPort
	tasks tasks.TasksPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authPort auth.AuthPort, tasksPort tasks.TasksPort) *Handlers {
	return &Handlers{
		auth:  authPort,
		tasks: tasksPort,
	}
}

// identityFrom extracts the identity resolved by the auth middleware.
func identityFrom(c *fiber.Ctx) (*userdomain.Identity, bool) {
	identity, ok := c.Locals(UserContextKey).(*userdomain.Identity)
	return identity, ok
}

// Register handles user registration.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	result, err := h.auth.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{
		Token: result.Token,
		User:  result.User,
	})
}

// Login handles user login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(AuthResponse{
		Token: result.Token,
		User:  result.User,
	})
}

// Profile returns the authenticated user's profile. The identity resolved by
// the middleware already carries the full public projection.
func (h *Handlers) Profile(c *fiber.Ctx) error {
	identity, ok := identityFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	return c.Status(fiber.StatusOK).JSON(ProfileResponse{User: *identity})
}

// ListTasks returns the caller's tasks, optionally filtered by title search
// and status.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	identity, ok := identityFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	results, err := h.tasks.List(c.UserContext(), identity.ID, c.Query("search"), c.Query("status"))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(TaskListResponse{
		Count: len(results),
		Tasks: results,
	})
}

// GetTask returns one of the caller's tasks by ID.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	identity, ok := identityFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	t, err := h.tasks.Get(c.UserContext(), identity.ID, c.Params("id"))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(t)
}

// CreateTask creates a task owned by the caller.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	identity, ok := identityFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	t, err := h.tasks.Create(c.UserContext(), identity.ID, req.Title, req.Description, req.Status)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(t)
}

// UpdateTask applies a partial update to one of the caller's tasks.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	identity, ok := identityFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	t, err := h.tasks.Update(c.UserContext(), identity.ID, c.Params("id"), req.Title, req.Description, req.Status)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(t)
}

// DeleteTask removes one of the caller's tasks.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	identity, ok := identityFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}

	if err := h.tasks.Delete(c.UserContext(), identity.ID, c.Params("id")); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{
		Message: "Task deleted successfully",
	})
}

// handleServiceError maps service errors to HTTP responses by matching known
// error messages, since errors cross the service container as text.
func (h *Handlers) handleServiceError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "invalid email or password"):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid email or password",
		})
	case strings.Contains(errStr, "already exists"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "User with this email already exists",
		})
	case strings.Contains(errStr, "name, email and password are required"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Name, email and password are required",
		})
	case strings.Contains(errStr, "invalid email format"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid email format",
		})
	case strings.Contains(errStr, "password must be at least"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Password must be at least 6 characters",
		})
	case strings.Contains(errStr, "password must be at most"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Password must be at most 72 characters",
		})
	case strings.Contains(errStr, "task title is required"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Task title is required",
		})
	case strings.Contains(errStr, "invalid task status"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Status must be one of: pending, in-progress, completed",
		})
	case strings.Contains(errStr, "task not found"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	case strings.Contains(errStr, "invalid token"), strings.Contains(errStr, "token has expired"):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid or expired token",
		})
	default:
		log.Printf("[api] Internal error: %v", err)
		message := "An internal error occurred"
		if os.Getenv("APP_ENV") != "production" {
			message = errStr
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: message,
		})
	}
}
