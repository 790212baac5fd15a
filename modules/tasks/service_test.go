package tasks

import (
	"context"
	"errors"
	"testing"

	domain "github.com/Darshank007/task-manager-fullstack/domain/task"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return NewService(db, nil)
}

func strPtr(s string) *string {
	return &s
}

func TestService_Create(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		task, err := service.Create(ctx, "owner-a", "Buy milk", "", "")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if task.ID == "" {
			t.Error("task.ID is empty")
		}
		if task.Status != domain.StatusPending {
			t.Errorf("task.Status = %v, want pending", task.Status)
		}
		if task.Description != "" {
			t.Errorf("task.Description = %v, want empty", task.Description)
		}
		if task.OwnerID != "owner-a" {
			t.Errorf("task.OwnerID = %v, want owner-a", task.OwnerID)
		}
		if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
			t.Error("timestamps not set")
		}
	})

	t.Run("explicit status", func(t *testing.T) {
		task, err := service.Create(ctx, "owner-a", "Walk dog", "around the block", "in-progress")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if task.Status != domain.StatusInProgress {
			t.Errorf("task.Status = %v, want in-progress", task.Status)
		}
	})

	t.Run("title trimmed", func(t *testing.T) {
		task, err := service.Create(ctx, "owner-a", "  padded  ", "", "")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if task.Title != "padded" {
			t.Errorf("task.Title = %q, want %q", task.Title, "padded")
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		if _, err := service.Create(ctx, "owner-a", "   ", "", ""); !errors.Is(err, ErrTitleRequired) {
			t.Errorf("Create() error = %v, want ErrTitleRequired", err)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		if _, err := service.Create(ctx, "owner-a", "task", "", "done"); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("Create() error = %v, want ErrInvalidStatus", err)
		}
	})
}

func TestService_List_LenientStatusFilter(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	if _, err := service.Create(ctx, "owner-a", "first", "", "pending"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := service.Create(ctx, "owner-a", "second", "", "completed"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// An unrecognized filter value is ignored, not rejected.
	results, err := service.List(ctx, "owner-a", "", "bogus-status")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2 (filter ignored)", len(results))
	}

	// A recognized filter still narrows.
	results, err = service.List(ctx, "owner-a", "", "completed")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(results) != 1 || results[0].Title != "second" {
		t.Errorf("filtered results = %+v, want only 'second'", results)
	}
}

func TestService_Get(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "owner-a", "findable", "", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("own task", func(t *testing.T) {
		task, err := service.Get(ctx, "owner-a", created.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if task.ID != created.ID {
			t.Errorf("task.ID = %v, want %v", task.ID, created.ID)
		}
	})

	t.Run("foreign task", func(t *testing.T) {
		if _, err := service.Get(ctx, "owner-b", created.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		if _, err := service.Get(ctx, "owner-a", "no-such-id"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
	})
}

func TestService_Update(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "owner-a", "original", "original description", "pending")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("partial update touches only supplied fields", func(t *testing.T) {
		updated, err := service.Update(ctx, "owner-a", created.ID, UpdateFields{
			Status: strPtr("completed"),
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Status != domain.StatusCompleted {
			t.Errorf("Status = %v, want completed", updated.Status)
		}
		if updated.Title != "original" {
			t.Errorf("Title = %v, want original untouched", updated.Title)
		}
		if updated.Description != "original description" {
			t.Errorf("Description = %v, want untouched", updated.Description)
		}
	})

	t.Run("description can be cleared", func(t *testing.T) {
		updated, err := service.Update(ctx, "owner-a", created.ID, UpdateFields{
			Description: strPtr(""),
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Description != "" {
			t.Errorf("Description = %q, want cleared", updated.Description)
		}
	})

	t.Run("invalid status rejects whole update", func(t *testing.T) {
		_, err := service.Update(ctx, "owner-a", created.ID, UpdateFields{
			Title:  strPtr("should not land"),
			Status: strPtr("bogus"),
		})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("Update() error = %v, want ErrInvalidStatus", err)
		}

		current, err := service.Get(ctx, "owner-a", created.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if current.Title == "should not land" {
			t.Error("rejected update modified the title")
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := service.Update(ctx, "owner-a", created.ID, UpdateFields{
			Title: strPtr("   "),
		})
		if !errors.Is(err, ErrTitleRequired) {
			t.Errorf("Update() error = %v, want ErrTitleRequired", err)
		}
	})

	t.Run("foreign task", func(t *testing.T) {
		_, err := service.Update(ctx, "owner-b", created.ID, UpdateFields{
			Title: strPtr("hijacked"),
		})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := service.Update(ctx, "owner-a", "no-such-id", UpdateFields{
			Title: strPtr("ghost"),
		})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})
}

func TestService_Delete(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "owner-a", "doomed", "", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("foreign delete leaves task intact", func(t *testing.T) {
		if err := service.Delete(ctx, "owner-b", created.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
		if _, err := service.Get(ctx, "owner-a", created.ID); err != nil {
			t.Errorf("task disappeared after foreign delete: %v", err)
		}
	})

	t.Run("own delete", func(t *testing.T) {
		if err := service.Delete(ctx, "owner-a", created.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := service.Get(ctx, "owner-a", created.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
		}
	})

	t.Run("repeat delete", func(t *testing.T) {
		if err := service.Delete(ctx, "owner-a", created.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("second Delete() error = %v, want ErrNotFound", err)
		}
	})
}
