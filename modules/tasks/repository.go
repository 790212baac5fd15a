package tasks

import (
	"errors"
	"fmt"
	"strings"

	domain "github.com/Darshank007/task-manager-fullstack/domain/task"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a task does not exist or belongs to another
// owner. One error for both cases, so ownership boundaries never leak
// existence information.
var ErrNotFound = errors.New("task not found")

// ScopedRepository provides task storage access scoped to a single owner.
// It is constructed per request from the resolved identity; every query it
// emits carries the owner predicate, so no call site can bypass it.
type ScopedRepository struct {
	db      *gorm.DB
	ownerID string
}

// NewScopedRepository creates a repository scoped to the given owner.
func NewScopedRepository(db *gorm.DB, ownerID string) *ScopedRepository {
	return &ScopedRepository{db: db, ownerID: ownerID}
}

// scoped returns a query builder with the mandatory owner predicate applied.
func (r *ScopedRepository) scoped() *gorm.DB {
	return r.db.Where("owner_id = ?", r.ownerID)
}

// List retrieves the owner's tasks, newest first. search narrows by
// case-insensitive title substring, status by equality; either may be empty.
func (r *ScopedRepository) List(search string, status domain.Status) ([]domain.Task, error) {
	query := r.scoped()
	if search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	results := []domain.Task{}
	if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return results, nil
}

// FindByID retrieves a single task by ID within the owner scope.
func (r *ScopedRepository) FindByID(id string) (*domain.Task, error) {
	var t domain.Task
	if err := r.scoped().First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

// Create saves a new task. The owner is stamped from the repository scope,
// never from the entity the caller built.
func (r *ScopedRepository) Create(t *domain.Task) error {
	t.OwnerID = r.ownerID
	if err := r.db.Create(t).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// Update applies the given column values to an owned task in a single
// statement.
func (r *ScopedRepository) Update(id string, fields map[string]any) error {
	result := r.db.Model(&domain.Task{}).
		Where("id = ? AND owner_id = ?", id, r.ownerID).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an owned task by ID.
func (r *ScopedRepository) Delete(id string) error {
	result := r.db.Delete(&domain.Task{}, "id = ? AND owner_id = ?", id, r.ownerID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
