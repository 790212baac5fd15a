package tasks

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	domain "github.com/Darshank007/task-manager-fullstack/domain/task"
	"github.com/Darshank007/task-manager-fullstack/modules/cache"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var (
	// ErrTitleRequired is returned when a task title is empty after trimming.
	ErrTitleRequired = errors.New("task title is required")
	// ErrInvalidStatus is returned when a supplied status is not one of the
	// three known values.
	ErrInvalidStatus = errors.New("invalid task status")
)

// UpdateFields carries a partial task update. Nil fields are left untouched.
type UpdateFields struct {
	Title       *string
	Description *string
	Status      *string
}

// Service implements the owner-scoped task operations. The cache is optional;
// a nil cache means every read goes to the database.
type Service struct {
	db    *gorm.DB
	cache *cache.Cache
	group singleflight.Group
}

// NewService creates a new task service.
func NewService(db *gorm.DB, c *cache.Cache) *Service {
	return &Service{db: db, cache: c}
}

// SetCache attaches a read cache to an already constructed service.
func (s *Service) SetCache(c *cache.Cache) {
	s.cache = c
}

// scoped builds the per-request repository for the given owner.
func (s *Service) scoped(ownerID string) *ScopedRepository {
	return NewScopedRepository(s.db, ownerID)
}

func cacheKeyByID(ownerID, taskID string) string {
	return ownerID + ":id:" + taskID
}

func cacheKeyList(ownerID, search string, status domain.Status) string {
	return ownerID + ":list:" + search + ":" + string(status)
}

// List returns the owner's tasks, newest first. An unrecognized statusFilter
// is ignored rather than rejected; create/update are the strict side of that
// asymmetry.
func (s *Service) List(ctx context.Context, ownerID, search, statusFilter string) ([]domain.Task, error) {
	status := domain.Status(statusFilter)
	if !status.Valid() {
		status = ""
	}

	if s.cache == nil {
		return s.scoped(ownerID).List(search, status)
	}

	key := cacheKeyList(ownerID, search, status)
	var cached []domain.Task
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Printf("[tasks] cache read failed, falling back to database: %v", err)
	} else if hit {
		return cached, nil
	}

	// Collapse concurrent misses for the same key into one database query.
	v, err, _ := s.group.Do(key, func() (any, error) {
		results, err := s.scoped(ownerID).List(search, status)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, results); err != nil {
			log.Printf("[tasks] cache write failed: %v", err)
		}
		return results, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Task), nil
}

// Get returns a single owned task or ErrNotFound.
func (s *Service) Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	if s.cache == nil {
		return s.scoped(ownerID).FindByID(taskID)
	}

	key := cacheKeyByID(ownerID, taskID)
	var cached domain.Task
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Printf("[tasks] cache read failed, falling back to database: %v", err)
	} else if hit {
		return &cached, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		t, err := s.scoped(ownerID).FindByID(taskID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, t); err != nil {
			log.Printf("[tasks] cache write failed: %v", err)
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Task), nil
}

// Create validates and stores a new task owned by ownerID. Status defaults to
// pending; the owner always comes from the resolved identity, never from the
// request body.
func (s *Service) Create(ctx context.Context, ownerID, title, description, status string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	st := domain.StatusPending
	if status != "" {
		st = domain.Status(status)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	now := time.Now()
	t := &domain.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Status:      st,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.scoped(ownerID).Create(t); err != nil {
		return nil, err
	}

	s.invalidate(ctx, ownerID)
	return t, nil
}

// Update applies a partial update to an owned task. All supplied fields are
// validated before anything is persisted; a rejected field rejects the whole
// update.
func (s *Service) Update(ctx context.Context, ownerID, taskID string, fields UpdateFields) (*domain.Task, error) {
	updates := map[string]any{}

	if fields.Title != nil {
		title := strings.TrimSpace(*fields.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		updates["title"] = title
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Status != nil {
		st := domain.Status(*fields.Status)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
		updates["status"] = st
	}

	repo := s.scoped(ownerID)

	// Ownership-scoped existence check first, so missing and not-owned fail
	// identically regardless of the fields supplied.
	if _, err := repo.FindByID(taskID); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := repo.Update(taskID, updates); err != nil {
			return nil, err
		}
	}

	s.invalidate(ctx, ownerID)
	return repo.FindByID(taskID)
}

// Delete removes an owned task. Deleting an already-deleted task returns
// ErrNotFound again, with no further side effects.
func (s *Service) Delete(ctx context.Context, ownerID, taskID string) error {
	if err := s.scoped(ownerID).Delete(taskID); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID)
	return nil
}

// invalidate drops every cached entry for the owner after a write.
func (s *Service) invalidate(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, ownerID+":*"); err != nil {
		log.Printf("[tasks] cache invalidation failed for owner %s: %v", ownerID, err)
	}
}

// CacheStats returns a snapshot of cache statistics, or zeroes when no cache
// is configured.
func (s *Service) CacheStats() cache.StatsSnapshot {
	if s.cache == nil {
		return cache.StatsSnapshot{}
	}
	return s.cache.GetStats()
}
