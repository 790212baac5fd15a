package task

import (
	"time"
)

// Status is the lifecycle state of a task. Any status may transition to any
// other; none is terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a single tracked item. OwnerID is stamped from the
// authenticated identity at creation and never changes afterwards.
type Task struct {
	ID          string `gorm:"primaryKey;type:text" json:"id"`
	Title       string `gorm:"not null;type:text" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Status      Status `gorm:"not null;type:text;default:pending" json:"status"`
	OwnerID     string `gorm:"index;not null;type:text" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
