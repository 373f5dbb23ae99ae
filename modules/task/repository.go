package task

import (
	"errors"
	"fmt"
	"time"

	domain "github.com/example/followup-tasks/domain/task"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = errors.New("task not found")

// Repository provides access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task to the database.
func (r *Repository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *Repository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// FindDueBetween retrieves tasks with the given status whose due time falls
// in the half-open interval [from, to), ordered ascending by due time.
func (r *Repository) FindDueBetween(from, to time.Time, status domain.TaskStatus) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.
		Where("due_at >= ? AND due_at < ?", from, to).
		Where("status = ?", status).
		Order("due_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find due tasks: %w", err)
	}
	return tasks, nil
}

// MarkComplete sets the status of the matching task to completed.
// The update is a single unconditional write: there is no concurrency
// check, and re-completing an already completed task succeeds.
func (r *Repository) MarkComplete(id string, at time.Time) error {
	result := r.db.Model(&domain.Task{}).Where("id = ?", id).Updates(map[string]any{
		"status":       domain.StatusCompleted,
		"completed_at": at,
		"updated_at":   at,
	})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
