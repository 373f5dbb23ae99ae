package task

import "time"

// TaskStatus represents the lifecycle state of a task. Transitions are
// forward-only: pending -> completed.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// TaskType is the closed set of follow-up work kinds.
type TaskType string

const (
	TypeCall   TaskType = "call"
	TypeEmail  TaskType = "email"
	TypeReview TaskType = "review"
)

// ParseTaskType maps a raw string onto the TaskType set. The match is
// case-sensitive; anything outside the set is rejected.
func ParseTaskType(s string) (TaskType, bool) {
	switch TaskType(s) {
	case TypeCall:
		return TypeCall, true
	case TypeEmail:
		return TypeEmail, true
	case TypeReview:
		return TypeReview, true
	default:
		return "", false
	}
}

// Task is a unit of follow-up work tied to an external application record.
// DueAt is validated against the clock only at creation; a pending task
// whose due time has passed simply reads as overdue.
type Task struct {
	ID          string     `gorm:"primarykey;size:36" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Title       string     `gorm:"size:200" json:"title"`
	RelatedID   string     `gorm:"size:36;not null;index" json:"related_id"`
	Type        TaskType   `gorm:"size:16;not null" json:"type"`
	DueAt       time.Time  `gorm:"not null;index" json:"due_at"`
	Status      TaskStatus `gorm:"size:16;not null;default:pending" json:"status"`
	TenantID    string     `gorm:"size:36;not null" json:"tenant_id"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}
