package task

import (
	"context"
	"time"
)

// CreateTaskRequest is the request for creating a task. The caller is
// expected to have validated the task type and due time already; see the
// api module for the full validation sequence.
type CreateTaskRequest struct {
	ApplicationID string    `json:"application_id"`
	TaskType      string    `json:"task_type"`
	DueAt         time.Time `json:"due_at"`
	Title         string    `json:"title,omitempty"`
}

// CreateTaskResponse is the response for creating a task.
type CreateTaskResponse struct {
	TaskID    string    `json:"task_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	DueAt     time.Time `json:"due_at"`
	CreatedAt time.Time `json:"created_at"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// ListDueTodayRequest is the request for listing today's pending tasks.
type ListDueTodayRequest struct{}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// CompleteTaskRequest is the request for completing a task.
type CompleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// TaskResponse is the response for a single task.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	RelatedID   string     `json:"related_id"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	DueAt       time.Time  `json:"due_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TaskPort defines the interface for task operations (hexagonal port).
// This is the contract that driving adapters (like the HTTP API) use to
// interact with the core domain.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*CreateTaskResponse, error)
	ListDueToday(ctx context.Context) (*ListTasksResponse, error)
	CompleteTask(ctx context.Context, taskID string) (*TaskResponse, error)
	GetTask(ctx context.Context, taskID string) (*TaskResponse, error)
}
