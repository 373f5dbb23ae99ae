package api

import "time"

// CreateTaskRequest is the HTTP request body for creating a task.
// Title is optional; a generated title is used when absent.
type CreateTaskRequest struct {
	ApplicationID string `json:"application_id"`
	TaskType      string `json:"task_type"`
	DueAt         string `json:"due_at"`
	Title         string `json:"title,omitempty"`
}

// CreateTaskResponse is the HTTP response after creating a task.
type CreateTaskResponse struct {
	Success bool   `json:"success"`
	TaskID  string `json:"task_id"`
}

// TaskResponse is the HTTP response for a single task.
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

// ListTasksResponse is the HTTP response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
