package api

import (
	"log"
	"time"

	domain "github.com/example/followup-tasks/domain/task"
	"github.com/example/followup-tasks/modules/task"
	"github.com/gofiber/fiber/v2"
)

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// createTask handles POST /api/v1/tasks.
//
// Validation is ordered and fail-fast: body shape, required fields, task
// type, due time. The router rejects non-POST methods with 405 before any
// of these checks run.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid JSON body",
		})
	}

	if req.ApplicationID == "" || req.TaskType == "" || req.DueAt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required fields: application_id, task_type, or due_at",
		})
	}

	taskType, ok := domain.ParseTaskType(req.TaskType)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid task_type: must be 'call', 'email', or 'review'",
		})
	}

	dueAt, err := time.Parse(time.RFC3339, req.DueAt)
	if err != nil || !dueAt.After(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "due_at must be a valid date and in the future",
		})
	}

	resp, err := m.tasks.CreateTask(c.Context(), &task.CreateTaskRequest{
		ApplicationID: req.ApplicationID,
		TaskType:      string(taskType),
		DueAt:         dueAt,
		Title:         req.Title,
	})
	if err != nil {
		log.Printf("[api] Task creation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Internal Server Error during task creation",
		})
	}

	return c.JSON(CreateTaskResponse{
		Success: true,
		TaskID:  resp.TaskID,
	})
}

// listDueToday handles GET /api/v1/tasks/today. Every call re-queries the
// store so the dashboard always renders fresh server state.
func (m *APIModule) listDueToday(c *fiber.Ctx) error {
	resp, err := m.tasks.ListDueToday(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	tasks := make([]TaskResponse, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		tasks = append(tasks, toTaskResponse(t))
	}

	return c.JSON(ListTasksResponse{
		Tasks: tasks,
		Total: resp.Total,
	})
}

// getTask handles GET /api/v1/tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	taskID := c.Params("id")

	resp, err := m.tasks.GetTask(c.Context(), taskID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Task not found",
		})
	}

	return c.JSON(toTaskResponse(*resp))
}

// completeTask handles POST /api/v1/tasks/:id/complete. The underlying
// update is last-write-wins; completing an already completed task succeeds.
func (m *APIModule) completeTask(c *fiber.Ctx) error {
	taskID := c.Params("id")

	resp, err := m.tasks.CompleteTask(c.Context(), taskID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Task not found",
		})
	}

	return c.JSON(toTaskResponse(*resp))
}

// toTaskResponse converts a task service response to the HTTP shape.
func toTaskResponse(t task.TaskResponse) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		RelatedID:   t.RelatedID,
		Type:        t.Type,
		Status:      t.Status,
		DueAt:       t.DueAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CompletedAt: t.CompletedAt,
	}
}
