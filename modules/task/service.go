package task

import (
	"context"
	"fmt"
	"log"
	"time"

	domain "github.com/example/followup-tasks/domain/task"
	"github.com/example/followup-tasks/events"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// PlaceholderTenantID is the fixed tenant written to every created task.
// Stand-in for tenant derivation that a production deployment must replace
// with a policy based on caller identity or the related application.
const PlaceholderTenantID = "00000000-0000-0000-0000-000000000000"

// createTask handles the create-task service request. The insert is the
// authoritative write; the TaskCreated event is published afterwards and
// its failure never fails the creation.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (CreateTaskResponse, error) {
	taskType, ok := domain.ParseTaskType(req.TaskType)
	if !ok {
		return CreateTaskResponse{}, fmt.Errorf("invalid task_type: %s", req.TaskType)
	}

	title := req.Title
	if title == "" {
		title = defaultTitle(taskType, req.ApplicationID)
	}

	now := time.Now()
	newTask := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		RelatedID: req.ApplicationID,
		Type:      taskType,
		DueAt:     req.DueAt,
		Status:    domain.StatusPending,
		TenantID:  PlaceholderTenantID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.repo.Create(newTask); err != nil {
		return CreateTaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:        newTask.ID,
			ApplicationID: newTask.RelatedID,
			TaskType:      string(newTask.Type),
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			// Best-effort notification; the task is already committed.
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %s: %v", newTask.ID, err)
		}
	}

	return CreateTaskResponse{
		TaskID:    newTask.ID,
		Title:     newTask.Title,
		Status:    string(newTask.Status),
		DueAt:     newTask.DueAt,
		CreatedAt: newTask.CreatedAt,
	}, nil
}

// listDueToday handles the list-due-today service request. The window is
// the half-open interval [start of today, start of tomorrow) in local time;
// every call re-queries the store.
func (m *TaskModule) listDueToday(_ context.Context, _ ListDueTodayRequest, _ *mono.Msg) (ListTasksResponse, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	tasks, err := m.repo.FindDueBetween(from, to, domain.StatusPending)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, task := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(task))
	}

	return response, nil
}

// completeTask handles the complete-task service request.
func (m *TaskModule) completeTask(_ context.Context, req CompleteTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	now := time.Now()
	if err := m.repo.MarkComplete(req.TaskID, now); err != nil {
		return TaskResponse{}, err
	}

	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	if m.eventBus != nil {
		event := events.TaskCompletedEvent{
			TaskID:      task.ID,
			CompletedAt: now,
		}
		if err := events.TaskCompletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskCompleted event for task %s: %v", task.ID, err)
		}
	}

	return toTaskResponse(task), nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// defaultTitle composes the generated title for a task created without one,
// embedding the task type and the first 8 characters of the application id.
func defaultTitle(taskType domain.TaskType, applicationID string) string {
	prefix := applicationID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("New %s for Application %s...", taskType, prefix)
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		RelatedID:   task.RelatedID,
		Type:        string(task.Type),
		Status:      string(task.Status),
		DueAt:       task.DueAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		CompletedAt: task.CompletedAt,
	}
}
