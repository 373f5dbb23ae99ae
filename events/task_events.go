package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// TaskCreatedEvent is emitted after a new task row has been committed.
// Delivery is best-effort: task creation succeeds whether or not this
// event reaches any consumer.
type TaskCreatedEvent struct {
	TaskID        string `json:"task_id"`
	ApplicationID string `json:"application_id"`
	TaskType      string `json:"task_type"`
}

// TaskCreatedV1 is the typed event definition for task creation.
// Subject: events.task.v1.task-created
var TaskCreatedV1 = helper.EventDefinition[TaskCreatedEvent](
	"task", "TaskCreated", "v1",
)

// TaskCompletedEvent is emitted when a task is marked complete.
type TaskCompletedEvent struct {
	TaskID      string    `json:"task_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// TaskCompletedV1 is the typed event definition for task completion.
// Subject: events.task.v1.task-completed
var TaskCompletedV1 = helper.EventDefinition[TaskCompletedEvent](
	"task", "TaskCompleted", "v1",
)
