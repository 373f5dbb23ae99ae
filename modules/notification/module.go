package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/followup-tasks/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// NotificationLog represents a logged notification.
type NotificationLog struct {
	TaskID    string    `json:"task_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationModule handles notifications as a driven adapter. It
// subscribes to task events; producers never wait on it, and its absence
// or failure is invisible to the task creation path.
type NotificationModule struct {
	notifications []NotificationLog
	mu            sync.RWMutex
}

var _ mono.Module = (*NotificationModule)(nil)
var _ mono.EventConsumerModule = (*NotificationModule)(nil)

// NewModule creates a new NotificationModule.
func NewModule() *NotificationModule {
	return &NotificationModule{
		notifications: make([]NotificationLog, 0),
	}
}

// Name returns the module name.
func (m *NotificationModule) Name() string {
	return "notification"
}

// RegisterEventConsumers subscribes to task domain events.
func (m *NotificationModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCompletedV1, m.handleTaskCompleted, m); err != nil {
		return fmt.Errorf("failed to register TaskCompleted consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: TaskCreated, TaskCompleted")
	return nil
}

func (m *NotificationModule) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task created: %s (%s) for application %s", event.TaskID, event.TaskType, event.ApplicationID)
	m.record(event.TaskID, "task.created", fmt.Sprintf("New %s task for application %s", event.TaskType, event.ApplicationID))
	return nil
}

func (m *NotificationModule) handleTaskCompleted(_ context.Context, event events.TaskCompletedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task completed: %s at %s", event.TaskID, event.CompletedAt.Format(time.RFC3339))
	m.record(event.TaskID, "task.completed", fmt.Sprintf("Task %s completed", event.TaskID))
	return nil
}

func (m *NotificationModule) record(taskID, notificationType, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = append(m.notifications, NotificationLog{
		TaskID:    taskID,
		Type:      notificationType,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// GetNotifications returns a snapshot of the recorded notifications.
func (m *NotificationModule) GetNotifications() []NotificationLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]NotificationLog, len(m.notifications))
	copy(result, m.notifications)
	return result
}

// Start marks the module as running.
func (m *NotificationModule) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for task events")
	return nil
}

// Stop marks the module as stopped.
func (m *NotificationModule) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}
