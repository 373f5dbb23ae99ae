package task

import (
	"errors"
	"testing"
	"time"

	domain "github.com/example/followup-tasks/domain/task"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedTask inserts a task directly, bypassing the repository.
func seedTask(t *testing.T, db *gorm.DB, dueAt time.Time, status domain.TaskStatus) *domain.Task {
	t.Helper()

	task := &domain.Task{
		ID:        uuid.New().String(),
		Title:     "Seeded task",
		RelatedID: uuid.New().String(),
		Type:      domain.TypeCall,
		DueAt:     dueAt,
		Status:    status,
		TenantID:  PlaceholderTenantID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return task
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := &domain.Task{
		ID:        uuid.New().String(),
		Title:     "New call for Application a1b2c3d4...",
		RelatedID: "a1b2c3d4-e5f6-0000-0000-000000000000",
		Type:      domain.TypeCall,
		DueAt:     time.Now().Add(time.Hour),
		Status:    domain.StatusPending,
		TenantID:  PlaceholderTenantID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var found domain.Task
	if err := db.First(&found, "id = ?", task.ID).Error; err != nil {
		t.Fatalf("failed to find created task: %v", err)
	}

	if found.Status != domain.StatusPending {
		t.Errorf("expected status %q, got %q", domain.StatusPending, found.Status)
	}
	if found.Type != domain.TypeCall {
		t.Errorf("expected type %q, got %q", domain.TypeCall, found.Type)
	}
	if found.TenantID != PlaceholderTenantID {
		t.Errorf("expected tenant %q, got %q", PlaceholderTenantID, found.TenantID)
	}
}

func TestRepository_FindDueBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, 1)

	// Seed out of due-time order to exercise the ordering clause.
	evening := seedTask(t, db, from.Add(18*time.Hour), domain.StatusPending)
	atStart := seedTask(t, db, from, domain.StatusPending)
	noon := seedTask(t, db, from.Add(12*time.Hour), domain.StatusPending)
	seedTask(t, db, from.Add(12*time.Hour), domain.StatusCompleted) // not pending
	seedTask(t, db, from.Add(-time.Hour), domain.StatusPending)    // yesterday
	seedTask(t, db, to, domain.StatusPending)                      // at upper bound, excluded
	seedTask(t, db, to.Add(time.Hour), domain.StatusPending)       // tomorrow

	tasks, err := repo.FindDueBetween(from, to, domain.StatusPending)
	if err != nil {
		t.Fatalf("FindDueBetween() error = %v", err)
	}

	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	wantOrder := []string{atStart.ID, noon.ID, evening.ID}
	for i, want := range wantOrder {
		if tasks[i].ID != want {
			t.Errorf("position %d: expected task %s, got %s", i, want, tasks[i].ID)
		}
	}

	for i := 1; i < len(tasks); i++ {
		if tasks[i].DueAt.Before(tasks[i-1].DueAt) {
			t.Errorf("tasks not ordered ascending by due_at at position %d", i)
		}
	}
}

func TestRepository_FindDueBetween_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	tasks, err := repo.FindDueBetween(from, from.AddDate(0, 0, 1), domain.StatusPending)
	if err != nil {
		t.Fatalf("FindDueBetween() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected 0 tasks, got %d", len(tasks))
	}
}

func TestRepository_MarkComplete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := seedTask(t, db, time.Now().Add(time.Hour), domain.StatusPending)

	t.Run("pending task", func(t *testing.T) {
		now := time.Now()
		if err := repo.MarkComplete(task.ID, now); err != nil {
			t.Fatalf("MarkComplete() error = %v", err)
		}

		var found domain.Task
		if err := db.First(&found, "id = ?", task.ID).Error; err != nil {
			t.Fatalf("failed to find completed task: %v", err)
		}
		if found.Status != domain.StatusCompleted {
			t.Errorf("expected status %q, got %q", domain.StatusCompleted, found.Status)
		}
		if found.CompletedAt == nil {
			t.Error("expected completed_at to be set")
		}
	})

	t.Run("already completed task", func(t *testing.T) {
		// Last write wins; a second completion is not an error.
		if err := repo.MarkComplete(task.ID, time.Now()); err != nil {
			t.Fatalf("MarkComplete() second call error = %v", err)
		}

		var found domain.Task
		if err := db.First(&found, "id = ?", task.ID).Error; err != nil {
			t.Fatalf("failed to find completed task: %v", err)
		}
		if found.Status != domain.StatusCompleted {
			t.Errorf("expected status %q, got %q", domain.StatusCompleted, found.Status)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		err := repo.MarkComplete("non-existent-id", time.Now())
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := seedTask(t, db, time.Now().Add(time.Hour), domain.StatusPending)

	t.Run("existing task", func(t *testing.T) {
		found, err := repo.FindByID(task.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.ID != task.ID {
			t.Errorf("expected ID %q, got %q", task.ID, found.ID)
		}
	})

	t.Run("non-existent task", func(t *testing.T) {
		_, err := repo.FindByID("non-existent-id")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
