package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/followup-tasks/modules/api"
	"github.com/example/followup-tasks/modules/notification"
	"github.com/example/followup-tasks/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== CRM Follow-up Task Service ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies.
	app.Register(notification.NewModule()) // Event consumer (subscribes to task events)
	app.Register(task.NewModule())         // Core domain (owns the tasks table, emits events)
	app.Register(api.NewModule())          // Driving adapter (depends on task)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  POST   /api/v1/tasks              - Create a follow-up task")
	log.Println("  GET    /api/v1/tasks/today        - List today's pending tasks")
	log.Println("  GET    /api/v1/tasks/:id          - Get a task by ID")
	log.Println("  POST   /api/v1/tasks/:id/complete - Mark a task complete")
	log.Println("  GET    /health                    - Health check")
	log.Println("")
	log.Println("Example:")
	log.Println(`  curl -X POST localhost:3000/api/v1/tasks -H 'Content-Type: application/json' \`)
	log.Println(`    -d '{"application_id":"a1b2c3d4-0000-0000-0000-000000000000","task_type":"call","due_at":"2026-09-02T15:00:00Z"}'`)
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
