package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	apimod "github.com/Darshank007/task-manager-fullstack/modules/api"
	"github.com/Darshank007/task-manager-fullstack/modules/auth"
	cachemod "github.com/Darshank007/task-manager-fullstack/modules/cache"
	tasksmod "github.com/Darshank007/task-manager-fullstack/modules/tasks"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	httpPort := getEnvInt("HTTP_PORT", 3000)
	redisAddr := os.Getenv("REDIS_ADDR")
	cacheTTL := getEnvDuration("CACHE_TTL", 5*time.Minute)

	log.Println("=== Task Manager API ===")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	authModule := auth.NewModule(auth.LoadTokenConfig())
	tasksModule := tasksmod.NewModule()
	apiModule := apimod.NewModule(httpPort)

	// The read cache is optional: without REDIS_ADDR every task read goes
	// straight to the database.
	var cacheModule *cachemod.Module
	if redisAddr != "" {
		cacheModule = cachemod.NewModule(redisAddr, "tasks:", cacheTTL)
		app.Register(cacheModule)
	}

	// Order: independent modules first, then dependent modules
	app.Register(authModule)
	app.Register(tasksModule)
	app.Register(apiModule)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// Wire up dependencies after start
	if cacheModule != nil {
		tasksModule.SetCache(cacheModule.GetCache())
	}

	printStartupInfo(httpPort, redisAddr != "")

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

func printStartupInfo(port int, cacheEnabled bool) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Printf("Task read cache: %v", cacheEnabled)
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%d):", port)
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /auth/register  - Register a new user")
	log.Println("  POST   /auth/login     - Login and get a token")
	log.Println("  GET    /health         - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /auth/profile   - Get current user profile")
	log.Println("  GET    /tasks          - List tasks (?search=&status=)")
	log.Println("  POST   /tasks          - Create a task")
	log.Println("  GET    /tasks/:id      - Get a task")
	log.Println("  PUT    /tasks/:id      - Update a task")
	log.Println("  DELETE /tasks/:id      - Delete a task")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}
