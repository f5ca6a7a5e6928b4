// main.go
package main

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"
	"tododuk/database"
	"tododuk/handlers"
	"tododuk/middleware"
	"tododuk/services"
	"tododuk/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Initialize database
	database.InitDB()
	db := database.GetDB()

	// Wire handlers
	handlers.InitHandlers(db)

	// Start the reminder scheduler
	services.InitReminderScheduler(db)
	services.GetReminderScheduler().Start()
	defer services.GetReminderScheduler().Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.RateLimit())

	// API Routes
	api := app.Group("/api/v1")

	// Public user routes with stricter rate limiting
	userGroup := api.Group("/user")
	userGroup.Use(middleware.AuthRateLimit())
	userGroup.Post("/register", handlers.Register)
	userGroup.Post("/login", handlers.Login)
	userGroup.Post("/logout", handlers.Logout)

	// Everything below requires a resolved actor
	auth := middleware.Auth(db)

	userGroup.Get("/me", auth, handlers.GetMe)
	userGroup.Post("/me", auth, handlers.UpdateMe)

	// Team routes
	teamGroup := api.Group("/teams")
	teamGroup.Use(auth)
	teamGroup.Post("/", handlers.CreateTeam)
	teamGroup.Get("/", handlers.GetTeams)
	teamGroup.Get("/my", handlers.GetMyTeams)
	teamGroup.Get("/:teamId", handlers.GetTeam)
	teamGroup.Patch("/:teamId", handlers.UpdateTeam)
	teamGroup.Delete("/:teamId", handlers.DeleteTeam)

	// Membership routes
	teamGroup.Get("/:teamId/members", handlers.GetTeamMembers)
	teamGroup.Post("/:teamId/members", handlers.AddTeamMember)
	teamGroup.Patch("/:teamId/members/:userId/role", handlers.UpdateTeamMemberRole)
	teamGroup.Delete("/:teamId/members/:userId", handlers.RemoveTeamMember)

	// Todo routes, scoped by team (teamId 0 = personal)
	teamGroup.Get("/:teamId/todos", handlers.GetTodos)
	teamGroup.Post("/:teamId/todos", handlers.CreateTodo)
	teamGroup.Get("/:teamId/todos/:todoId", handlers.GetTodo)
	teamGroup.Put("/:teamId/todos/:todoId", handlers.UpdateTodo)
	teamGroup.Delete("/:teamId/todos/:todoId", handlers.DeleteTodo)

	// Label routes
	labelGroup := api.Group("/labels")
	labelGroup.Use(auth)
	labelGroup.Post("/", handlers.CreateLabel)
	labelGroup.Get("/", handlers.GetLabels)
	labelGroup.Get("/:id", handlers.GetLabel)
	labelGroup.Delete("/:id", handlers.DeleteLabel)

	// Todo-label association and reminder routes
	todoGroup := api.Group("/todos")
	todoGroup.Use(auth)
	todoGroup.Put("/:todoId/labels", handlers.SetTodoLabels)
	todoGroup.Get("/:todoId/labels", handlers.GetTodoLabels)
	todoGroup.Post("/:todoId/reminders", handlers.CreateReminder)
	todoGroup.Get("/:todoId/reminders", handlers.GetReminders)

	reminderGroup := api.Group("/reminders")
	reminderGroup.Use(auth)
	reminderGroup.Delete("/:id", handlers.DeleteReminder)

	// Notification routes
	notificationGroup := api.Group("/notifications")
	notificationGroup.Use(auth)
	notificationGroup.Post("/", handlers.CreateNotification)
	notificationGroup.Get("/", handlers.GetNotifications)
	notificationGroup.Get("/:id", handlers.GetNotification)
	notificationGroup.Post("/setStatus/:id", handlers.SetNotificationStatus)
	notificationGroup.Delete("/:id", handlers.DeleteNotification)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("HTTP server starting on port %s", port)
	log.Printf("Environment: %s", getEnv("APP_ENV", "development"))

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	if os.Getenv("APP_ENV") == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

// errorHandler is the single place domain failures become HTTP responses.
// Services raise *utils.ServiceError with a "<status>-<subcode>" result
// code; anything else is a generic 500 with no internal detail.
func errorHandler(c *fiber.Ctx, err error) error {
	var svcErr *utils.ServiceError
	if errors.As(err, &svcErr) {
		return utils.Send(c, svcErr.ResultCode, svcErr.Msg, nil)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := strconv.Itoa(fiberErr.Code) + "-1"
		return utils.Send(c, code, fiberErr.Message, nil)
	}

	log.Printf("Unhandled error: %v", err)
	return utils.Send(c, "500-1", "an unexpected error occurred, please try again later", nil)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
