package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"ignite-backend/internal/config"
	"ignite-backend/internal/domain"
	"ignite-backend/internal/handler"
	"ignite-backend/internal/middleware"
	"ignite-backend/internal/repository"
	"ignite-backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (testimonial caching disabled)", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (media upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	user := api.Group("/user")
	user.Post("/signup", h.Auth.Signup)
	user.Post("/login", h.Auth.Login)
	user.Post("/refresh", h.Auth.RefreshToken)
	user.Post("/forgot-password", h.Auth.ForgotPassword)
	user.Post("/verify-otp", h.Auth.ResetPassword)
	user.Get("/profile", middleware.AuthRequired(authService), h.User.Me)
	user.Put("/profile", middleware.AuthRequired(authService), h.User.UpdateProfile)
	user.Delete("/profile", middleware.AuthRequired(authService), h.User.DeleteAccount)
	user.Get("/public-profile/:id", h.User.PublicProfile)

	projects := api.Group("/projects")
	projects.Get("/", h.Project.List)
	projects.Post("/", middleware.AuthRequired(authService), h.Project.Create)
	projects.Get("/user/:userId", h.Project.ListByUser)

	// Static segments before the :id wildcard.
	projects.Get("/my-projects/list", middleware.AuthRequired(authService), h.Project.MyProjects)
	projects.Get("/my-applications/list", middleware.AuthRequired(authService), h.Application.MyApplications)

	projects.Get("/:id", middleware.AuthOptional(authService), h.Project.Get)
	projects.Put("/:id", middleware.AuthRequired(authService), h.Project.Update)
	projects.Delete("/:id", middleware.AuthRequired(authService), h.Project.Delete)
	projects.Get("/:id/applications", middleware.AuthRequired(authService), h.Project.Applications)
	projects.Post("/:id/apply", middleware.AuthRequired(authService), h.Application.Apply)
	projects.Post("/:id/submit", middleware.AuthRequired(authService), h.Application.SubmitWork)

	projects.Patch("/:projectId/applications/:applicationId/status", middleware.AuthRequired(authService), h.Application.SetApplicantStatus)
	projects.Post("/:projectId/applications/:applicationId/tasks", middleware.AuthRequired(authService), h.Application.AddTask)
	projects.Patch("/:projectId/applications/:applicationId/tasks/:taskId", middleware.AuthRequired(authService), h.Application.ToggleTask)
	projects.Delete("/:projectId/applications/:applicationId/tasks/:taskId", middleware.AuthRequired(authService), h.Application.DeleteTask)
	projects.Patch("/:projectId/submissions/:submissionId/status", middleware.AuthRequired(authService), h.Application.ReviewSubmission)

	notifications := api.Group("/notifications", middleware.AuthRequired(authService))
	notifications.Get("/", h.Notification.List)
	notifications.Patch("/read-all", h.Notification.MarkAllAsRead)

	testimonials := api.Group("/testimonials")
	testimonials.Get("/", h.Testimonial.ListVisible)
	testimonials.Post("/", h.Testimonial.Create)

	admin := api.Group("/admin", middleware.AuthRequired(authService), middleware.RequireRole(domain.RoleAdmin))
	admin.Get("/users", h.Admin.ListUsers)
	admin.Get("/stats/users", h.Admin.UserStats)
	admin.Get("/projects", h.Admin.ListProjects)
	admin.Patch("/projects/:id/featured", h.Admin.SetProjectFeatured)
	admin.Get("/applicants", h.Admin.ListApplicants)
	admin.Patch("/applicants/:projectId/:applicantId/status", h.Admin.SetApplicantStatus)
	admin.Get("/testimonials", h.Admin.ListTestimonials)
	admin.Patch("/testimonials/:id/visibility", h.Admin.SetTestimonialVisibility)
}
