package routes

import (
	"gymdesk/internal/adapters/http/handlers"
	"gymdesk/internal/adapters/http/middleware"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/config"
	"gymdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	memberService := services.NewMemberService(memberRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	memberHandler := handlers.NewMemberHandler(memberService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Member roster routes (authenticated; mutations Admin only)
	memberRoutes := apiV1.Group("/members")
	memberRoutes.Use(middleware.AuthMiddleware(cfg))
	memberRoutes.Get("/", memberHandler.List)
	memberRoutes.Post("/", middleware.AdminOnly(), memberHandler.Create)
	memberRoutes.Put("/:id/status", middleware.AdminOnly(), memberHandler.UpdateStatus)

	// Payment ledger routes (authenticated; mutations Admin only)
	paymentRoutes := apiV1.Group("/payments")
	paymentRoutes.Use(middleware.AuthMiddleware(cfg))
	paymentRoutes.Get("/", paymentHandler.List)
	paymentRoutes.Post("/", middleware.AdminOnly(), paymentHandler.Create)
	paymentRoutes.Put("/:id/paid", middleware.AdminOnly(), paymentHandler.MarkPaid)

	// Dashboard routes
	dashboardRoutes := apiV1.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/", dashboardHandler.GetStats)

	// Admin routes (dev tooling)
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly())
	adminRoutes.Post("/reset", adminHandler.ResetDatabase)
}
