package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/supporthub/ai-support-bot-be/internal/core/analytics"
	"github.com/supporthub/ai-support-bot-be/internal/core/auth"
	"github.com/supporthub/ai-support-bot-be/internal/core/ratelimit"
	"github.com/supporthub/ai-support-bot-be/internal/core/retention"
	"github.com/supporthub/ai-support-bot-be/internal/handlers"
	"github.com/supporthub/ai-support-bot-be/internal/repositories"
	"github.com/supporthub/ai-support-bot-be/internal/services"
	"github.com/supporthub/ai-support-bot-be/internal/shared/config"
	"github.com/supporthub/ai-support-bot-be/internal/shared/database"
	"github.com/supporthub/ai-support-bot-be/internal/shared/utils"
)

// @title FAQ Support Bot API
// @version 1.0
// @description Multi-tenant FAQ/chat widget backend with usage analytics
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger()
	log.Printf("🚀 Starting server on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DBFile)
	defer db.Close()

	// Init repositories
	clientRepo := repositories.NewClientRepo(db.GORM)
	faqRepo := repositories.NewFaqRepo(db.GORM)
	eventRepo := repositories.NewEventRepo(db.GORM)
	auditRepo := repositories.NewAuditRepo(db.GORM)

	// Init services
	eventService := services.NewEventService(eventRepo)
	aggregator := analytics.NewAggregator(db.GORM)
	authService := auth.NewService(cfg.JWTSecret, 24*time.Hour)

	// Per-client rate limiting on widget-facing routes
	limiter := ratelimit.New(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer limiter.Stop()

	// Nightly audit-log retention sweep
	sweeper := retention.NewSweeper(auditRepo, cfg.AuditRetentionDays)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("❌ Failed to start retention sweeper: %v", err)
	}
	defer sweeper.Stop()

	// Init handlers
	analyticsHandler := handlers.NewAnalyticsHandler(eventService, aggregator, clientRepo)
	faqHandler := handlers.NewFaqHandler(faqRepo, auditRepo)
	chatHandler := handlers.NewChatHandler(faqRepo, eventService)
	clientHandler := handlers.NewClientHandler(clientRepo)
	authHandler := handlers.NewAuthHandler(clientRepo, authService, cfg.AdminPassword)
	healthHandler := handlers.NewHealthHandler(db.DB)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "FAQ Support Bot API",
	})

	// Middleware
	app.Use(cors.New())

	widgetLimit := limiter.Middleware(func(c *fiber.Ctx) string {
		if id := c.Query("client_id"); id != "" {
			return id
		}
		var body struct {
			ClientID string `json:"client_id"`
		}
		if err := c.BodyParser(&body); err != nil {
			return ""
		}
		return body.ClientID
	})

	// Health check
	app.Get("/health", healthHandler.Health)

	// Auth
	app.Post("/auth/token", authHandler.Token)

	// Widget routes
	app.Post("/chat", widgetLimit, chatHandler.Chat)
	app.Get("/faqs/faq_data", faqHandler.FaqData)
	app.Get("/welcome_message", clientHandler.GetWelcomeMessage)

	// Analytics routes
	app.Post("/analytics/log", widgetLimit, analyticsHandler.LogEvent)
	app.Get("/analytics/data", analyticsHandler.GetAnalytics)

	// Manager routes (JWT protected)
	requireAuth := authService.Middleware()
	app.Post("/faqs/update_faq", requireAuth, faqHandler.UpdateFaq)
	app.Post("/faqs/delete_faq", requireAuth, faqHandler.DeleteFaq)
	app.Post("/save_welcome_message", requireAuth, clientHandler.SaveWelcomeMessage)
	app.Get("/integration_code", requireAuth, clientHandler.GetIntegrationCode)

	// Start server
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
