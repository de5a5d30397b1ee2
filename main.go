package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nutriplan/nutriplan-backend/internal/ai"
	"github.com/nutriplan/nutriplan-backend/internal/config"
	"github.com/nutriplan/nutriplan-backend/internal/events"
	"github.com/nutriplan/nutriplan-backend/internal/handler"
	"github.com/nutriplan/nutriplan-backend/internal/middleware"
	"github.com/nutriplan/nutriplan-backend/internal/pdf"
	"github.com/nutriplan/nutriplan-backend/internal/repository"
	"github.com/nutriplan/nutriplan-backend/internal/service"
	"go.uber.org/zap"
)

func main() {
	// Load .env in development; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize Zap logger
	var logger *zap.Logger
	if cfg.Server.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.Bool("openai_enabled", cfg.OpenAI.Enabled),
	)

	// Initialize database connection pool with pgx
	pool, err := pgxpool.New(context.Background(), cfg.Database.URL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	logger.Info("Successfully connected to database")

	// Optional plan-assist collaborator; generation falls back to the
	// deterministic templates when disabled or failing.
	var assist service.PlanAssistClient
	if cfg.OpenAI.Enabled {
		client, err := ai.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, logger)
		if err != nil {
			logger.Fatal("Failed to initialize OpenAI client", zap.Error(err))
		}
		assist = client
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(pool, logger)
	planRepo := repository.NewPlanRepository(pool, logger)

	// Notification boundary: subscribers deliver events out of band. The
	// default subscriber only logs; SMS/email/push collaborators register
	// here in deployments that have them.
	bus := events.NewBus(logger)
	bus.Subscribe(func(e events.Event) {
		logger.Info("notification event",
			zap.String("event", e.Name),
			zap.String("user_id", e.UserID),
			zap.Any("payload", e.Payload),
		)
	})

	// Initialize services
	profileService := service.NewProfileService(profileRepo, logger)
	generator := service.NewPlanGenerator(assist, logger)
	planService := service.NewPlanService(profileRepo, planRepo, generator, bus, logger)
	tracker := service.NewProgressTracker(planRepo, bus, logger)
	reportService := service.NewReportService(planRepo, logger)
	exporter := pdf.NewPlanExporter(logger)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileService, logger)
	planHandler := handler.NewPlanHandler(planService, tracker, logger)
	progressHandler := handler.NewProgressHandler(tracker, logger)
	reportHandler := handler.NewReportHandler(reportService, planService, profileService, exporter, logger)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Recovery must be first
	r.Use(middleware.RecoveryMiddleware(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLoggingMiddleware(logger))
	r.Use(middleware.ErrorLoggingMiddleware(logger))

	registerRoutes(r, pool, logger, profileHandler, planHandler, progressHandler, reportHandler)

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	pool.Close()
	logger.Info("Server exited")
}

func registerRoutes(
	r *gin.Engine,
	pool *pgxpool.Pool,
	logger *zap.Logger,
	profiles *handler.ProfileHandler,
	plans *handler.PlanHandler,
	progress *handler.ProgressHandler,
	reports *handler.ReportHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			logger.Error("health check failed: database unreachable", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "connected",
			"service":  "nutriplan-backend",
			"version":  "1.0.0",
		})
	})

	v1 := r.Group("/api/v1")

	v1.POST("/profiles", profiles.CreateProfile)
	v1.GET("/profiles/:id", profiles.GetProfile)
	v1.PUT("/profiles/:id", profiles.UpdateProfile)
	v1.GET("/profiles/:id/targets", profiles.GetTargets)

	v1.POST("/plans", plans.CreatePlan)
	v1.GET("/plans/:id", plans.GetPlan)
	v1.GET("/users/:id/plans", plans.ListPlans)
	v1.POST("/plans/:id/activate", plans.ActivatePlan)
	v1.DELETE("/plans/:id", plans.DeletePlan)

	v1.POST("/plans/:id/days/:day/meals/:slot/:index/complete", progress.CompleteMeal)
	v1.POST("/plans/:id/days/:day/meals/:slot/:index/uncomplete", progress.UncompleteMeal)

	v1.GET("/plans/:id/days/:day/report", reports.DailyReport)
	v1.GET("/plans/:id/summary", reports.Summary)
	v1.GET("/plans/:id/export", reports.Export)
}
