package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/workreward/work-reward-api/internal/config"
	"github.com/workreward/work-reward-api/internal/constants"
	"github.com/workreward/work-reward-api/internal/database"
	"github.com/workreward/work-reward-api/internal/handlers"
	"github.com/workreward/work-reward-api/internal/middleware"
	"github.com/workreward/work-reward-api/internal/repository"
	"github.com/workreward/work-reward-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Notification delivery is best effort; without SMTP configured all
	// notifications are dropped.
	var notifier services.Notifier = services.NoopNotifier{}
	if cfg.SMTPHost != "" {
		notifier = services.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		log.Println("SMTP not configured, email notifications disabled")
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	codeRepo := repository.NewManagerCodeRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	reportRepo := repository.NewReportRepository(db)
	rewardRepo := repository.NewRewardRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, codeRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, notifier)
	reportService := services.NewReportService(reportRepo, taskRepo, userRepo, notifier)
	rewardService := services.NewRewardService(rewardRepo, reportRepo, userRepo, notifier)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	reportHandler := handlers.NewReportHandler(reportService)
	rewardHandler := handlers.NewRewardHandler(rewardService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Work Reward API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Manager code routes (protected, manager-only inside the service)
		api.POST("/manager-codes", middleware.RequireAuth(), authHandler.GenerateManagerCodes)

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/my", taskHandler.MyTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("/:id/take", taskHandler.Take)
			tasks.POST("/:id/assign", taskHandler.Assign)
			tasks.POST("/:id/complete", taskHandler.Complete)
			tasks.POST("/:id/report", reportHandler.CreateReport)
		}

		// Report routes (protected)
		reports := api.Group("/reports")
		reports.Use(middleware.RequireAuth())
		{
			reports.GET("", reportHandler.ListReports)
			reports.GET("/:id", reportHandler.GetReport)
			reports.GET("/:id/pdf", reportHandler.DownloadReportPDF)
			reports.POST("/:id/reward", rewardHandler.CreateReward)
		}

		// Reward routes (protected)
		rewards := api.Group("/rewards")
		rewards.Use(middleware.RequireAuth())
		{
			rewards.GET("/my", rewardHandler.MyRewards)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
