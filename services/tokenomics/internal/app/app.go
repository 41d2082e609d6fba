package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coinpitch/pkg/cache"
	"coinpitch/pkg/config"
	"coinpitch/pkg/database"
	"coinpitch/pkg/jwt"
	"coinpitch/pkg/logger"
	"coinpitch/pkg/middleware"
	"coinpitch/pkg/queue"
	tokenomicsHTTP "coinpitch/services/tokenomics/internal/controller/http"
	"coinpitch/services/tokenomics/internal/repo/persistent"
	"coinpitch/services/tokenomics/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without ledger events)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	txRepo := persistent.NewTransactionRepository(a.db)
	settingsRepo := persistent.NewSettingsRepository(a.db)
	userRepo := persistent.NewUserRepository(a.db)

	// Initialize use cases
	feeCalc := usecase.NewFeeCalculator(settingsRepo)
	processor := usecase.NewTransactionProcessor(txRepo, feeCalc, a.queueClient, a.log)
	overviewUseCase := usecase.NewOverviewUseCase(txRepo, feeCalc, a.log)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, a.log)
	simulator := usecase.NewSimulator(processor, feeCalc, userRepo, a.log)

	// Seed baseline settings; admin overrides are preserved
	if err := settingsUseCase.EnsureDefaults(); err != nil {
		return err
	}

	// Initialize HTTP handlers
	tokenomicsHandler := tokenomicsHTTP.NewTokenomicsHandler(overviewUseCase, settingsUseCase, simulator, a.log)
	webhookHandler := tokenomicsHTTP.NewWebhookHandler(processor, feeCalc, userRepo, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
	{
		api.GET("/tokenomics", tokenomicsHandler.GetOverview)
		api.GET("/tokenomics/transactions", tokenomicsHandler.GetTransactions)
		api.POST("/tokenomics/webhook", webhookHandler.HandleTransaction)

		// Admin routes
		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(a.jwtService))
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.GET("/tokenomics/settings", tokenomicsHandler.GetSettings)
			admin.PUT("/tokenomics/settings", tokenomicsHandler.UpdateSetting)
			admin.POST("/tokenomics/simulate", tokenomicsHandler.Simulate)
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Tokenomics service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down tokenomics service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Tokenomics service exited")
	return nil
}
