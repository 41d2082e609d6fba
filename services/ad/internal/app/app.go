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
	"coinpitch/pkg/s3"
	adHTTP "coinpitch/services/ad/internal/controller/http"
	"coinpitch/services/ad/internal/repo/persistent"
	"coinpitch/services/ad/internal/usecase"

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
	s3Client    *s3.Client
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
		log.Error("Failed to connect to redis: %v (continuing without vote dedup cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	adRepo := persistent.NewAdRepository(a.db)
	voteRepo := persistent.NewVoteRepository(a.db)
	settingsRepo := persistent.NewSettingsReader(a.db)

	// Initialize use cases
	adUseCase := usecase.NewAdUseCase(adRepo, voteRepo, settingsRepo, a.redisClient, a.s3Client, a.log)

	// Initialize HTTP handlers
	adHandler := adHTTP.NewAdHandler(adUseCase)

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
		api.GET("/ads", adHandler.ListAds)
		api.GET("/ads/:id", adHandler.GetAd)

		// Authenticated routes
		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(a.jwtService))
		{
			authed.POST("/ads/:id/vote", adHandler.Vote)

			participant := authed.Group("")
			participant.Use(middleware.RequireRole("participant", "admin"))
			{
				participant.POST("/ads", adHandler.SubmitAd)
				participant.GET("/ads/mine", adHandler.MyAds)
				participant.POST("/ads/:id/creative", adHandler.UploadCreative)
			}

			admin := authed.Group("")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.PUT("/ads/:id/approve", adHandler.Approve)
				admin.PUT("/ads/:id/reject", adHandler.Reject)
			}
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Ad service starting on port %s", a.cfg.ServerPort)
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
	a.log.Info("Shutting down ad service...")
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

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Ad service exited")
	return nil
}
