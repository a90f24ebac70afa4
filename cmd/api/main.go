package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/campuslms/rewards-api/docs"
	"github.com/campuslms/rewards-api/internal/api"
	"github.com/campuslms/rewards-api/internal/config"
	"github.com/campuslms/rewards-api/internal/middleware"
	"github.com/campuslms/rewards-api/internal/repository/postgres"
	"github.com/campuslms/rewards-api/internal/service"
	"github.com/campuslms/rewards-api/internal/tenantpool"
	"github.com/campuslms/rewards-api/internal/token"
	"github.com/campuslms/rewards-api/pkg/logger"
)

// @title           Rewards API
// @version         1.0
// @description     Multi-tenant rewards redemption API.

// @host      localhost:10000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	adminDB, err := config.NewAdminDatabase(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to admin database", err)
	}
	defer config.CloseDatabase(adminDB)

	appLogger.Info("Admin database connected")

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Tenant connection pool, owned here and injected everywhere below.
	pool := tenantpool.New(tenantpool.Options{
		MaxPerTenant:  cfg.PoolMaxPerTenant,
		IdleTTL:       cfg.PoolIdleTTL,
		SweepInterval: cfg.PoolSweepInterval,
		Open:          config.OpenTenantDatabase,
	}, appLogger)
	pool.Start()

	tokenManager := token.NewManager(cfg.JWTSecretKey, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	directory := postgres.NewTenantDirectory(adminDB)

	// Initialize services
	authService := service.NewAuthService(directory, pool, postgres.NewTenantData, tokenManager, appLogger)
	permissionService := service.NewPermissionService(postgres.NewTenantData, appLogger)
	rewardService := service.NewRewardService(postgres.NewTenantData, appLogger)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenManager)
	tenantMiddleware := middleware.NewTenantMiddleware(directory, pool, appLogger)
	permissionMiddleware := middleware.NewPermissionMiddleware(appLogger)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)

	// Initialize server
	server := api.NewServer(
		authService,
		permissionService,
		rewardService,
		pool,
		authMiddleware,
		tenantMiddleware,
		permissionMiddleware,
		rateLimitMiddleware,
		cfg,
	)

	// Initialize router
	router := gin.Default()

	docs.SwaggerInfo.Title = "Rewards API"
	docs.SwaggerInfo.Description = "Multi-tenant rewards redemption API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes
	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	// Close every pooled tenant connection before the process exits.
	if err := pool.Shutdown(ctx); err != nil {
		appLogger.Error("Tenant pool shutdown timed out", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
