package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ikkim/cart-backend/config"
	"github.com/ikkim/cart-backend/internal/app/controller"
	"github.com/ikkim/cart-backend/internal/app/graph"
	"github.com/ikkim/cart-backend/internal/app/repository"
	"github.com/ikkim/cart-backend/internal/app/service"
	"github.com/ikkim/cart-backend/internal/db"
	"github.com/ikkim/cart-backend/internal/router"
	"github.com/ikkim/cart-backend/internal/storage"
	"github.com/ikkim/cart-backend/pkg/logger"
	"github.com/ikkim/cart-backend/pkg/money"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      logFormat,
		EnableColor: true,
	})

	logger.Info("Starting Cart GraphQL Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
		"currency":    cfg.GraphQL.Currency.String(),
	})

	// Initialize database
	conn, err := db.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(conn); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(conn); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	cartRepo := repository.NewCartRepository(conn)
	cartItemRepo := repository.NewCartItemRepository(conn)

	// Initialize services
	cartService := service.NewCartService(cartRepo, cartItemRepo)

	var presigner service.ImagePresigner
	if cfg.S3.Enabled() {
		s3Storage, err := storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			logger.Fatal("Failed to initialize S3 storage", err)
		}
		presigner = s3Storage
	} else {
		logger.Warn("AWS_S3_BUCKET not set, image uploads disabled")
	}
	uploadService := service.NewUploadService(presigner)

	// GraphQL schema
	schema, err := graph.NewSchema(graph.NewResolver(cartService, money.NewFormatter(cfg.GraphQL.Currency)))
	if err != nil {
		logger.Fatal("Failed to parse GraphQL schema", err)
	}

	// Initialize controllers
	graphQLController := controller.NewGraphQLController(schema)
	uploadController := controller.NewUploadController(uploadService)

	// Setup router
	engine := router.NewRouter(graphQLController, uploadController, cfg).Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"graphql": cfg.GraphQL.Path,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	logger.Info("Server stopped successfully")
}
