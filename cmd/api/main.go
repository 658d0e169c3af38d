package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mygpt/internal/auth"
	"mygpt/internal/config"
	"mygpt/internal/database"
	"mygpt/internal/database/migration"
	handlers "mygpt/internal/http/handler"
	"mygpt/internal/http/middleware"
	"mygpt/internal/otel"
	"mygpt/internal/repository/postgres"
	"mygpt/internal/service"
	"mygpt/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Tracing first so everything below is instrumented
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Hosted auth backend client
	backend, err := auth.NewClient(cfg.Auth)
	if err != nil {
		log.Fatalf("failed to initialize auth client: %v", err)
	}

	// Repositories and services
	profileRepo := postgres.NewProfilePostgres(db)
	gptRepo := postgres.NewGPTPostgres(db)
	messageRepo := postgres.NewMessagePostgres(db)

	sessionSvc := service.NewSessionService(backend, profileRepo)
	uploadSvc, err := service.NewUploadService(objStore, cfg.PublicFilesBase())
	if err != nil {
		log.Fatalf("failed to initialize upload service: %v", err)
	}
	gptSvc := service.NewGPTService(gptRepo, messageRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Global middleware: request id, structured logs, traces, metrics
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, sessionSvc, uploadSvc, gptSvc, backend)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
