package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hydromon/internal/config"
	"hydromon/internal/domain"
	"hydromon/internal/handler"
	"hydromon/internal/infrastructure/database"
	"hydromon/internal/logger"
	"hydromon/internal/metrics"
	"hydromon/internal/middleware"
	"hydromon/internal/repository"
	"hydromon/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Setup(cfg.LogLevel, os.Stdout)

	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	if cfg.RunMigrations {
		logger.Info("Applying schema migrations", slog.String("dir", cfg.MigrationsDir))
		if err := database.RunMigrations(poolCfg.URL(), cfg.MigrationsDir); err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("error", err.Error()))
		}
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.HealthCheck(startupCtx, pool); err != nil {
		cancelStartup()
		logger.Fatal("Database health check failed",
			slog.String("error", err.Error()))
	}
	metrics.LogHealthCheckMetrics(startupCtx, pool)
	cancelStartup()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	stationRepo := repository.NewPostgresStationRepository(pool)
	jobRepo := repository.NewPostgresJobRepository(pool)
	series := service.SeriesRepositories{
		Flow:         repository.NewPostgresSeriesRepository[domain.FlowMeasurement](pool),
		WaterLevel:   repository.NewPostgresSeriesRepository[domain.WaterLevelMeasurement](pool),
		WaterQuality: repository.NewPostgresSeriesRepository[domain.WaterQualityMeasurement](pool),
		Rainfall:     repository.NewPostgresSeriesRepository[domain.RainfallMeasurement](pool),
	}

	// Initialize services
	importService := service.NewImportService(stationRepo, series, jobRepo, service.PipelineConfig{
		ChunkSize:       cfg.ImportChunkSize,
		ExistsBatchSize: cfg.ImportExistsBatchSize,
		MaxErrors:       cfg.ImportMaxErrors,
	})
	exportService := service.NewExportService(stationRepo, series)
	queryService := service.NewQueryService(stationRepo, series)

	// Initialize handlers
	importHandler := handler.NewImportHandler(importService)
	exportHandler := handler.NewExportHandler(exportService)
	queryHandler := handler.NewQueryHandler(queryService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		monitoring := v1.Group("/monitoring/:variant")
		{
			monitoring.POST("/imports", middleware.BodyLimit(cfg.ImportMaxUploadBytes), importHandler.CreateImport)
			monitoring.GET("/import-template", importHandler.GetTemplate)
			monitoring.GET("/export", exportHandler.StreamExport)
			monitoring.GET("/records", queryHandler.ListRecords)
			monitoring.GET("/chart", queryHandler.GetChart)
		}

		v1.GET("/imports/:id", importHandler.GetImport)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// imports run inside their requests; draining the server drains them
	ctx, cancel := context.WithTimeout(context.Background(), cfg.WriteTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
