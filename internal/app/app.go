package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"log-intel/internal/aggregators"
	"log-intel/internal/analyzers"
	"log-intel/internal/events"
	internalhttp "log-intel/internal/http"
	"log-intel/internal/ingestors"
	"log-intel/internal/models"
	"log-intel/internal/searchers"
	"log-intel/internal/shared/configs"
	"log-intel/internal/shared/filestorages"
	"log-intel/internal/shared/loggers"
	"log-intel/internal/stores"
	"log-intel/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	statsRefreshConsumer streams.StatsRefreshConsumer
	backgroundCtx        context.Context
	backgroundCancel     context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-intel").
		Logger()

	// Initialize log file storage
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize the swappable log table store
	tableStore := stores.NewLogTableStore()

	// Initialize aggregation
	windowSize, err := models.NewWindowSizeFromString(config.Aggregation.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize window size: %w", err)
	}
	statsService := aggregators.NewStatsService(tableStore, windowSize)

	// Initialize the table-replaced stream: ingestion produces, the
	// stats-refresh consumer warms the snapshot cache.
	tableReplacedQueue := streams.NewPartitionedQueue[events.TableReplacedEvent]()
	tableReplacedProducer := streams.NewTableReplacedProducer(tableReplacedQueue)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	statsRefreshConsumer := streams.NewStatsRefreshConsumer(tableReplacedQueue, statsService, consumerLogger)

	// Initialize ingestion
	recordParser := ingestors.NewRecordParser()
	fieldDeriver := ingestors.NewFieldDeriver()
	ingestionService := ingestors.NewIngestionService(recordParser, fieldDeriver, fileStorage, tableStore, tableReplacedProducer)

	// Initialize search
	searchService := searchers.NewSearchService(tableStore)

	// Initialize LLM analysis
	suspiciousSampler := analyzers.NewSuspiciousSampler()
	geminiClient := analyzers.NewGeminiClient(
		config.Analysis.ApiKey,
		config.Analysis.Models,
		time.Duration(config.Analysis.TimeoutSeconds)*time.Second,
	)
	llmLimiter := rate.NewLimiter(rate.Limit(config.Analysis.RatePerSecond), config.Analysis.RateBurst)
	analysisService := analyzers.NewAnalysisService(
		tableStore,
		suspiciousSampler,
		geminiClient,
		llmLimiter,
		config.Analysis.SampleSize,
		config.Analysis.SampleSeed,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(
		ingestionService,
		statsService,
		searchService,
		analysisService,
		config.Ingestion.LogFileKey,
		httpLogger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:               config,
		appLogger:            appLogger,
		server:               server,
		statsRefreshConsumer: statsRefreshConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-intel service on port %d (log_level=%s, file_storage_root_dir=%s, log_file_key=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Ingestion.LogFileKey)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.statsRefreshConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish
	app.statsRefreshConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
