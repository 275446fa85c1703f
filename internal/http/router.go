package http

import (
	"net/http"

	"log-intel/internal/aggregators"
	"log-intel/internal/analyzers"
	"log-intel/internal/ingestors"
	"log-intel/internal/searchers"
	"log-intel/internal/shared/loggers"
	"log-intel/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	ingestionService ingestors.IngestionService,
	statsService aggregators.StatsService,
	searchService searchers.SearchService,
	analysisService analyzers.AnalysisService,
	logFileKey string,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	uploadHandler := NewUploadHandler(ingestionService, logFileKey)
	statsHandler := NewStatsHandler(statsService)
	searchHandler := NewSearchHandler(searchService)
	analyzeHandler := NewAnalyzeHandler(analysisService)

	// Routes; /upload accepts GET as well because the original dashboard
	// triggers ingestion with a plain link.
	router.Post("/upload", errorHandlingAdapter(uploadHandler))
	router.Get("/upload", errorHandlingAdapter(uploadHandler))
	router.Get("/stats", errorHandlingAdapter(statsHandler))
	router.Get("/search", errorHandlingAdapter(searchHandler))
	router.Post("/analyze", errorHandlingAdapter(analyzeHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
