package http

import (
	"fmt"
	"net/http"

	"log-intel/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// UploadResponse reports how many log lines were accepted into the table.
type UploadResponse struct {
	Message       string `json:"message"`
	AcceptedCount int    `json:"accepted_count"`
}

type uploadHandler struct {
	ingestionService ingestors.IngestionService
	logFileKey       string
}

func NewUploadHandler(ingestionService ingestors.IngestionService, logFileKey string) AppHttpHandler {
	return &uploadHandler{
		ingestionService: ingestionService,
		logFileKey:       logFileKey,
	}
}

// Handle processes /upload requests. A request body replaces the stored
// log file before ingestion; without a body the stored file is re-ingested
// as-is.
func (h *uploadHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var result *ingestors.IngestResult
	var err error

	// ContentLength is -1 for chunked bodies; only 0 means no body.
	if r.ContentLength != 0 {
		result, err = h.ingestionService.Upload(r.Context(), h.logFileKey, r.Body)
	} else {
		result, err = h.ingestionService.Ingest(r.Context(), h.logFileKey)
	}
	if err != nil {
		return err
	}

	return writeJSONResponse(w, http.StatusOK, UploadResponse{
		Message:       fmt.Sprintf("Successfully loaded %d logs.", result.AcceptedCount),
		AcceptedCount: result.AcceptedCount,
	})
}
