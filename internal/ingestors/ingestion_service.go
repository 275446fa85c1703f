package ingestors

import (
	"context"
	"errors"
	"io"

	"log-intel/internal/models"
	"log-intel/internal/shared/filestorages"
	"log-intel/internal/shared/loggers"
	"log-intel/internal/shared/metrics"
	"log-intel/internal/shared/ulid"
	"log-intel/internal/stores"
	"log-intel/internal/streams"
)

// IngestResult represents the result of one ingestion operation.
type IngestResult struct {
	TableVersion  string
	AcceptedCount int
	SkippedCount  int
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest reads the log file at fileKey, parses and derives every
	// accepted line, and atomically replaces the current log table.
	// The previous table is fully superseded; repeated calls are
	// idempotent in effect.
	Ingest(ctx context.Context, fileKey string) (*IngestResult, error)

	// Upload persists body as the log file at fileKey, then ingests it.
	Upload(ctx context.Context, fileKey string, body io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	recordParser  RecordParser
	fieldDeriver  FieldDeriver
	fileStorage   filestorages.FileStorage
	tableStore    stores.LogTableStore
	eventProducer streams.TableReplacedProducer
}

func NewIngestionService(
	recordParser RecordParser,
	fieldDeriver FieldDeriver,
	fileStorage filestorages.FileStorage,
	tableStore stores.LogTableStore,
	eventProducer streams.TableReplacedProducer,
) IngestionService {
	return &ingestionService{
		recordParser:  recordParser,
		fieldDeriver:  fieldDeriver,
		fileStorage:   fileStorage,
		tableStore:    tableStore,
		eventProducer: eventProducer,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, fileKey string) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting log file: %s", fileKey)

	readCloser, err := s.fileStorage.Get(ctx, fileKey)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			svcError := errLogFileNotFound(fileKey, err)
			metricTableReplacedTotal.WithLabelValues(svcError.Code).Inc()
			return nil, svcError
		}
		svcError := errInternalLogParseFailed(err)
		metricTableReplacedTotal.WithLabelValues(svcError.Code).Inc()
		return nil, svcError
	}
	defer readCloser.Close()

	outcome, err := s.recordParser.Parse(readCloser)
	if err != nil {
		svcError := errInternalLogParseFailed(err)
		metricTableReplacedTotal.WithLabelValues(svcError.Code).Inc()
		return nil, svcError
	}

	// Build the new table fully off to the side before publishing it.
	records := make([]*models.LogRecord, 0, len(outcome.Rows))
	for _, row := range outcome.Rows {
		records = append(records, s.fieldDeriver.Derive(row))
	}

	table := &models.LogTable{
		Version: ulid.NewULID(),
		Records: records,
	}
	s.tableStore.Replace(table)

	// The table is already live; the event only warms downstream caches,
	// so a publish failure must not fail the ingestion.
	if err := s.eventProducer.Produce(ctx, table.Version, len(records)); err != nil {
		logger.Warn().Err(err).
			Str(loggers.FieldTableVersion, table.Version).
			Msg("failed to publish table replaced event")
	}

	metricLinesAcceptedTotal.WithLabelValues().Add(float64(len(records)))
	metricLinesSkippedTotal.WithLabelValues().Add(float64(outcome.SkippedLines))
	metricTableReplacedTotal.WithLabelValues(metrics.ValueNoError).Inc()

	logger.Info().
		Str(loggers.FieldTableVersion, table.Version).
		Msgf("log table replaced: %d accepted, %d skipped", len(records), outcome.SkippedLines)

	return &IngestResult{
		TableVersion:  table.Version,
		AcceptedCount: len(records),
		SkippedCount:  outcome.SkippedLines,
	}, nil
}

func (s *ingestionService) Upload(ctx context.Context, fileKey string, body io.Reader) (*IngestResult, error) {
	if _, err := s.fileStorage.Put(ctx, fileKey, body); err != nil {
		return nil, errInternalLogFileStoreFailed(err)
	}
	return s.Ingest(ctx, fileKey)
}
