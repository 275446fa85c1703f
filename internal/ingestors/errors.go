package ingestors

import (
	"fmt"

	"log-intel/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeLogFileNotFound = "ING_1000"

	codeInternalLogParseFailed     = "ING_9000"
	codeInternalLogFileStoreFailed = "ING_9001"
)

// errLogFileNotFound returns an error when the configured log file is absent.
func errLogFileNotFound(fileKey string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeLogFileNotFound, fmt.Sprintf("log file not found: %s", fileKey), cause)
}

// errInternalLogParseFailed returns an error when the log stream cannot be read as lines.
func errInternalLogParseFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogParseFailed, fmt.Errorf("logParseFailed: %w", cause))
}

// errInternalLogFileStoreFailed returns an error when persisting an uploaded log file fails.
func errInternalLogFileStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogFileStoreFailed, fmt.Errorf("logFileStoreFailed: %w", cause))
}
