package analyzers

import (
	"log-intel/internal/shared/svcerrors"
)

// AnalysisService errors
const (
	codeNoLogsLoaded = "ANA_1000"
)

// errNoLogsLoaded returns an error when analysis is requested before any ingestion.
func errNoLogsLoaded() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoLogsLoaded, "no logs loaded", nil)
}
