package stores

import (
	"sync/atomic"

	"log-intel/internal/models"
)

// LogTableStore holds the process-wide current LogTable.
//
// Ingestion is the single writer: it builds a complete table off to the
// side and publishes it here with one atomic pointer swap, fully
// superseding the previous table. Readers (stats, search, analysis) load
// the pointer and work on an immutable snapshot, so they never observe a
// half-built table and never block the writer.
//
//go:generate mockgen -source=log_table_store.go -destination=./mocks/log_table_store_mock.go -package=mocks
type LogTableStore interface {
	// Current returns the published table. Never nil: an empty table is
	// installed at construction.
	Current() *models.LogTable
	// Replace publishes a new table wholesale.
	Replace(table *models.LogTable)
}

type logTableStore struct {
	table atomic.Pointer[models.LogTable]
}

func NewLogTableStore() LogTableStore {
	store := &logTableStore{}
	store.table.Store(models.NewEmptyLogTable())
	return store
}

func (s *logTableStore) Current() *models.LogTable {
	return s.table.Load()
}

func (s *logTableStore) Replace(table *models.LogTable) {
	s.table.Store(table)
}
