package models

// LogTable is the full in-memory collection of current LogRecords.
//
// A table is built completely off to the side during ingestion and then
// published wholesale through the table store; once published it is
// read-only. Records keep original file order (insertion order is the
// tie-break for top-K rankings).
type LogTable struct {
	// Version identifies one published table (ULID). Readers use it to
	// detect that a cached aggregate snapshot is stale.
	Version string
	Records []*LogRecord
}

// NewEmptyLogTable returns the zero-record table installed at process start.
func NewEmptyLogTable() *LogTable {
	return &LogTable{Version: "", Records: nil}
}

// Len returns the record count.
func (t *LogTable) Len() int {
	return len(t.Records)
}
