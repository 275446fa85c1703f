package events

// TableReplacedEvent is published after an ingestion call swaps in a new
// log table. The stats-refresh consumer uses it to warm the aggregate
// snapshot cache so the first stats read after an ingest is already served
// from cache.
//
// Example JSON:
//
//	{
//	  "tableVersion": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "acceptedCount": 1891714
//	}
type TableReplacedEvent struct {
	TableVersion  string `json:"tableVersion"`
	AcceptedCount int    `json:"acceptedCount"`
}
