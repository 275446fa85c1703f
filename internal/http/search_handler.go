package http

import (
	"net/http"

	"log-intel/internal/searchers"
)

// SearchResponse reports the capped match window: count is the size of
// results, not the total number of matches in the table.
type SearchResponse struct {
	Count   int                 `json:"count"`
	Results []map[string]string `json:"results"`
}

type searchHandler struct {
	searchService searchers.SearchService
}

func NewSearchHandler(searchService searchers.SearchService) AppHttpHandler {
	return &searchHandler{searchService: searchService}
}

// Handle processes GET /search?q= requests. Always succeeds; an empty
// query or empty table yields zero results.
func (h *searchHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result := h.searchService.Search(r.Context(), searchQuery(r))

	return writeJSONResponse(w, http.StatusOK, SearchResponse{
		Count:   result.Count,
		Results: result.Results,
	})
}
