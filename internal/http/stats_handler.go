package http

import (
	"net/http"

	"libraryapi/internal/stats"
)

type StatsHandler struct {
	stats *stats.Service
}

func NewStatsHandler(s *stats.Service) *StatsHandler {
	return &StatsHandler{stats: s}
}

// Summary returns the dashboard counters.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Summary(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, summary, nil)
}
