// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/okian/piste/internal/domain/model"
)

// ResultsHandler handles raw result ingest and the tabular view.
type ResultsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps Dependencies, maxLimit int) *ResultsHandler {
	return &ResultsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleResults dispatches POST (ingest) and GET (tabular view) on /results.
func (h *ResultsHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handlePost(w, r)
	case http.MethodGet:
		h.handleGet(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handlePost ingests a batch of raw entries. A single object body is
// accepted as a batch of one.
func (h *ResultsHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_results"

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	var batch []entryRequest
	if err := json.Unmarshal(raw, &batch); err != nil {
		// A single object body is accepted as a batch of one.
		var one entryRequest
		if err2 := json.Unmarshal(raw, &one); err2 != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		batch = append(batch, one)
	}
	if len(batch) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	converted := make([]model.RawPerformanceEntry, 0, len(batch))
	for _, req := range batch {
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		converted = append(converted, req.toModel())
	}

	report := h.deps.Ingest(r.Context(), converted)
	writeJSON(w, http.StatusAccepted, report)
}

// handleGet returns the tabular rows for a discipline, capped at the
// configured limit. Unlike /timeline, rows retain wind-illegal marks.
func (h *ResultsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_results"

	discipline := strings.TrimSpace(r.URL.Query().Get("discipline"))
	if discipline == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	rows, err := h.deps.Results(r.Context(), discipline)
	if err != nil {
		if isUnknownDiscipline(err) {
			writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if h.maxLimit > 0 && len(rows) > h.maxLimit {
		rows = rows[:h.maxLimit]
	}
	writeJSON(w, http.StatusOK, rows)
}
