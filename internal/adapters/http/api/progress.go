// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// ProgressHandler handles progress ratio requests.
type ProgressHandler struct {
	deps Dependencies
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(deps Dependencies) *ProgressHandler {
	return &ProgressHandler{deps: deps}
}

// HandleGetProgress handles GET /progress?discipline=X&year=YYYY requests.
func (h *ProgressHandler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_progress"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	discipline := strings.TrimSpace(r.URL.Query().Get("discipline"))
	year := strings.TrimSpace(r.URL.Query().Get("year"))
	if discipline == "" || !yearPattern.MatchString(year) {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	report, err := h.deps.Progress(r.Context(), discipline, year)
	if err != nil {
		if isUnknownDiscipline(err) {
			writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}
