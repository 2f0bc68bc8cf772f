// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/okian/piste/internal/domain/model"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// TimelineHandler handles timeline requests.
type TimelineHandler struct {
	deps Dependencies
}

// NewTimelineHandler creates a new timeline handler.
func NewTimelineHandler(deps Dependencies) *TimelineHandler {
	return &TimelineHandler{deps: deps}
}

// HandleGetTimeline handles GET /timeline?discipline=X&year=all|YYYY requests.
func (h *TimelineHandler) HandleGetTimeline(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_timeline"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	discipline := strings.TrimSpace(r.URL.Query().Get("discipline"))
	if discipline == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	year := strings.TrimSpace(r.URL.Query().Get("year"))
	if year == "" {
		year = model.YearAll
	}
	if year != model.YearAll && !yearPattern.MatchString(year) {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	view, err := h.deps.Timeline(r.Context(), discipline, year)
	if err != nil {
		if isUnknownDiscipline(err) {
			writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, view)
}
