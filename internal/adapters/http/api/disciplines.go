// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// DisciplinesHandler lists tracked disciplines.
type DisciplinesHandler struct {
	deps Dependencies
}

// NewDisciplinesHandler creates a new disciplines handler.
func NewDisciplinesHandler(deps Dependencies) *DisciplinesHandler {
	return &DisciplinesHandler{deps: deps}
}

// HandleGetDisciplines handles GET /disciplines requests.
func (h *DisciplinesHandler) HandleGetDisciplines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	names := h.deps.Disciplines(r.Context())
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}
