// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	repository "github.com/okian/piste/internal/adapters/repository"
	service "github.com/okian/piste/internal/app"
	"github.com/okian/piste/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Ingest validates and stores raw entries.
	Ingest(ctx context.Context, entries []model.RawPerformanceEntry) service.IngestReport

	// Read operations recompute views from stored raw entries.
	Timeline(ctx context.Context, discipline, selectedYear string) (model.TimelineView, error)
	Results(ctx context.Context, discipline string) ([]model.ResultRow, error)
	Progress(ctx context.Context, discipline, year string) (service.ProgressReport, error)
	Disciplines(ctx context.Context) []string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	resultsHandler     *ResultsHandler
	timelineHandler    *TimelineHandler
	progressHandler    *ProgressHandler
	disciplinesHandler *DisciplinesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxResultsLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		resultsHandler:     NewResultsHandler(deps, maxResultsLimit),
		timelineHandler:    NewTimelineHandler(deps),
		progressHandler:    NewProgressHandler(deps),
		disciplinesHandler: NewDisciplinesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/results", MetricsMiddleware(s.resultsHandler.HandleResults, "results"))
	mux.HandleFunc("/timeline", MetricsMiddleware(s.timelineHandler.HandleGetTimeline, "timeline"))
	mux.HandleFunc("/progress", MetricsMiddleware(s.progressHandler.HandleGetProgress, "progress"))
	mux.HandleFunc("/disciplines", MetricsMiddleware(s.disciplinesHandler.HandleGetDisciplines, "disciplines"))
}

// entryRequest mirrors the ingest schema for POST /results. Wind and
// place accept either a number or a string, matching the feed's habit of
// sending both.
type entryRequest struct {
	EntryID        string          `json:"entry_id"`
	Discipline     string          `json:"discipline"`
	DateToken      string          `json:"date"`
	YearHint       int             `json:"year_hint"`
	RawPerformance string          `json:"performance"`
	Wind           json.RawMessage `json:"wind"`
	Place          json.RawMessage `json:"place"`
	Meeting        string          `json:"meeting"`
	Notes          string          `json:"notes"`
}

func (e entryRequest) validate() error {
	switch {
	case strings.TrimSpace(e.Discipline) == "":
		return errors.New("missing discipline")
	case strings.TrimSpace(e.DateToken) == "":
		return errors.New("missing date")
	}
	return nil
}

func (e entryRequest) toModel() model.RawPerformanceEntry {
	return model.RawPerformanceEntry{
		EntryID:        e.EntryID,
		Discipline:     e.Discipline,
		DateToken:      e.DateToken,
		YearHint:       e.YearHint,
		RawPerformance: e.RawPerformance,
		Wind:           scalarString(e.Wind),
		Place:          scalarString(e.Place),
		Meeting:        e.Meeting,
		Notes:          e.Notes,
	}
}

// scalarString renders a JSON number or string field as plain text.
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return fmt.Sprintf("%g", n)
	}
	return ""
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isUnknownDiscipline translates the store's not-found error to 404.
func isUnknownDiscipline(err error) bool {
	return errors.Is(err, repository.ErrUnknownDiscipline)
}
