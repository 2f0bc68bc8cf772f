// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	repository "github.com/okian/piste/internal/adapters/repository"
	"github.com/okian/piste/internal/domain/metric"
	"github.com/okian/piste/internal/domain/model"
	"github.com/okian/piste/internal/domain/progress"
	"github.com/okian/piste/internal/domain/timeline"
	"github.com/okian/piste/internal/fixture"
	"github.com/okian/piste/pkg/logger"
	"github.com/okian/piste/pkg/metrics"
)

// IngestReport summarizes one ingest call.
type IngestReport struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// ProgressReport is the progress-indicator payload: how close the season
// best sits to the all-time record, with its qualitative band.
type ProgressReport struct {
	Discipline string  `json:"discipline"`
	Year       string  `json:"year"`
	Record     float64 `json:"record"`
	Comparison float64 `json:"comparison"`
	Ratio      float64 `json:"ratio"`
	Band       string  `json:"band"`

	RecordLabel     string `json:"record_label"`
	ComparisonLabel string `json:"comparison_label"`
}

// Service implements the API dependencies for the timeline system. It
// holds only raw entries; every timeline, table and ratio is recomputed
// from them on demand.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	provider fixture.Provider

	// Configuration
	shardCount        int
	windLimitMPS      float64
	condenseThreshold int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets a custom raw entry store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithShardCount sets the shard count of the default store.
func WithShardCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.shardCount = count
		}
	}
}

// WithWindLimit sets the legal wind limit in m/s.
func WithWindLimit(limit float64) Option {
	return func(s *Service) {
		if limit > 0 {
			s.windLimitMPS = limit
		}
	}
}

// WithCondenseThreshold sets the timeline condensation threshold.
func WithCondenseThreshold(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.condenseThreshold = n
		}
	}
}

// WithFixtureProvider injects a demo data provider whose entries are
// loaded once at Start. Replaces the old module-level mock profile.
func WithFixtureProvider(p fixture.Provider) Option {
	return func(s *Service) {
		s.provider = p
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		shardCount:        8,
		windLimitMPS:      timeline.DefaultWindLimitMPS,
		condenseThreshold: timeline.DefaultCondenseThreshold,
		logger:            nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components and preloads fixture data
// when a provider was injected.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting timeline service...")

	if s.store == nil {
		s.store = repository.NewMemStore(ctx, repository.WithShardCount(s.shardCount))
	}

	if s.provider != nil {
		seeded := s.store.Append(ctx, s.provider.Entries(ctx)...)
		s.logger.Info(ctx, "preloaded fixture entries", logger.Int("count", seeded))
	}

	s.started = true
	s.logger.Info(ctx, "timeline service started",
		logger.Int("shards", s.shardCount),
		logger.Float64("windLimitMPS", s.windLimitMPS),
		logger.Int("condenseThreshold", s.condenseThreshold),
	)

	return nil
}

// Stop shuts down the service. The store is purely in-memory, so this
// only flips the lifecycle flag.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "timeline service stopped")
}

// Ingest validates and stores raw entries. Entries with neither a
// performance nor a place are rejected; missing ids are assigned.
func (s *Service) Ingest(ctx context.Context, entries []model.RawPerformanceEntry) IngestReport {
	var report IngestReport
	accepted := make([]model.RawPerformanceEntry, 0, len(entries))

	for _, e := range entries {
		switch {
		case e.Discipline == "":
			report.Rejected++
			metrics.RecordEntryRejected("missing_discipline")
		case !e.HasContent():
			report.Rejected++
			metrics.RecordEntryRejected("no_performance_or_place")
		default:
			if e.EntryID == "" {
				e.EntryID = uuid.New().String()
			}
			accepted = append(accepted, e)
		}
	}

	report.Accepted = s.store.Append(ctx, accepted...)
	for range report.Accepted {
		metrics.RecordEntryIngested()
	}

	s.logger.Debug(ctx, "ingested entries",
		logger.Int("accepted", report.Accepted),
		logger.Int("rejected", report.Rejected),
	)
	return report
}

// Timeline recomputes the normalized, aggregated series for a discipline.
// selectedYear is "all" or a 4-digit year.
func (s *Service) Timeline(ctx context.Context, discipline, selectedYear string) (model.TimelineView, error) {
	entries, err := s.store.ByDiscipline(ctx, discipline)
	if err != nil {
		return model.TimelineView{}, err
	}

	m := metric.Classify(discipline)
	points := timeline.Normalize(entries, m, s.engineOptions()...)
	view := timeline.Build(points, m.Direction, selectedYear, s.engineOptions()...)

	metrics.RecordTimelineBuild()
	metrics.ObserveTimelinePoints(len(view.Points))
	return view, nil
}

// Results returns the tabular projection for a discipline, retaining
// wind-illegal and invalid entries that charts exclude.
func (s *Service) Results(ctx context.Context, discipline string) ([]model.ResultRow, error) {
	entries, err := s.store.ByDiscipline(ctx, discipline)
	if err != nil {
		return nil, err
	}
	m := metric.Classify(discipline)
	return timeline.Rows(entries, m, s.engineOptions()...), nil
}

// Progress computes how close the season best of the given year is to
// the all-time record for the discipline.
func (s *Service) Progress(ctx context.Context, discipline, year string) (ProgressReport, error) {
	entries, err := s.store.ByDiscipline(ctx, discipline)
	if err != nil {
		return ProgressReport{}, err
	}

	m := metric.Classify(discipline)
	points := timeline.Normalize(entries, m, s.engineOptions()...)

	record, okRecord := bestValue(points, m.Direction, "")
	comparison, okComparison := bestValue(points, m.Direction, year)

	report := ProgressReport{
		Discipline: discipline,
		Year:       year,
	}
	if !okRecord || !okComparison {
		report.Band = progress.BandFor(0).String()
		return report, nil
	}

	ratio := progress.Ratio(record, comparison, m.Direction)
	report.Record = record
	report.Comparison = comparison
	report.Ratio = ratio
	report.Band = progress.BandFor(ratio).String()
	report.RecordLabel = metric.Format(record, m.Kind, metric.Default)
	report.ComparisonLabel = metric.Format(comparison, m.Kind, metric.Default)
	return report, nil
}

// Disciplines lists the disciplines currently tracked.
func (s *Service) Disciplines(ctx context.Context) []string {
	return s.store.Disciplines(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":           s.started,
		"shardCount":        s.shardCount,
		"windLimitMPS":      s.windLimitMPS,
		"condenseThreshold": s.condenseThreshold,
	}

	if s.started {
		total := s.store.Count(ctx)
		disciplines := s.store.Disciplines(ctx)

		stats["totalEntries"] = total
		stats["disciplines"] = len(disciplines)

		metrics.UpdateStoreEntries(total)
		metrics.UpdateDisciplineCount(len(disciplines))
	}

	return stats
}

func (s *Service) engineOptions() []timeline.Option {
	return []timeline.Option{
		timeline.WithWindLimit(s.windLimitMPS),
		timeline.WithCondenseThreshold(s.condenseThreshold),
	}
}

// bestValue returns the best point value per direction, optionally scoped
// to a year ("" means all-time).
func bestValue(points []model.NormalizedPoint, dir metric.Direction, year string) (float64, bool) {
	var best float64
	found := false
	for _, p := range points {
		if year != "" && year != model.YearAll && p.Year != year {
			continue
		}
		if !found || dir.Better(p.Value, best) {
			best = p.Value
			found = true
		}
	}
	return best, found
}
