// Package model contains domain models passed between layers.
package model

// RawPerformanceEntry represents one reported result as it arrives from a
// federation feed or an app-entered personal best. All fields except
// Discipline and DateToken are optional; free-text fields may embed wind
// markers or invalidity codes.
type RawPerformanceEntry struct {
	EntryID        string // unique id, assigned at ingest when missing
	Discipline     string // free-text event name, e.g. "100m", "Saut en longueur"
	DateToken      string // ISO-like date or "<day> <abbreviated-month>[.]"
	YearHint       int    // used when DateToken lacks a year; 0 means absent
	RawPerformance string // unparsed result text
	Wind           string // explicit wind reading, numeric or free text
	Place          string // finishing place, kept when no measurable result exists
	Meeting        string // meeting name, may embed a "vent ..." marker
	Notes          string // free text, may embed a "vent ..." marker
}

// HasContent reports whether the entry carries anything worth keeping.
// An entry with neither a performance text nor a place is discarded.
func (e RawPerformanceEntry) HasContent() bool {
	return e.RawPerformance != "" || e.Place != ""
}

// NormalizedPoint is the output of parsing one valid entry: a dated,
// canonical magnitude (seconds, meters or points).
type NormalizedPoint struct {
	Date      string  `json:"date"`      // ISO calendar date, YYYY-MM-DD
	Timestamp int64   `json:"timestamp"` // epoch milliseconds, ordering key
	Value     float64 `json:"value"`     // canonical magnitude
	Year      string  `json:"year"`      // 4-digit year derived from Date
}

// WindReading is a wind measurement extracted from an entry.
type WindReading struct {
	MetersPerSecond float64 `json:"meters_per_second"`
}

// TimelineView is a caller-requested projection of a discipline's points.
// When SelectedYear is "all" and the best-per-day series is dense, Points
// holds one best-of-year entry per year and IsCondensed is true.
type TimelineView struct {
	SelectedYear string            `json:"selected_year"`
	Points       []NormalizedPoint `json:"points"`
	IsCondensed  bool              `json:"is_condensed"`
}

// YearAll selects the unscoped timeline.
const YearAll = "all"

// ResultRow is the tabular projection of one entry. Unlike chart points,
// rows retain wind-illegal and invalid marks so tables can show them.
type ResultRow struct {
	EntryID     string   `json:"entry_id"`
	Date        string   `json:"date,omitempty"`
	Performance string   `json:"performance,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Wind        *float64 `json:"wind,omitempty"`
	Place       string   `json:"place,omitempty"`
	Legal       bool     `json:"legal"`
	Invalid     bool     `json:"invalid"`
}
