package timeline

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/okian/piste/internal/domain/ffadate"
	"github.com/okian/piste/internal/domain/metric"
	"github.com/okian/piste/internal/domain/model"
	"github.com/okian/piste/internal/domain/parse"
	"github.com/okian/piste/internal/domain/wind"
	"github.com/okian/piste/pkg/metrics"
)

// Normalize runs the per-entry pipeline — date resolution, value parsing
// and wind/validity filtering — and returns the chart-ready points.
// Per-entry failures are local and non-fatal: a malformed entry is
// dropped and the rest of the collection keeps flowing.
func Normalize(entries []model.RawPerformanceEntry, m metric.Metric, opts ...Option) []model.NormalizedPoint {
	o := newOptions(opts)

	points := make([]model.NormalizedPoint, 0, len(entries))
	for _, e := range entries {
		if !e.HasContent() {
			continue
		}
		date, ok := ffadate.ToISO(e.DateToken, e.YearHint)
		if !ok {
			metrics.RecordPointDropped("unresolvable_date")
			continue
		}
		value, err := parse.Magnitude(e.RawPerformance, m.Kind)
		if err != nil {
			if errors.Is(err, parse.ErrInvalidMark) {
				metrics.RecordPointDropped("invalid_mark")
			} else {
				metrics.RecordPointDropped("unparseable")
			}
			continue
		}
		if !usable(value, m.Kind) {
			metrics.RecordPointDropped("unparseable")
			continue
		}
		if !wind.IsLegal(e, o.windLimitMPS) {
			metrics.RecordPointDropped("wind_illegal")
			continue
		}
		ts, ok := epochMillis(date)
		if !ok {
			metrics.RecordPointDropped("unresolvable_date")
			continue
		}
		points = append(points, model.NormalizedPoint{
			Date:      date,
			Timestamp: ts,
			Value:     value,
			Year:      date[:4],
		})
	}
	return points
}

// Rows builds the tabular projection of the entries. Unlike Normalize it
// keeps wind-illegal and invalidity-marked entries so tables can show
// them alongside the legal marks.
func Rows(entries []model.RawPerformanceEntry, m metric.Metric, opts ...Option) []model.ResultRow {
	o := newOptions(opts)

	rows := make([]model.ResultRow, 0, len(entries))
	for _, e := range entries {
		if !e.HasContent() {
			continue
		}
		date, ok := ffadate.ToISO(e.DateToken, e.YearHint)
		if !ok {
			continue
		}
		row := model.ResultRow{
			EntryID:     e.EntryID,
			Date:        date,
			Performance: e.RawPerformance,
			Place:       e.Place,
			Legal:       wind.IsLegal(e, o.windLimitMPS),
		}
		if value, err := parse.Magnitude(e.RawPerformance, m.Kind); err == nil && usable(value, m.Kind) {
			v := value
			row.Value = &v
		} else if errors.Is(err, parse.ErrInvalidMark) {
			row.Invalid = true
		}
		if r, ok := wind.Extract(e); ok {
			w := r.MetersPerSecond
			row.Wind = &w
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// Build condenses a discipline's points into a TimelineView: best mark
// per calendar day, chronological order, optional year scoping, and
// best-of-year condensation when the unscoped series is dense. The
// day-then-year reduction is idempotent: feeding a view's points back in
// yields the same points.
func Build(points []model.NormalizedPoint, dir metric.Direction, selectedYear string, opts ...Option) model.TimelineView {
	o := newOptions(opts)
	if selectedYear == "" {
		selectedYear = model.YearAll
	}

	reduced := bestPer(points, dir, func(p model.NormalizedPoint) string { return p.Date })
	sortChronological(reduced)
	unscoped := len(reduced)

	view := model.TimelineView{SelectedYear: selectedYear}

	if selectedYear != model.YearAll {
		scoped := reduced[:0:0]
		for _, p := range reduced {
			if p.Year == selectedYear {
				scoped = append(scoped, p)
			}
		}
		view.Points = scoped
		return view
	}

	if unscoped > o.condenseThreshold {
		yearly := bestPer(reduced, dir, func(p model.NormalizedPoint) string { return p.Year })
		sortChronological(yearly)
		view.Points = yearly
		view.IsCondensed = true
		metrics.RecordTimelineCondensed()
		return view
	}

	view.Points = reduced
	return view
}

// bestPer keeps the single best point per bucket key. Ties keep the
// first-seen entry; a later point replaces only when strictly better.
func bestPer(points []model.NormalizedPoint, dir metric.Direction, key func(model.NormalizedPoint) string) []model.NormalizedPoint {
	best := make(map[string]model.NormalizedPoint, len(points))
	order := make([]string, 0, len(points))
	for _, p := range points {
		k := key(p)
		cur, seen := best[k]
		if !seen {
			best[k] = p
			order = append(order, k)
			continue
		}
		if dir.Better(p.Value, cur.Value) {
			best[k] = p
		}
	}
	out := make([]model.NormalizedPoint, 0, len(order))
	for _, k := range order {
		out = append(out, best[k])
	}
	return out
}

func sortChronological(points []model.NormalizedPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})
}

// usable enforces the point invariant: finite, and strictly positive for
// time and distance kinds.
func usable(value float64, kind metric.Kind) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	if kind == metric.Points {
		return value >= 0
	}
	return value > 0
}

func epochMillis(isoDate string) (int64, bool) {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return 0, false
	}
	return t.UnixMilli(), true
}
