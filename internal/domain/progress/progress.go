// Package progress computes how close a comparison mark is to a personal
// record, as a clamped ratio with a qualitative banding on top.
package progress

import (
	"math"

	"github.com/okian/piste/internal/domain/metric"
)

// Band is the qualitative tier a ratio falls into; consumed purely by
// presentation for color coding.
type Band int

const (
	BandLow Band = iota
	BandModerate
	BandStrong
	BandElite
)

// Banding thresholds on the clamped ratio.
const (
	eliteThreshold    = 0.95
	strongThreshold   = 0.80
	moderateThreshold = 0.60
)

// String returns the band name used in API payloads.
func (b Band) String() string {
	switch b {
	case BandElite:
		return "elite"
	case BandStrong:
		return "strong"
	case BandModerate:
		return "moderate"
	default:
		return "low"
	}
}

// Ratio expresses how close comparison is to record in [0, 1], per the
// direction: record/comparison for timed events, comparison/record for
// distance and points. Non-finite or non-positive inputs yield 0.
func Ratio(record, comparison float64, dir metric.Direction) float64 {
	if !usable(record) || !usable(comparison) {
		return 0
	}
	var r float64
	if dir == metric.Lower {
		r = record / comparison
	} else {
		r = comparison / record
	}
	return math.Max(0, math.Min(1, r))
}

// BandFor maps a ratio to its qualitative band.
func BandFor(ratio float64) Band {
	switch {
	case ratio >= eliteThreshold:
		return BandElite
	case ratio >= strongThreshold:
		return BandStrong
	case ratio >= moderateThreshold:
		return BandModerate
	default:
		return BandLow
	}
}

func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
