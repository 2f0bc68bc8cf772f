// Package metric classifies discipline labels into a metric kind and a
// comparison direction, and renders canonical values for display.
package metric

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies the canonical unit and formatting of a discipline.
type Kind int

// Metric kinds, in increasing typical duration for timed events.
const (
	TimeShort    Kind = iota // sprints, hurdles; canonical best under ~3 minutes
	TimeLong                 // middle and long distance track events
	TimeMarathon             // route races typically over one hour
	Distance                 // jumps and throws, meters
	Points                   // combined events, integer points
)

// String returns the kind name used in logs and API payloads.
func (k Kind) String() string {
	switch k {
	case TimeShort:
		return "time-short"
	case TimeLong:
		return "time-long"
	case TimeMarathon:
		return "time-marathon"
	case Distance:
		return "distance"
	case Points:
		return "points"
	default:
		return "unknown"
	}
}

// IsTime reports whether the kind measures elapsed time in seconds.
func (k Kind) IsTime() bool {
	return k == TimeShort || k == TimeLong || k == TimeMarathon
}

// Direction is the comparison polarity: whether smaller or larger
// canonical values are better.
type Direction int

const (
	// Lower means smaller values are better (timed events).
	Lower Direction = iota
	// Higher means larger values are better (distance and points).
	Higher
)

// String returns the direction name used in logs and API payloads.
func (d Direction) String() string {
	if d == Higher {
		return "higher"
	}
	return "lower"
}

// Better reports whether a beats b under the direction.
func (d Direction) Better(a, b float64) bool {
	if d == Lower {
		return a < b
	}
	return a > b
}

// Metric bundles everything a consumer needs to interpret values of a
// discipline: unit kind, comparison direction, a table column label and
// the minimum change considered a real trend rather than noise.
type Metric struct {
	Kind           Kind
	Direction      Direction
	TableLabel     string
	DeltaThreshold float64
}

// shortTrackMaxMeters is the largest bare track distance whose canonical
// best time stays under roughly three minutes.
const shortTrackMaxMeters = 1000

var trackDistancePattern = regexp.MustCompile(`(\d{2,5})\s*m\b`)

// Keyword tables over the folded (lowercase, accent-stripped) label.
// Order of evaluation: points, field, route, endurance, bare distance.
var (
	pointsKeywords = []string{
		"decathlon", "heptathlon", "pentathlon", "octathlon", "epreuves combinees",
	}
	fieldKeywords = []string{
		"saut", "longueur", "hauteur", "perche", "triple",
		"poids", "disque", "marteau", "javelot", "lancer",
	}
	marathonKeywords  = []string{"marathon", "semi", "100 km", "100km"}
	enduranceKeywords = []string{"steeple", "marche", "cross", "fond", "heure"}
	sprintKeywords    = []string{"haies", "sprint", "relais"}
)

// Classify maps a free-text discipline label to its metric. Unrecognized
// labels default to a sprint-like timed metric; defaulting to a field
// metric would silently invert the comparison for unknown track events.
func Classify(discipline string) Metric {
	label := fold(discipline)

	switch {
	case containsAny(label, pointsKeywords):
		return Metric{Kind: Points, Direction: Higher, TableLabel: "Points", DeltaThreshold: 1}
	case containsAny(label, fieldKeywords):
		return Metric{Kind: Distance, Direction: Higher, TableLabel: "Distance", DeltaThreshold: 0.01}
	case containsAny(label, marathonKeywords):
		return timed(TimeMarathon, 1)
	case containsAny(label, enduranceKeywords):
		return timed(TimeLong, 0.1)
	case strings.Contains(label, "km"):
		// Route races below the marathon keywords: 5 km, 10 km and the like.
		return timed(TimeLong, 0.1)
	}

	if m := trackDistancePattern.FindStringSubmatch(label); m != nil {
		meters, err := strconv.Atoi(m[1])
		if err == nil && meters > shortTrackMaxMeters {
			return timed(TimeLong, 0.1)
		}
		return timed(TimeShort, 0.01)
	}

	if containsAny(label, sprintKeywords) {
		return timed(TimeShort, 0.01)
	}

	// Unknown labels score as short timed events.
	return timed(TimeShort, 0.01)
}

func timed(k Kind, delta float64) Metric {
	return Metric{Kind: k, Direction: Lower, TableLabel: "Temps", DeltaThreshold: delta}
}

func containsAny(label string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(label, kw) {
			return true
		}
	}
	return false
}

var accentFolder = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c",
)

// fold lowercases and strips the French accents seen in FFA labels.
func fold(s string) string {
	return accentFolder.Replace(strings.ToLower(s))
}
