// Package wind extracts wind readings from raw entries and decides their
// legality for the numeric timeline. All free-text wind scanning lives
// here so chart and table consumers share one extraction policy.
package wind

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/okian/piste/internal/domain/model"
	"github.com/okian/piste/internal/domain/parse"
)

// LegalLimitMPS is the outdoor-track wind-assistance limit: readings
// strictly above it disqualify a mark from record and chart purposes.
const LegalLimitMPS = 2.0

var (
	decimalPattern = regexp.MustCompile(`[-+]?\d+(?:[.,]\d+)?`)
	// "+1.8 m/s" anywhere in the text.
	inlinePattern = regexp.MustCompile(`([-+]?\d+(?:[.,]\d+)?)\s*m/s`)
	// A number carrying an explicit sign; a plain chrono digit never matches.
	signedPattern = regexp.MustCompile(`[-+]\d+(?:[.,]\d+)?`)
	// "vent: -0.4", "Vent +1,2" in meeting or notes free text.
	ventPattern = regexp.MustCompile(`(?i)vent\s*:?\s*([-+]?\d+(?:[.,]\d+)?)`)
)

// Extract returns the wind reading for an entry, trying in order: the
// explicit wind field, an inline "m/s" token in the performance text, a
// sign- or "vent"-guarded number in the performance text, and finally a
// "vent" marker in the meeting or notes fields.
func Extract(e model.RawPerformanceEntry) (model.WindReading, bool) {
	if e.Wind != "" {
		if v, ok := number(decimalPattern.FindString(e.Wind)); ok {
			return model.WindReading{MetersPerSecond: v}, true
		}
	}

	if raw := e.RawPerformance; raw != "" {
		if m := inlinePattern.FindStringSubmatch(raw); m != nil {
			if v, ok := number(m[1]); ok {
				return model.WindReading{MetersPerSecond: v}, true
			}
		}
		// Without the m/s suffix a bare number is ambiguous: require an
		// explicit sign or the word "vent" before trusting it.
		if m := ventPattern.FindStringSubmatch(raw); m != nil {
			if v, ok := number(m[1]); ok {
				return model.WindReading{MetersPerSecond: v}, true
			}
		}
		if m := signedPattern.FindString(raw); m != "" {
			if v, ok := number(m); ok {
				return model.WindReading{MetersPerSecond: v}, true
			}
		}
	}

	for _, text := range []string{e.Meeting, e.Notes} {
		if m := ventPattern.FindStringSubmatch(text); m != nil {
			if v, ok := number(m[1]); ok {
				return model.WindReading{MetersPerSecond: v}, true
			}
		}
	}

	return model.WindReading{}, false
}

// IsLegal reports whether the entry may feed the numeric timeline. An
// entry with an invalidity marker is never legal regardless of wind; an
// entry whose wind exceeds limitMPS is excluded from charts but remains
// visible to tabular consumers.
func IsLegal(e model.RawPerformanceEntry, limitMPS float64) bool {
	if parse.HasInvalidityMarker(e.RawPerformance) {
		return false
	}
	if r, ok := Extract(e); ok && r.MetersPerSecond > limitMPS {
		return false
	}
	return true
}

func number(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
