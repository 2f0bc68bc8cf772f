// Package parse converts raw federation result strings into canonical
// numeric magnitudes: seconds for timed events, meters for distances,
// integer points for combined events.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/okian/piste/internal/domain/metric"
)

// Invalidity codes recognized as whole tokens, case-insensitive.
var invalidTokens = map[string]struct{}{
	"dnf": {}, "dns": {}, "dq": {}, "dsq": {}, "np": {}, "nc": {},
}

// Multi-word invalidity phrases checked against the lowered text.
var invalidPhrases = []string{"did not finish", "did not start"}

var (
	// 1'52''34 or 1'52"34: minutes, seconds, optional centiseconds.
	minutesPattern = regexp.MustCompile(`^(\d+)'(\d{1,2})(?:''|")(\d{1,2})?$`)
	// 10''52 or 10"52: seconds, optional centiseconds.
	secondsPattern = regexp.MustCompile(`^(\d+)(?:''|")(\d{1,2})?$`)
	// 1:52.34, the formatter's own sub-hour notation.
	clockCentisPattern = regexp.MustCompile(`^(\d+):(\d{1,2})[.,](\d{1,2})$`)
	// 2:06:33, the formatter's route-race notation.
	clockHoursPattern = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})$`)
	// First signed decimal anywhere, comma or dot separator.
	decimalPattern = regexp.MustCompile(`[-+]?\d+(?:[.,]\d+)?`)
	// Strict decimal covering the whole token.
	bareDecimalPattern = regexp.MustCompile(`^[-+]?\d+(?:[.,]\d+)?$`)

	parenPattern = regexp.MustCompile(`\(([^)]*)\)`)
	tokenSplit   = regexp.MustCompile(`[^a-z]+`)
)

// Wind markers embedded in the performance text, mirroring the wind
// package's extraction: an "m/s" reading, a "vent"-guarded number, or a
// bare signed number. Chrono notations never carry a sign or either
// keyword, so stripping these before timed parsing is lossless.
var windMarkerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[-+]?\d+(?:[.,]\d+)?\s*m/s`),
	regexp.MustCompile(`(?i)vent\s*:?\s*[-+]?\d+(?:[.,]\d+)?`),
	regexp.MustCompile(`[-+]\d+(?:[.,]\d+)?`),
}

// Magnitude converts one raw performance string into a canonical numeric
// value for the given kind. It returns ErrInvalidMark for recognized
// invalidity codes and ErrUnparseable when no numeric pattern applies.
// Deterministic and side-effect free.
func Magnitude(raw string, kind metric.Kind) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, ErrUnparseable
	}
	if HasInvalidityMarker(text) {
		return 0, ErrInvalidMark
	}

	if kind.IsTime() {
		// Some feeds store the homologated time inside parentheses and a
		// provisional or rounded one outside; prefer the inner text. Wind
		// markers are stripped first so a reading like "(+1.8 m/s)" is
		// never mistaken for the mark itself.
		if m := parenPattern.FindStringSubmatch(text); m != nil {
			if inner := stripWindMarkers(m[1]); inner != "" {
				if v, err := timeSeconds(inner); err == nil {
					return v, nil
				}
			}
		}
		outer := stripWindMarkers(parenPattern.ReplaceAllString(text, ""))
		return timeSeconds(outer)
	}

	return firstDecimal(text)
}

// HasInvalidityMarker reports whether the text carries a DNF/DNS/DQ/NC
// style code or spelled-out equivalent.
func HasInvalidityMarker(text string) bool {
	lowered := strings.ToLower(text)
	for _, phrase := range invalidPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	for _, tok := range tokenSplit.Split(lowered, -1) {
		if _, ok := invalidTokens[tok]; ok {
			return true
		}
	}
	return false
}

// timeSeconds normalizes the recognized timed notations to seconds.
func timeSeconds(text string) (float64, error) {
	if m := minutesPattern.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.ParseFloat(m[1], 64)
		seconds, _ := strconv.ParseFloat(m[2], 64)
		return minutes*60 + seconds + centis(m[3]), nil
	}
	if m := secondsPattern.FindStringSubmatch(text); m != nil {
		seconds, _ := strconv.ParseFloat(m[1], 64)
		return seconds + centis(m[2]), nil
	}
	if m := clockHoursPattern.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.ParseFloat(m[1], 64)
		minutes, _ := strconv.ParseFloat(m[2], 64)
		seconds, _ := strconv.ParseFloat(m[3], 64)
		return hours*3600 + minutes*60 + seconds, nil
	}
	if m := clockCentisPattern.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.ParseFloat(m[1], 64)
		seconds, _ := strconv.ParseFloat(m[2], 64)
		return minutes*60 + seconds + centis(m[3]), nil
	}
	if bareDecimalPattern.MatchString(text) {
		return strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	}
	// Fall back to the first whitespace-separated token, which covers
	// trailing qualifiers like "10.52 q".
	if fields := strings.Fields(text); len(fields) > 0 && bareDecimalPattern.MatchString(fields[0]) {
		return strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
	}
	return 0, ErrUnparseable
}

// stripWindMarkers removes embedded wind readings from timed text so the
// remaining chrono notation parses on its own.
func stripWindMarkers(text string) string {
	for _, p := range windMarkerPatterns {
		text = p.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}

func centis(digits string) float64 {
	if digits == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(digits, 64)
	return v / 100
}

// firstDecimal extracts the first signed decimal number in the string,
// ignoring trailing unit text such as "m" or "pts".
func firstDecimal(text string) (float64, error) {
	m := decimalPattern.FindString(text)
	if m == "" {
		return 0, ErrUnparseable
	}
	return strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
}
