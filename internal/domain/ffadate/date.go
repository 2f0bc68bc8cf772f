// Package ffadate normalizes federation date tokens — either ISO-ish
// strings or "<day> <abbreviated French month>" forms needing a year
// hint — into canonical ISO calendar dates.
package ffadate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDateLen = 10 // len("2006-01-02")

var isoPrefixPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// French month names and their common feed abbreviations, accent-folded.
var months = map[string]time.Month{
	"janvier": time.January, "janv": time.January, "jan": time.January,
	"fevrier": time.February, "fevr": time.February, "fev": time.February,
	"mars": time.March, "mar": time.March,
	"avril": time.April, "avr": time.April,
	"mai":     time.May,
	"juin":    time.June,
	"juillet": time.July, "juil": time.July, "juill": time.July,
	"aout": time.August, "aou": time.August,
	"septembre": time.September, "sept": time.September, "sep": time.September,
	"octobre": time.October, "oct": time.October,
	"novembre": time.November, "nov": time.November,
	"decembre": time.December, "dec": time.December,
}

var accentFolder = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c",
)

// ToISO converts a date token into a YYYY-MM-DD string. Tokens already
// carrying an ISO date are truncated to the calendar date; otherwise the
// "<day> <month>" form is resolved against yearHint, defaulting to the
// current year when the hint is absent (<= 0). The second return value is
// false when day or month cannot be resolved; callers must discard the
// entry in that case.
func ToISO(token string, yearHint int) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	if isoPrefixPattern.MatchString(token) {
		date := token[:isoDateLen]
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return "", false
		}
		return date, true
	}

	fields := strings.Fields(token)
	if len(fields) < 2 {
		return "", false
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return "", false
	}

	monthKey := accentFolder.Replace(strings.ToLower(strings.TrimSuffix(fields[1], ".")))
	month, ok := months[monthKey]
	if !ok {
		return "", false
	}

	year := yearHint
	if year <= 0 {
		year = time.Now().Year()
	}

	// Reject days that do not exist in the month (time.Date would roll
	// them over into the next month instead of failing).
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != month || d.Year() != year {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day), true
}
