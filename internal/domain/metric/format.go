package metric

import (
	"fmt"
	"math"
	"strconv"
)

// Variant selects the display flavor of a formatted value.
type Variant int

const (
	// Default renders with unit suffixes where the kind has one.
	Default Variant = iota
	// Compact drops unit suffixes for tight layouts.
	Compact
)

// Format renders a canonical value back into a discipline-appropriate
// display string: h:mm:ss or m:ss.cc for timed kinds, fixed two-decimal
// meters for distances, a rounded integer for points.
func Format(value float64, kind Kind, variant Variant) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ""
	}

	switch kind {
	case Distance:
		if variant == Compact {
			return fmt.Sprintf("%.2f", value)
		}
		return fmt.Sprintf("%.2f m", value)
	case Points:
		return strconv.FormatInt(int64(math.Round(value)), 10)
	default:
		return formatSeconds(value, variant)
	}
}

// Seconds-per-unit constants for time rendering.
const (
	centisPerSecond = 100
	centisPerMinute = 6000
	secondsPerHour  = 3600
	secondsPerMin   = 60
)

func formatSeconds(value float64, variant Variant) string {
	if value >= secondsPerHour {
		// Route-race durations drop centiseconds.
		total := int64(math.Round(value))
		h := total / secondsPerHour
		m := (total % secondsPerHour) / secondsPerMin
		s := total % secondsPerMin
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	// Round to centiseconds first so 59.999 does not render as 59.100.
	centis := int64(math.Round(value * centisPerSecond))
	if centis >= centisPerMinute {
		m := centis / centisPerMinute
		rem := centis % centisPerMinute
		return fmt.Sprintf("%d:%02d.%02d", m, rem/centisPerSecond, rem%centisPerSecond)
	}
	if variant == Compact {
		return fmt.Sprintf("%d.%02d", centis/centisPerSecond, centis%centisPerSecond)
	}
	return fmt.Sprintf("%d.%02d s", centis/centisPerSecond, centis%centisPerSecond)
}
