package argument

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Nominal calendar units used by the duration grammar.
// They're fixed lengths of time, not calendar arithmetic.
const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Year  = 31_556_952 * time.Second // 365.2425 days
	Month = Year / 12
)

type durationUnit struct {
	pattern string
	length  time.Duration
	suffix  string
}

// Order matters: alternatives are tried left to right, so "mo" must come before "m".
// Seconds may also be written without a suffix.
var durationUnits = []durationUnit{
	{pattern: `y(?:ear)?s?`, length: Year, suffix: "y"},
	{pattern: `mo(?:nth)?s?`, length: Month, suffix: "mo"},
	{pattern: `w(?:eek)?s?`, length: Week, suffix: "w"},
	{pattern: `d(?:ay)?s?`, length: Day, suffix: "d"},
	{pattern: `h(?:our|r)?s?`, length: time.Hour, suffix: "h"},
	{pattern: `m(?:inute|in)?s?`, length: time.Minute, suffix: "m"},
	{pattern: `s(?:econd|ec)?s?`, length: time.Second, suffix: "s"},
}

var durationPattern = func() *regexp.Regexp {
	alternatives := make([]string, len(durationUnits))
	for i, unit := range durationUnits {
		alternatives[i] = "(" + unit.pattern + ")"
	}
	return regexp.MustCompile(`(?i)(\d+)\s*(?:` + strings.Join(alternatives, "|") + `|)[,\s]*`)
}()

// ParseDuration parses a sequence of amounts and units, like "1y2mo3d4h5m6s" or "2 weeks, 3 days".
//
// Units may appear in any order and any number of times, and their contributions are added together.
// Unit names are case-insensitive, and accept abbreviations and plurals: y/year(s), mo/month(s), w/week(s), d/day(s), h/hr(s)/hour(s), m/min(s)/minute(s), and s/sec(s)/second(s).
// An amount without a unit is taken as seconds.
//
// Only whole amounts are supported.
// The parse fails with [ErrInvalidDuration] if the total is zero, an amount is too large, or the total overflows [time.Duration].
func ParseDuration(input string) (time.Duration, error) {
	var total time.Duration
	for _, match := range durationPattern.FindAllStringSubmatchIndex(input, -1) {
		amount, err := strconv.ParseInt(input[match[2]:match[3]], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: amount '%s' is out of range", ErrInvalidDuration, input[match[2]:match[3]])
		}
		if amount == 0 {
			continue
		}
		length := time.Second
		for i, unit := range durationUnits {
			if match[4+2*i] >= 0 {
				length = unit.length
				break
			}
		}
		if amount > math.MaxInt64/int64(length) {
			return 0, fmt.Errorf("%w: '%s' is too long", ErrInvalidDuration, input)
		}
		add := time.Duration(amount) * length
		if total > math.MaxInt64-add {
			return 0, fmt.Errorf("%w: '%s' is too long", ErrInvalidDuration, input)
		}
		total += add
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: unable to parse duration '%s'", ErrInvalidDuration, input)
	}
	return total, nil
}

// ParseDurationSafely is the non-failing form of [ParseDuration].
func ParseDurationSafely(input string) (time.Duration, bool) {
	d, err := ParseDuration(input)
	if err != nil {
		return 0, false
	}
	return d, true
}

// Durations is the [Strategy] for the duration grammar described by [ParseDuration].
var Durations = NewStrategy("duration", ParseDurationSafely)

// FormatDuration renders a duration in the form accepted by [ParseDuration], largest units first.
// Anything smaller than a second is dropped, and a zero duration is rendered as "0s".
func FormatDuration(d time.Duration) string {
	var buf strings.Builder
	if d < 0 {
		buf.WriteString("-")
		if d == math.MinInt64 {
			d = math.MaxInt64
		} else {
			d = -d
		}
	}
	d = d.Truncate(time.Second)
	if d == 0 {
		return "0s"
	}
	for _, unit := range durationUnits {
		if n := d / unit.length; n > 0 {
			buf.WriteString(strconv.FormatInt(int64(n), 10))
			buf.WriteString(unit.suffix)
			d -= n * unit.length
		}
	}
	return buf.String()
}
