package argument

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Number is the result of locale-aware number parsing, which may be either integral or fractional.
type Number float64

// IsInteger reports whether the [Number] has no fractional part.
func (n Number) IsInteger() bool {
	f := float64(n)
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// Int64 truncates the [Number] to an int64.
func (n Number) Int64() int64 {
	return int64(n)
}

func (n Number) Float64() float64 {
	return float64(n)
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Numbers parses numbers formatted for American English, like "1,234.5".
var Numbers = NumberParser(language.AmericanEnglish)

// NumberParser creates a lenient [Strategy] for numbers formatted for the given locale.
// Grouping separators are ignored in the integer part, and parsing stops at the first character that can't be part of a number, so "12abc" parses as 12.
// Input that doesn't start with a number is rejected.
func NumberParser(tag language.Tag) *Strategy[Number] {
	group, decimal := separators(tag)
	return NewStrategy("number("+tag.String()+")", func(s string) (Number, bool) {
		return parseLocalized(s, group, decimal)
	})
}

// separators finds the grouping and decimal separators for the locale by formatting a known value.
func separators(tag language.Tag) (group, decimal rune) {
	group, decimal = ',', '.'
	formatted := []rune(message.NewPrinter(tag).Sprintf("%.1f", 1234.5))
	if len(formatted) < 3 {
		return group, decimal
	}
	last := len(formatted) - 1
	if isSeparator(formatted[last-1]) {
		decimal = formatted[last-1]
	}
	group = 0
	for i := 1; i < last-1; i++ {
		if isSeparator(formatted[i]) {
			group = formatted[i]
			break
		}
	}
	if group == decimal {
		group = 0
	}
	return group, decimal
}

func isSeparator(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r)
}

func parseLocalized(s string, group, decimal rune) (Number, bool) {
	var (
		buf         strings.Builder
		digits      int
		seenDecimal bool
		runes       = []rune(s)
		i           int
	)
	if len(runes) > 0 && (runes[0] == '-' || runes[0] == '+') {
		if runes[0] == '-' {
			buf.WriteRune('-')
		}
		i++
	}
scan:
	for ; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r >= '0' && r <= '9':
			buf.WriteRune(r)
			digits++
		case group != 0 && r == group && !seenDecimal && digits > 0:
			continue
		case r == decimal && !seenDecimal:
			seenDecimal = true
			buf.WriteRune('.')
		default:
			break scan
		}
	}
	if digits == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(buf.String(), "."), 64)
	if err != nil {
		return 0, false
	}
	return Number(f), true
}

var (
	// Int parses a base 10 int.
	Int = NewStrategy("int", func(s string) (int, bool) {
		i, err := strconv.ParseInt(s, 10, 0)
		return int(i), err == nil
	})
	// Int32 parses a base 10, 32-bit integer.
	Int32 = NewStrategy("int32", func(s string) (int32, bool) {
		i, err := strconv.ParseInt(s, 10, 32)
		return int32(i), err == nil
	})
	// Int64 parses a base 10, 64-bit integer.
	Int64 = NewStrategy("int64", func(s string) (int64, bool) {
		i, err := strconv.ParseInt(s, 10, 64)
		return i, err == nil
	})
	// Int8 parses a signed byte.
	Int8 = NewStrategy("int8", func(s string) (int8, bool) {
		i, err := strconv.ParseInt(s, 10, 8)
		return int8(i), err == nil
	})
	// Float32 parses a single precision float, rejecting values that are out of range.
	Float32 = NewStrategy("float32", func(s string) (float32, bool) {
		f, err := strconv.ParseFloat(s, 32)
		return float32(f), err == nil
	})
	// Float64 parses a double precision float, rejecting values that are out of range.
	Float64 = NewStrategy("float64", func(s string) (float64, bool) {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	})
)
