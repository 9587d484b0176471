package argument

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestInt32(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected int32
		ok       bool
	}{
		"Positive":     {input: "42", expected: 42, ok: true},
		"Negative":     {input: "-42", expected: -42, ok: true},
		"Plus sign":    {input: "+7", expected: 7, ok: true},
		"Max":          {input: "2147483647", expected: math.MaxInt32, ok: true},
		"Overflow":     {input: "2147483648"},
		"Fraction":     {input: "12.5"},
		"Empty":        {input: ""},
		"Letters":      {input: "abc"},
		"Leading junk": {input: " 12"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			val, ok := Int32.Parse(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, val)
		})
	}
}

func TestStrictNumbers(t *testing.T) {
	_, ok := Int8.Parse("128")
	assert.False(t, ok, "Out of range for a signed byte")
	b, ok := Int8.Parse("-128")
	assert.True(t, ok)
	assert.Equal(t, int8(-128), b)

	l, ok := Int64.Parse("9223372036854775807")
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), l)

	_, ok = Int.Parse("1e3")
	assert.False(t, ok)

	f, ok := Float32.Parse("1.5")
	assert.True(t, ok)
	assert.Equal(t, float32(1.5), f)
	_, ok = Float32.Parse("1e39")
	assert.False(t, ok, "Out of range for float32")

	d, ok := Float64.Parse("-0.25")
	assert.True(t, ok)
	assert.Equal(t, -0.25, d)
	_, ok = Float64.Parse("1,5")
	assert.False(t, ok)
}

func TestNumbers(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected Number
		ok       bool
	}{
		"Integer":         {input: "1234", expected: 1234, ok: true},
		"Grouped":         {input: "1,234", expected: 1234, ok: true},
		"Decimal":         {input: "1,234.5", expected: 1234.5, ok: true},
		"Negative":        {input: "-0.5", expected: -0.5, ok: true},
		"Leading decimal": {input: ".5", expected: 0.5, ok: true},
		"Trailing junk":   {input: "12abc", expected: 12, ok: true},
		"Trailing dot":    {input: "12.", expected: 12, ok: true},
		"Not a number":    {input: "abc"},
		"Sign only":       {input: "-"},
		"Empty":           {input: ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			val, ok := Numbers.Parse(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, val)
		})
	}
}

func TestNumberParser_German(t *testing.T) {
	german := NumberParser(language.German)
	val, ok := german.Parse("1.234,5")
	assert.True(t, ok)
	assert.Equal(t, Number(1234.5), val)
	assert.False(t, val.IsInteger())

	val, ok = german.Parse("3,0")
	assert.True(t, ok)
	assert.True(t, val.IsInteger())
	assert.Equal(t, int64(3), val.Int64())
}

func TestNumber_String(t *testing.T) {
	assert.Equal(t, "1234.5", Number(1234.5).String())
	assert.Equal(t, "7", Number(7).String())
	assert.False(t, Number(math.Inf(1)).IsInteger())
}
