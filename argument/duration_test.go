package argument

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected time.Duration
	}{
		"Compact":          {input: "1y2mo3d4h5m6s", expected: Year + 2*Month + 3*Day + 4*time.Hour + 5*time.Minute + 6*time.Second},
		"Long form":        {input: "2 weeks, 3 days", expected: 2*Week + 3*Day},
		"Mixed case":       {input: "1Hour 30MINS", expected: 90 * time.Minute},
		"Any order":        {input: "6s5m4h", expected: 4*time.Hour + 5*time.Minute + 6*time.Second},
		"Repeated units":   {input: "1h 1h 30m", expected: 2*time.Hour + 30*time.Minute},
		"Bare seconds":     {input: "90", expected: 90 * time.Second},
		"Month not minute": {input: "1mo", expected: Month},
		"Minutes":          {input: "3min", expected: 3 * time.Minute},
		"Hours":            {input: "2hrs", expected: 2 * time.Hour},
		"Seconds words":    {input: "10 seconds", expected: 10 * time.Second},
		"Years word":       {input: "1 year", expected: Year},
		"Zero ignored":     {input: "0h5m", expected: 5 * time.Minute},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := ParseDuration(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d)
		})
	}
}

func TestParseDuration_Rejected(t *testing.T) {
	for _, input := range []string{"", "0", "0s", "0h0m", "abc", "h", "days", "99999999999999999999s", "400y"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := ParseDuration(input)
			assert.ErrorIs(t, err, ErrInvalidDuration)
			_, ok := ParseDurationSafely(input)
			assert.False(t, ok)
		})
	}
}

func TestDuration_Constants(t *testing.T) {
	assert.Equal(t, 31_556_952*time.Second, Year)
	assert.Equal(t, 2_629_746*time.Second, Month)
	assert.Equal(t, 604_800*time.Second, Week)
}

func TestDuration_RoundTrip(t *testing.T) {
	type component struct {
		suffix string
		length time.Duration
	}
	components := []component{
		{"y", Year}, {"mo", Month}, {"w", Week}, {"d", Day},
		{"h", time.Hour}, {"m", time.Minute}, {"s", time.Second},
	}
	separators := []string{"", " ", ", ", ","}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		var (
			parts    []string
			expected time.Duration
		)
		rng.Shuffle(len(components), func(a, b int) {
			components[a], components[b] = components[b], components[a]
		})
		for _, c := range components {
			n := rng.Intn(4)
			expected += time.Duration(n) * c.length
			parts = append(parts, fmt.Sprintf("%d%s", n, c.suffix))
		}
		if expected == 0 {
			continue
		}
		input := strings.Join(parts, separators[rng.Intn(len(separators))])
		d, err := ParseDuration(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, d, input)
	}
}

func TestFormatDuration(t *testing.T) {
	d := Year + 2*Month + 3*Day + 4*time.Hour + 5*time.Minute + 6*time.Second
	assert.Equal(t, "1y2mo3d4h5m6s", FormatDuration(d))
	assert.Equal(t, "1w1d", FormatDuration(8*Day))
	assert.Equal(t, "0s", FormatDuration(500*time.Millisecond))
	assert.Equal(t, "-1m", FormatDuration(-time.Minute))

	for _, input := range []string{"1y2mo3d4h5m6s", "17w", "45s", "3d12h"} {
		parsed, err := ParseDuration(input)
		require.NoError(t, err)
		reparsed, err := ParseDuration(FormatDuration(parsed))
		require.NoError(t, err)
		assert.Equal(t, parsed, reparsed)
	}
}

func ExampleParseDuration() {
	d, err := ParseDuration("1d 12h")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d)
	fmt.Println(FormatDuration(d))

	_, err = ParseDuration("0s")
	fmt.Println(err)

	// Output:
	// 36h0m0s
	// 1d12h
	// invalid duration: unable to parse duration '0s'
}
