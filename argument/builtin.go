package argument

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	// String passes the raw token through unchanged.
	String = NewStrategy("string", func(s string) (string, bool) {
		return s, true
	})
	// Bool accepts true, yes, and on, or false, no, and off, ignoring case.
	Bool = NewStrategy("bool", parseBool)
	// UUIDs parses a [uuid.UUID] in any of the forms accepted by [uuid.Parse].
	UUIDs = NewStrategy("uuid", func(s string) (uuid.UUID, bool) {
		id, err := uuid.Parse(s)
		return id, err == nil
	})
)

var (
	// TrueValues are the tokens that parse as true with [Bool] and [TriStates].
	TrueValues = []string{"true", "yes", "on"}
	// FalseValues are the tokens that parse as false with [Bool] and [TriStates].
	FalseValues = []string{"false", "no", "off"}
	// NotSetValues are the tokens that parse as [TriStateNotSet].
	NotSetValues = []string{"none", "null", "not_set", "notset", "unknown", "reset", "clear"}
)

func containsFold(vals []string, s string) bool {
	for _, val := range vals {
		if strings.EqualFold(val, s) {
			return true
		}
	}
	return false
}

func parseBool(s string) (bool, bool) {
	switch {
	case containsFold(TrueValues, s):
		return true, true
	case containsFold(FalseValues, s):
		return false, true
	default:
		return false, false
	}
}

// TriState is a boolean that may also be explicitly unset.
type TriState int

const (
	TriStateNotSet TriState = iota
	TriStateFalse
	TriStateTrue
)

func (t TriState) String() string {
	switch t {
	case TriStateTrue:
		return "true"
	case TriStateFalse:
		return "false"
	default:
		return "not_set"
	}
}

// Bool returns the boolean value, and false for the second value if it's [TriStateNotSet].
func (t TriState) Bool() (bool, bool) {
	switch t {
	case TriStateTrue:
		return true, true
	case TriStateFalse:
		return false, true
	default:
		return false, false
	}
}

// TriStates parses a [TriState], accepting the same tokens as [Bool] plus the [NotSetValues].
var TriStates = NewStrategy("tristate", func(s string) (TriState, bool) {
	if b, ok := parseBool(s); ok {
		if b {
			return TriStateTrue, true
		}
		return TriStateFalse, true
	}
	if containsFold(NotSetValues, s) {
		return TriStateNotSet, true
	}
	return TriStateNotSet, false
})

// IntRange is a closed range of integers, inclusive on both ends.
type IntRange struct {
	Start int
	End   int
}

func (r IntRange) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

// Len returns the number of integers in the range.
func (r IntRange) Len() int {
	return r.End - r.Start + 1
}

func (r IntRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Ranges parses an [IntRange] written as "<start>-<end>".
// Negative bounds can't be expressed, and a start greater than the end is rejected.
var Ranges = NewStrategy("range", func(s string) (IntRange, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return IntRange{}, false
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return IntRange{}, false
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return IntRange{}, false
	}
	if start > end {
		return IntRange{}, false
	}
	return IntRange{Start: start, End: end}, true
})

// DefaultNamespace is used for a [NamespacedKey] written without a namespace.
const DefaultNamespace = "minecraft"

var (
	namespacePattern = regexp.MustCompile(`^[a-z0-9._-]+$`)
	keyPattern       = regexp.MustCompile(`^[a-z0-9/._-]+$`)
)

// NamespacedKey is an identifier in the form "namespace:key".
type NamespacedKey struct {
	Namespace string
	Key       string
}

func (k NamespacedKey) String() string {
	return k.Namespace + ":" + k.Key
}

// NamespacedKeys parses a [NamespacedKey].
// Both parts must be lower case, and the namespace defaults to [DefaultNamespace] if it's omitted or empty.
var NamespacedKeys = NewStrategy("namespaced_key", func(s string) (NamespacedKey, bool) {
	namespace, key, found := strings.Cut(s, ":")
	if !found {
		namespace, key = "", s
	}
	if len(namespace) == 0 {
		namespace = DefaultNamespace
	}
	if !namespacePattern.MatchString(namespace) || !keyPattern.MatchString(key) {
		return NamespacedKey{}, false
	}
	return NamespacedKey{Namespace: namespace, Key: key}, true
})

// Enum creates a [Strategy] that looks values up by name, ignoring case.
// The map is copied, so later changes won't be reflected.
func Enum[T any](name string, values map[string]T) *Strategy[T] {
	lookup := make(map[string]T, len(values))
	for k, v := range values {
		lookup[strings.ToLower(k)] = v
	}
	return NewStrategy(name, func(s string) (T, bool) {
		val, ok := lookup[strings.ToLower(s)]
		return val, ok
	})
}

// Lookup creates a [Strategy] that resolves an identifier through an external directory, like a list of connected users.
// The function may return false to indicate that nothing was found.
// Panics in the function are recovered by [Strategy.Parse] and reported as a failed parse.
func Lookup[T any](name string, find func(id string) (T, bool)) *Strategy[T] {
	return NewStrategy(name, find)
}
