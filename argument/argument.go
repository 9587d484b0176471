package argument

import "fmt"

// Argument is a single positional token, identified by its index.
// The value may be absent if the index is past the end of the supplied tokens.
type Argument struct {
	index   int
	value   string
	present bool
}

// NewArgument creates an [Argument] with a value at the given index.
func NewArgument(index int, value string) Argument {
	return Argument{index: index, value: value, present: true}
}

// EmptyArgument creates an [Argument] with no value at the given index.
func EmptyArgument(index int) Argument {
	return Argument{index: index}
}

func (a Argument) Index() int {
	return a.index
}

// Value returns the raw token, and whether it was present.
func (a Argument) Value() (string, bool) {
	return a.value, a.present
}

func (a Argument) HasValue() bool {
	return a.present
}

func (a Argument) String() string {
	if !a.present {
		return fmt.Sprintf("#%d <absent>", a.index)
	}
	return fmt.Sprintf("#%d %q", a.index, a.value)
}

// Parse parses the [Argument] with the given [Strategy].
func Parse[T any](a Argument, strategy *Strategy[T]) (T, bool) {
	return strategy.ParseArg(a)
}

// ParseOrFail parses the [Argument] with the given [Strategy], returning [ErrMissingArgument] if that's not possible.
func ParseOrFail[T any](a Argument, strategy *Strategy[T]) (T, error) {
	return strategy.ParseArgOrFail(a)
}

// ParseWith parses the [Argument] using the first [Strategy] registered for T.
// False is returned if there is no such [Strategy], or if parsing fails.
func ParseWith[T any](a Argument, reg *Registry) (T, bool) {
	strategy, ok := Find[T](reg)
	if !ok {
		var zero T
		return zero, false
	}
	return strategy.ParseArg(a)
}

// ParseWithOrFail parses the [Argument] using the first [Strategy] registered for T.
// An error wrapping [ErrNoParser] is returned if nothing is registered for T, otherwise parse failures are reported with [ErrMissingArgument].
func ParseWithOrFail[T any](a Argument, reg *Registry) (T, error) {
	strategy, ok := Find[T](reg)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNoParser, KeyOf[T]())
	}
	return strategy.ParseArgOrFail(a)
}
