package argument

import (
	"fmt"
	"reflect"
)

// Parser is the untyped view of a [Strategy].
// It's used where the target type is only known at runtime, such as when validating an argument against a [reflect.Type].
type Parser interface {
	Name() string
	Type() reflect.Type
	ParseAny(s string) (any, bool)
}

var _ Parser = (*Strategy[int])(nil)

// Strategy is a named conversion from a raw string to a value of type T.
// A *Strategy is compared by identity when registered with a [Registry].
type Strategy[T any] struct {
	name string
	fn   func(string) (T, bool)
}

// NewStrategy creates a [Strategy] from a parsing function.
// The function doesn't need to handle empty input, since [Strategy.Parse] rejects it before fn is called.
//
// Passing a nil function will panic.
func NewStrategy[T any](name string, fn func(s string) (T, bool)) *Strategy[T] {
	if fn == nil {
		panic("nil strategy function")
	}
	return &Strategy[T]{name: name, fn: fn}
}

func (s *Strategy[T]) Name() string {
	return s.name
}

// Type returns the key this [Strategy] is registered under.
func (s *Strategy[T]) Type() reflect.Type {
	return KeyOf[T]()
}

func (s *Strategy[T]) String() string {
	return fmt.Sprintf("%s(%s)", s.name, s.Type())
}

// Parse converts the string to a T.
// False is returned for empty input, and when the underlying function fails or panics.
func (s *Strategy[T]) Parse(raw string) (val T, ok bool) {
	var zero T
	if len(raw) == 0 {
		return zero, false
	}
	defer func() {
		if r := recover(); r != nil {
			val, ok = zero, false
		}
	}()
	val, ok = s.fn(raw)
	if !ok {
		return zero, false
	}
	return val, true
}

// ParseAny satisfies [Parser].
func (s *Strategy[T]) ParseAny(raw string) (any, bool) {
	val, ok := s.Parse(raw)
	if !ok {
		return nil, false
	}
	return val, true
}

// ParseArg parses the value of the [Argument], returning false if it has none.
func (s *Strategy[T]) ParseArg(a Argument) (T, bool) {
	raw, ok := a.Value()
	if !ok {
		var zero T
		return zero, false
	}
	return s.Parse(raw)
}

// ParseOrFail is like [Strategy.Parse], but reports failure as an error wrapping [ErrMissingArgument].
func (s *Strategy[T]) ParseOrFail(raw string) (T, error) {
	val, ok := s.Parse(raw)
	if !ok {
		return val, fmt.Errorf("%w: argument '%s' is missing", ErrMissingArgument, raw)
	}
	return val, nil
}

// ParseArgOrFail is like [Strategy.ParseArg], but reports failure as an error wrapping [ErrMissingArgument].
// The error refers to the index if the [Argument] has no value, or the raw value otherwise.
func (s *Strategy[T]) ParseArgOrFail(a Argument) (T, error) {
	raw, ok := a.Value()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: argument %d is missing", ErrMissingArgument, a.Index())
	}
	return s.ParseOrFail(raw)
}
