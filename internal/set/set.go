// Package set provides the string-keyed set used to hold command options.
package set

import (
	"cmp"
	"slices"
)

// Set formalizes set semantics for a map with empty values.
type Set[T comparable] map[T]struct{}

// New creates a new [Set] from the given values.
// Duplicate values collapse into one entry.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts one or more values, allocating the [Set] if it's nil.
func (s Set[T]) Add(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	s[val] = struct{}{}
	for _, v := range others {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// HasAll determines if all given values are present in the [Set].
// If the parameter list is empty, then false is returned.
func (s Set[T]) HasAll(values ...T) bool {
	if len(s) == 0 || len(values) == 0 {
		return false
	}
	for _, value := range values {
		if !s.Has(value) {
			return false
		}
	}
	return true
}

func (s Set[T]) Len() int {
	return len(s)
}

// Copy returns an independent [Set] holding the same values.
func (s Set[T]) Copy() Set[T] {
	cp := make(Set[T], len(s))
	for v := range s {
		cp[v] = struct{}{}
	}
	return cp
}

// Sorted returns the values of the [Set] in ascending order.
// A nil or empty [Set] results in a nil slice.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	if len(s) == 0 {
		return nil
	}
	vals := make([]T, 0, len(s))
	for v := range s {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	return vals
}
