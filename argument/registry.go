package argument

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// KeyOf returns the key that strategies producing T are registered under.
func KeyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Registry maps a target type to an ordered list of strategies that can produce it.
// It's safe for concurrent use, although registration is expected to happen during start up.
//
// Use [Register], [Find], and [FindAll] for type safe access, or the Lookup methods when the type is only known at runtime.
type Registry struct {
	mux     sync.RWMutex
	parsers map[reflect.Type][]Parser
}

// NewRegistry creates an empty [Registry].
// Use [NewDefaultRegistry] to start with the built-in strategies.
func NewRegistry() *Registry {
	return &Registry{parsers: map[reflect.Type][]Parser{}}
}

// Register appends the [Strategy] to the list for T, unless it's already present.
func Register[T any](reg *Registry, strategy *Strategy[T]) *Registry {
	if strategy == nil {
		panic("nil strategy")
	}
	return reg.RegisterParser(strategy)
}

// RegisterParser appends the [Parser] to the list for its [Parser.Type], unless it's already present.
func (r *Registry) RegisterParser(parser Parser) *Registry {
	if parser == nil {
		panic("nil parser")
	}
	key := parser.Type()
	r.mux.Lock()
	defer r.mux.Unlock()
	if r.parsers == nil {
		r.parsers = map[reflect.Type][]Parser{}
	}
	current := r.parsers[key]
	if reflect.TypeOf(parser).Comparable() && slices.Contains(current, parser) {
		return r
	}
	// Readers may hold the old slice, so it's never appended in place.
	next := make([]Parser, len(current), len(current)+1)
	copy(next, current)
	r.parsers[key] = append(next, parser)
	return r
}

// Find returns the first [Strategy] registered for T.
func Find[T any](reg *Registry) (*Strategy[T], bool) {
	parser, ok := reg.Lookup(KeyOf[T]())
	if !ok {
		return nil, false
	}
	strategy, ok := parser.(*Strategy[T])
	return strategy, ok
}

// FindAll returns every [Strategy] registered for T in registration order.
func FindAll[T any](reg *Registry) []*Strategy[T] {
	parsers := reg.LookupAll(KeyOf[T]())
	if len(parsers) == 0 {
		return nil
	}
	strategies := make([]*Strategy[T], 0, len(parsers))
	for _, parser := range parsers {
		if strategy, ok := parser.(*Strategy[T]); ok {
			strategies = append(strategies, strategy)
		}
	}
	return strategies
}

// Lookup returns the first [Parser] registered for the key.
func (r *Registry) Lookup(key reflect.Type) (Parser, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	parsers := r.parsers[key]
	if len(parsers) == 0 {
		return nil, false
	}
	return parsers[0], true
}

// MustLookup is like [Registry.Lookup], but panics with an error wrapping [ErrNoParser] if nothing is registered.
// A missing parser is a programming error, so it shouldn't be confused with bad user input.
func (r *Registry) MustLookup(key reflect.Type) Parser {
	parser, ok := r.Lookup(key)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrNoParser, key))
	}
	return parser
}

// LookupAll returns all parsers registered for the key, in registration order.
func (r *Registry) LookupAll(key reflect.Type) []Parser {
	r.mux.RLock()
	defer r.mux.RUnlock()
	parsers := r.parsers[key]
	if len(parsers) == 0 {
		return nil
	}
	return slices.Clone(parsers)
}

// Keys returns each type with at least one registered [Parser], sorted by type name.
func (r *Registry) Keys() []reflect.Type {
	r.mux.RLock()
	defer r.mux.RUnlock()
	keys := make([]reflect.Type, 0, len(r.parsers))
	for key, parsers := range r.parsers {
		if len(parsers) > 0 {
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}
