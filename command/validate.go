package command

import "github.com/saylorsolutions/cmdctx/argument"

// parse uses the first parser registered for T, panicking if there is none.
func parse[T any](c *Context, raw string) (T, bool) {
	var zero T
	val, ok := c.registry.MustLookup(argument.KeyOf[T]()).ParseAny(raw)
	if !ok {
		return zero, false
	}
	typed, ok := val.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// IsArgument reports whether the argument at index i can be parsed as a T.
// Like [Context.IsArgument], it panics if nothing is registered for T.
func IsArgument[T any](c *Context, i int) bool {
	raw, _ := c.RawArg(i)
	_, ok := parse[T](c, raw)
	return ok
}

// ValidateArgument parses the argument at index i as a T.
// If that's not possible, then failureMessage is sent if it's not nil, and the handler is aborted.
//
// This panics with an error wrapping [argument.ErrNoParser] if nothing is registered for T.
func ValidateArgument[T any](c *Context, i int, failureMessage Message) T {
	raw, _ := c.RawArg(i)
	val, ok := parse[T](c, raw)
	if !ok {
		c.Reply(failureMessage)
		Abort(failureMessage)
	}
	return val
}

// ValidateArgumentFunc is like [ValidateArgument], but builds the failure message from the raw argument.
// The function isn't called if the argument is absent, and nothing is sent if it returns nil.
// Either way, the handler is aborted without a message in the [*AssertionError].
func ValidateArgumentFunc[T any](c *Context, i int, failureMessage func(raw Message) Message) T {
	raw, present := c.RawArg(i)
	val, ok := parse[T](c, raw)
	if ok {
		return val
	}
	if failureMessage != nil && present {
		c.Reply(failureMessage(Text(raw)))
	}
	Abort(nil)
	return val
}

// AssertArgument asserts that the argument at index i can be parsed as a T.
func AssertArgument[T any](c *Context, i int, failureMessage Message) *Context {
	return c.Assertion(IsArgument[T](c, i), failureMessage)
}

// OptionalArgument parses the argument at index i as a T, returning fallback if there is no such argument.
// An argument that is present but can't be parsed aborts the handler like [ValidateArgument].
func OptionalArgument[T any](c *Context, i int, fallback T, failureMessage Message) T {
	if _, ok := c.RawArg(i); !ok {
		return fallback
	}
	return ValidateArgument[T](c, i, failureMessage)
}
