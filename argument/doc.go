/*
Package argument resolves raw command tokens into typed values.

A [Strategy] is a named, non-panicking conversion from a string to a value of some type.
Strategies are collected in a [Registry], keyed by the Go type they produce, so that callers can ask for "an int" or "a [time.Duration]" without knowing which function does the work.

# Registries

There is no global registry.
An application creates one at startup, usually with [NewDefaultRegistry], registers any host-specific strategies, and passes it to whatever needs to resolve arguments.

	reg := argument.NewDefaultRegistry()
	argument.Register(reg, argument.Lookup("world", worlds.ByName))

More than one strategy may be registered for a type.
[Find] always returns the first one registered, so registration order is the tie-break.
Registering the same *[Strategy] twice has no effect.

# Strategy contract

Strategies never panic, and they report failure with a false second return value.
An empty string is never a valid input, regardless of the target type.
Code that requires a value should use [Strategy.ParseOrFail] or [Strategy.ParseArgOrFail], which report [ErrMissingArgument].

# Durations

[ParseDuration] understands compact human durations like "1y2mo3d4h5m6s" or "2 weeks, 3 days".
Months and years are nominal: a year is 365.2425 days and a month is a twelfth of that.
A duration that adds up to zero is rejected.
*/
package argument
