package argument

import "errors"

var (
	// ErrMissingArgument is reported when a required argument is absent or can't be parsed.
	ErrMissingArgument = errors.New("argument missing")
	// ErrNoParser indicates a configuration bug: nothing was registered for the requested type.
	ErrNoParser = errors.New("no argument parser registered")
	// ErrInvalidDuration is returned by ParseDuration for malformed or zero-length input.
	ErrInvalidDuration = errors.New("invalid duration")
)
