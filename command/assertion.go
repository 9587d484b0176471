package command

import "errors"

const defaultAssertionText = "command failed an assertion"

// AssertionError is the signal raised when a handler's assertion fails.
// It's panicked by [Abort], and recovered by [Catch] at the dispatch boundary.
type AssertionError struct {
	msg Message
}

func (e *AssertionError) Error() string {
	if e.msg == nil {
		return defaultAssertionText
	}
	return e.msg.PlainText()
}

// Message returns the failure message given to the assertion, which may be nil.
func (e *AssertionError) Message() Message {
	return e.msg
}

func (e *AssertionError) Is(err error) bool {
	_, ok := err.(*AssertionError)
	return ok
}

// Abort stops the current handler by panicking with an [*AssertionError].
// It doesn't send anything, so callers that want the sender to see msg should reply first.
func Abort(msg Message) {
	panic(&AssertionError{msg: msg})
}

// Catch runs fn, recovering an [*AssertionError] and returning it as an error.
// Any other panic is propagated.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if aerr, ok := r.(*AssertionError); ok {
			err = aerr
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

// IsAssertion reports whether err is, or wraps, an [*AssertionError].
func IsAssertion(err error) bool {
	return errors.Is(err, &AssertionError{})
}
