package command

import (
	"fmt"
	"strings"
)

// Message is an opaque reply sent to a [Sender].
// The only thing this package needs from a message is a plain text rendering for error strings.
// A nil Message means there's nothing to send.
type Message interface {
	PlainText() string
}

// Replacer is implemented by messages that support literal text replacement.
type Replacer interface {
	ReplaceText(literal, replacement string) Message
}

type textMessage string

var (
	_ Message  = textMessage("")
	_ Replacer = textMessage("")
)

// Text creates a plain [Message] from a format string.
func Text(format string, args ...any) Message {
	if len(args) == 0 {
		return textMessage(format)
	}
	return textMessage(fmt.Sprintf(format, args...))
}

func (m textMessage) PlainText() string {
	return string(m)
}

func (m textMessage) String() string {
	return string(m)
}

func (m textMessage) ReplaceText(literal, replacement string) Message {
	return textMessage(strings.ReplaceAll(string(m), literal, replacement))
}

// replaceText replaces literal text in the [Message] if it supports it.
func replaceText(msg Message, literal, replacement string) Message {
	if r, ok := msg.(Replacer); ok {
		return r.ReplaceText(literal, replacement)
	}
	return msg
}
