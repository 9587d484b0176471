package command

import "github.com/google/uuid"

// Sender is the identity that issued a command.
// Permission checks and message delivery are delegated to it.
type Sender interface {
	Name() string
	HasPermission(permission string) bool
	// SendMessage delivers the message to the sender without waiting for acknowledgement.
	SendMessage(msg Message)
}

// Player is a [Sender] representing a user with a stable identity.
type Player interface {
	Sender
	UUID() uuid.UUID
}

// Console is a [Sender] representing the host's operator console.
type Console interface {
	Sender
	// Console is a marker method distinguishing a console from other senders.
	Console()
}
