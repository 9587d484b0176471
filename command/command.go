package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saylorsolutions/cmdctx/argument"
)

// UsagePlaceholder is replaced in a [Command.UsageMessage] with the full usage string, like "/give <player> [amount]".
const UsagePlaceholder = "{usage}"

// Handler runs a command.
// It may stop early by failing an assertion on the [Context].
type Handler func(ctx *Context)

// TabHandler suggests completions for the last token.
type TabHandler func(ctx *Context) []string

// Command is the definition of a command that a host can dispatch to.
type Command struct {
	Name string

	// Description is a short, human readable summary shown in help output.
	Description string

	// Usage describes the positional arguments, like "<player> [amount]".
	// Parts that are wrapped in square brackets are optional, and everything else is required.
	Usage string

	// Permission is checked before the handler runs, if it's not empty.
	Permission string

	// OptionPrefix overrides [DefaultOptionPrefix] for contexts created by this command.
	OptionPrefix string

	// UsageMessage is sent if fewer than the required arguments are given.
	UsageMessage Message

	// PermissionMessage is sent if the sender doesn't have the Permission.
	PermissionMessage Message

	Handler    Handler
	TabHandler TabHandler

	// OnAssertionFailure is called after the handler is aborted by a failed assertion.
	OnAssertionFailure func(ctx *Context, err *AssertionError)
}

// RequiredArgs returns the number of required parts in the Usage string.
func (c *Command) RequiredArgs() int {
	var required int
	for _, part := range strings.Fields(c.Usage) {
		if !strings.HasPrefix(part, "[") && !strings.HasSuffix(part, "]") {
			required++
		}
	}
	return required
}

// FullUsage returns the usage string as the sender would type it.
// The label is the name used to invoke the command, which may be an alias, and defaults to the Name.
func (c *Command) FullUsage(label string) string {
	if len(label) == 0 {
		label = c.Name
	}
	if len(c.Usage) == 0 {
		return "/" + label
	}
	return "/" + label + " " + c.Usage
}

// Execute is the dispatch boundary for a [Command].
//
// The sender's permission is checked first, followed by the number of positional arguments.
// If either fails, the relevant message is sent and an error wrapping [ErrPermissionDenied] or [ErrUsage] is returned without running the handler.
//
// A failed assertion in the handler is recovered, passed to OnAssertionFailure, and returned as an [*AssertionError].
// Any other panic is propagated.
func (c *Command) Execute(reg *argument.Registry, sender Sender, label string, tokens []string) error {
	if len(label) == 0 {
		label = c.Name
	}
	if len(c.Permission) > 0 && !sender.HasPermission(c.Permission) {
		if c.PermissionMessage != nil {
			sender.SendMessage(c.PermissionMessage)
		}
		return fmt.Errorf("%w: %s requires '%s'", ErrPermissionDenied, label, c.Permission)
	}
	ctx := NewContext(reg, sender, c, tokens)
	if required := c.RequiredArgs(); ctx.NArgs() < required {
		if c.UsageMessage != nil {
			sender.SendMessage(replaceText(c.UsageMessage, UsagePlaceholder, c.FullUsage(label)))
		}
		return fmt.Errorf("%w: %s requires %d argument(s), got %d", ErrUsage, label, required, ctx.NArgs())
	}
	if c.Handler == nil {
		return nil
	}
	err := Catch(func() {
		c.Handler(ctx)
	})
	if err != nil {
		var aerr *AssertionError
		if errors.As(err, &aerr) && c.OnAssertionFailure != nil {
			c.OnAssertionFailure(ctx, aerr)
		}
		return err
	}
	return nil
}

// Complete is the tab completion entry point for a [Command].
// It returns nil if there is no TabHandler.
// A failed assertion in the TabHandler also results in no suggestions.
func (c *Command) Complete(reg *argument.Registry, sender Sender, tokens []string) []string {
	if c.TabHandler == nil {
		return nil
	}
	var suggestions []string
	_ = Catch(func() {
		suggestions = c.TabHandler(NewContext(reg, sender, c, tokens))
	})
	return suggestions
}

// Validate checks the [Command] for configuration mistakes.
// Each problem is reported as an error wrapping [ErrInvalidCommand].
func (c *Command) Validate() error {
	var errs []error
	if len(strings.TrimSpace(c.Name)) == 0 {
		errs = append(errs, fmt.Errorf("%w: missing name", ErrInvalidCommand))
	} else if strings.ContainsAny(c.Name, " \t\r\n") {
		errs = append(errs, fmt.Errorf("%w: name '%s' contains whitespace", ErrInvalidCommand, c.Name))
	}
	if c.Handler == nil {
		errs = append(errs, fmt.Errorf("%w: %s has no handler", ErrInvalidCommand, c.Name))
	}
	for _, part := range strings.Fields(c.Usage) {
		if strings.HasPrefix(part, "[") != strings.HasSuffix(part, "]") ||
			strings.HasPrefix(part, "<") != strings.HasSuffix(part, ">") {
			errs = append(errs, fmt.Errorf("%w: unbalanced usage part '%s'", ErrInvalidCommand, part))
		}
	}
	return errors.Join(errs...)
}
