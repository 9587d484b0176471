package command

import (
	"reflect"
	"strings"

	"github.com/saylorsolutions/cmdctx/argument"
	"github.com/saylorsolutions/cmdctx/internal/set"
)

// DefaultOptionPrefix marks a token as an option rather than a positional argument.
const DefaultOptionPrefix = "-"

// ContextOption customizes a [Context] as it's created.
type ContextOption func(c *Context)

// WithOptionPrefix sets the prefix used to recognize options.
// An empty prefix disables option extraction, so every token is positional.
func WithOptionPrefix(prefix string) ContextOption {
	return func(c *Context) {
		c.prefix = prefix
	}
}

// Context is the state of a single command invocation.
// It's not safe for concurrent use, and shouldn't outlive the handler it's passed to.
type Context struct {
	registry *argument.Registry
	sender   Sender
	command  *Command
	tokens   []string
	prefix   string
	args     []string
	options  set.Set[string]
}

// NewContext creates a [Context] for the given sender and tokens.
// The tokens are partitioned into options and positional arguments immediately.
//
// Passing a nil registry or sender will panic.
func NewContext(reg *argument.Registry, sender Sender, cmd *Command, tokens []string, opts ...ContextOption) *Context {
	if reg == nil {
		panic("nil registry")
	}
	if sender == nil {
		panic("nil sender")
	}
	c := &Context{
		registry: reg,
		sender:   sender,
		command:  cmd,
		tokens:   append([]string(nil), tokens...),
		prefix:   DefaultOptionPrefix,
	}
	if cmd != nil && len(cmd.OptionPrefix) > 0 {
		c.prefix = cmd.OptionPrefix
	}
	for _, opt := range opts {
		opt(c)
	}
	c.partition()
	return c
}

func (c *Context) partition() {
	c.args = make([]string, 0, len(c.tokens))
	c.options = set.New[string]()
	for _, token := range c.tokens {
		if len(c.prefix) > 0 && strings.HasPrefix(token, c.prefix) {
			c.options.Add(strings.TrimPrefix(token, c.prefix))
			continue
		}
		c.args = append(c.args, token)
	}
}

// SetOptionPrefix changes the option prefix, and partitions the original tokens again.
func (c *Context) SetOptionPrefix(prefix string) *Context {
	c.prefix = prefix
	c.partition()
	return c
}

func (c *Context) OptionPrefix() string {
	return c.prefix
}

func (c *Context) Sender() Sender {
	return c.sender
}

// Command returns the [Command] that created this [Context], which may be nil.
func (c *Context) Command() *Command {
	return c.command
}

func (c *Context) Registry() *argument.Registry {
	return c.registry
}

// Tokens returns a copy of the tokens the [Context] was created with, including options.
func (c *Context) Tokens() []string {
	return append([]string(nil), c.tokens...)
}

// RawArgs returns a copy of the positional arguments, in their original order.
func (c *Context) RawArgs() []string {
	return append([]string(nil), c.args...)
}

// NArgs returns the number of positional arguments.
func (c *Context) NArgs() int {
	return len(c.args)
}

// RawArg returns the positional argument at index i, if there is one.
func (c *Context) RawArg(i int) (string, bool) {
	if i < 0 || i >= len(c.args) {
		return "", false
	}
	return c.args[i], true
}

// Arg returns the [argument.Argument] at index i.
// This never fails: the argument has no value if i is out of range.
func (c *Context) Arg(i int) argument.Argument {
	if raw, ok := c.RawArg(i); ok {
		return argument.NewArgument(i, raw)
	}
	return argument.EmptyArgument(i)
}

// ArgOpt is like [Context.Arg], but returns false if i is out of range.
func (c *Context) ArgOpt(i int) (argument.Argument, bool) {
	raw, ok := c.RawArg(i)
	if !ok {
		return argument.Argument{}, false
	}
	return argument.NewArgument(i, raw), true
}

// Args returns an [argument.Argument] for each positional argument.
func (c *Context) Args() []argument.Argument {
	args := make([]argument.Argument, len(c.args))
	for i, raw := range c.args {
		args[i] = argument.NewArgument(i, raw)
	}
	return args
}

// Options returns the options, with the prefix removed, in sorted order.
func (c *Context) Options() []string {
	return set.Sorted(c.options)
}

func (c *Context) HasOption(name string) bool {
	return c.options.Has(name)
}

// Reply sends a message to the [Sender].
// A nil message isn't sent.
func (c *Context) Reply(msg Message) *Context {
	if msg != nil {
		c.sender.SendMessage(msg)
	}
	return c
}

func (c *Context) HasPermission(permission string) bool {
	return c.sender.HasPermission(permission)
}

func (c *Context) IsPlayer() bool {
	_, ok := c.sender.(Player)
	return ok
}

func (c *Context) IsConsole() bool {
	_, ok := c.sender.(Console)
	return ok
}

// IsArgument reports whether the argument at index i can be parsed as the given type.
// An absent argument is parsed as an empty string, which always fails.
//
// This panics with an error wrapping [argument.ErrNoParser] if nothing is registered for the type.
func (c *Context) IsArgument(i int, key reflect.Type) bool {
	raw, _ := c.RawArg(i)
	_, ok := c.registry.MustLookup(key).ParseAny(raw)
	return ok
}

// Assertion returns the [Context] if result is true.
// Otherwise, failureMessage is sent to the [Sender] if it's not nil, and the handler is aborted with an [*AssertionError].
func (c *Context) Assertion(result bool, failureMessage Message) *Context {
	if result {
		return c
	}
	c.Reply(failureMessage)
	Abort(failureMessage)
	return nil
}

// AssertPermission asserts that the [Sender] has the permission.
func (c *Context) AssertPermission(permission string, failureMessage Message) *Context {
	return c.Assertion(c.HasPermission(permission), failureMessage)
}

// AssertSender asserts that the [Sender] has the same concrete type as other.
func (c *Context) AssertSender(other Sender, failureMessage Message) *Context {
	return c.Assertion(reflect.TypeOf(c.sender) == reflect.TypeOf(other), failureMessage)
}

// AssertArgument asserts that the argument at index i can be parsed as the given type.
func (c *Context) AssertArgument(i int, key reflect.Type, failureMessage Message) *Context {
	return c.Assertion(c.IsArgument(i, key), failureMessage)
}

// AssertPlayer asserts that the [Sender] is a [Player], returning a view of the [Context] that exposes it.
func (c *Context) AssertPlayer(failureMessage Message) *PlayerContext {
	player, ok := c.sender.(Player)
	c.Assertion(ok, failureMessage)
	return &PlayerContext{Context: c, player: player}
}

// AssertConsole asserts that the [Sender] is a [Console], returning a view of the [Context] that exposes it.
func (c *Context) AssertConsole(failureMessage Message) *ConsoleContext {
	console, ok := c.sender.(Console)
	c.Assertion(ok, failureMessage)
	return &ConsoleContext{Context: c, console: console}
}

// PlayerContext is a [Context] whose [Sender] is known to be a [Player].
type PlayerContext struct {
	*Context
	player Player
}

func (c *PlayerContext) Player() Player {
	return c.player
}

// ConsoleContext is a [Context] whose [Sender] is known to be a [Console].
type ConsoleContext struct {
	*Context
	console Console
}

func (c *ConsoleContext) Console() Console {
	return c.console
}
