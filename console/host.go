package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/saylorsolutions/cmdctx/argument"
	"github.com/saylorsolutions/cmdctx/command"
)

var (
	ErrUnknownCommand = errors.New("unknown command")

	keyCleansePattern = regexp.MustCompile(`\s`)
)

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

// Tokenize splits a line of input on whitespace.
// Quotes have no special meaning.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// HostOption configures a [Host] in [NewHost].
type HostOption func(h *Host)

// WithLogger sets the logger used to record each dispatch.
func WithLogger(logger *slog.Logger) HostOption {
	return func(h *Host) {
		if logger != nil {
			h.log = logger
		}
	}
}

// WithPrinter sets the [Printer] used for the host's own output, and as the console sender.
func WithPrinter(printer *Printer) HostOption {
	return func(h *Host) {
		if printer != nil {
			h.printer = printer
		}
	}
}

// WithPrompt sets the prompt shown by [Host.Interactive] for terminal input.
func WithPrompt(prompt string) HostOption {
	return func(h *Host) {
		h.prompt = prompt
	}
}

// Host is a set of commands that can be dispatched by name or alias.
// A "help" command is added by default.
type Host struct {
	mux      sync.RWMutex
	registry *argument.Registry
	commands map[string]*command.Command
	aliases  map[string]*command.Command
	cmdAlias map[*command.Command][]string
	printer  *Printer
	log      *slog.Logger
	prompt   string
}

// NewHost creates a [Host] that parses arguments with the given registry.
// Passing a nil registry will panic.
func NewHost(reg *argument.Registry, opts ...HostOption) *Host {
	if reg == nil {
		panic("nil registry")
	}
	h := &Host{
		registry: reg,
		commands: map[string]*command.Command{},
		aliases:  map[string]*command.Command{},
		cmdAlias: map[*command.Command][]string{},
		printer:  NewPrinter(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		prompt:   "> ",
	}
	for _, opt := range opts {
		opt(h)
	}
	h.AddCommand(h.helpCommand(), "?")
	return h
}

// Registry returns the [argument.Registry] given to every dispatched command.
func (h *Host) Registry() *argument.Registry {
	return h.registry
}

// Printer returns the [Printer] for this [Host].
func (h *Host) Printer() *Printer {
	return h.printer
}

// AddCommand adds a command keyed by its name.
// The key and aliases will be cleansed to remove spaces, and normalize to lower-case.
// A command with the same key replaces the previous one.
//
// This panics if [command.Command.Validate] fails, since that's a programming mistake.
func (h *Host) AddCommand(cmd *command.Command, aliases ...string) *Host {
	if cmd == nil {
		panic("nil command")
	}
	if err := cmd.Validate(); err != nil {
		panic(err)
	}
	key := cleanseKey(cmd.Name)
	h.mux.Lock()
	defer h.mux.Unlock()
	h.commands[key] = cmd
	_aliases := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 || alias == key {
			continue
		}
		h.aliases[alias] = cmd
		_aliases = append(_aliases, alias)
	}
	slices.Sort(_aliases)
	h.cmdAlias[cmd] = _aliases
	return h
}

// Lookup finds a command by key or alias, case-insensitive.
func (h *Host) Lookup(key string) (*command.Command, bool) {
	key = cleanseKey(key)
	h.mux.RLock()
	defer h.mux.RUnlock()
	if cmd, ok := h.commands[key]; ok {
		return cmd, true
	}
	cmd, ok := h.aliases[key]
	return cmd, ok
}

// Exec tokenizes the line and dispatches it with [Host.ExecTokens].
func (h *Host) Exec(sender command.Sender, line string) error {
	return h.ExecTokens(sender, Tokenize(line))
}

// ExecTokens dispatches to the command named by the first token, passing the rest as the command's tokens.
//
// A failed assertion is reported to the sender by the command itself, so it's logged and nil is returned.
// Other dispatch failures, like [command.ErrPermissionDenied] and [command.ErrUsage], are returned.
func (h *Host) ExecTokens(sender command.Sender, tokens []string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("%w: no arguments", ErrUnknownCommand)
	}
	if sender == nil {
		sender = h.printer
	}
	label := cleanseKey(tokens[0])
	cmd, ok := h.Lookup(label)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, tokens[0])
	}
	start := time.Now()
	err := cmd.Execute(h.registry, sender, label, tokens[1:])
	dur := time.Since(start)
	switch {
	case err == nil:
		h.log.Debug("Command executed", "command", cmd.Name, "label", label, "sender", sender.Name(), "duration", dur)
	case command.IsAssertion(err):
		h.log.Warn("Command aborted", "command", cmd.Name, "label", label, "sender", sender.Name(), "duration", dur, "reason", err.Error())
		return nil
	default:
		h.log.Debug("Command rejected", "command", cmd.Name, "label", label, "sender", sender.Name(), "error", err)
	}
	return err
}

// Complete suggests replacements for the last token in line.
//
// While the first token is being typed, the command keys and aliases that the sender may use are suggested.
// After that, the command's [command.TabHandler] is consulted, and its suggestions are filtered by the partial token.
// Suggestions are compared case-insensitive.
func (h *Host) Complete(sender command.Sender, line string) []string {
	if sender == nil {
		sender = h.printer
	}
	tokens := Tokenize(line)
	completing := len(line) == 0 || strings.TrimRight(line, " \t") != line
	if completing {
		tokens = append(tokens, "")
	}
	if len(tokens) == 1 {
		return h.commandKeys(sender, tokens[0])
	}
	cmd, ok := h.Lookup(tokens[0])
	if !ok || (len(cmd.Permission) > 0 && !sender.HasPermission(cmd.Permission)) {
		return nil
	}
	args := tokens[1:]
	partial := strings.ToLower(args[len(args)-1])
	var matched []string
	for _, suggestion := range cmd.Complete(h.registry, sender, args) {
		if strings.HasPrefix(strings.ToLower(suggestion), partial) {
			matched = append(matched, suggestion)
		}
	}
	return matched
}

func (h *Host) commandKeys(sender command.Sender, prefix string) []string {
	prefix = strings.ToLower(prefix)
	h.mux.RLock()
	defer h.mux.RUnlock()
	var keys []string
	add := func(key string, cmd *command.Command) {
		if !strings.HasPrefix(key, prefix) {
			return
		}
		if len(cmd.Permission) > 0 && !sender.HasPermission(cmd.Permission) {
			return
		}
		keys = append(keys, key)
	}
	for key, cmd := range h.commands {
		add(key, cmd)
	}
	for alias, cmd := range h.aliases {
		add(alias, cmd)
	}
	slices.Sort(keys)
	return keys
}

// CommandUsages returns a string including the usage information for each command in this [Host].
//
// The command keys will be sorted alphabetically before output.
func (h *Host) CommandUsages() string {
	h.mux.RLock()
	defer h.mux.RUnlock()
	var (
		buf         strings.Builder
		keys        = make([]string, 0, len(h.commands))
		withAliases = make([]string, 0, len(h.commands))
		usages      = make([]string, 0, len(h.commands))
		maxLen      int
		maxUsage    int
	)
	for key := range h.commands {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		cmd := h.commands[key]
		names := key
		if aliases := h.cmdAlias[cmd]; len(aliases) > 0 {
			names = strings.Join(append([]string{key}, aliases...), ", ")
		}
		usage := cmd.FullUsage(key)
		withAliases = append(withAliases, names)
		usages = append(usages, usage)
		maxLen = max(maxLen, len(names))
		maxUsage = max(maxUsage, len(usage))
	}
	fmtStr := fmt.Sprintf("  %%-%ds  %%-%ds  %%s", maxLen, maxUsage)
	for i, key := range keys {
		line := fmt.Sprintf(fmtStr, withAliases[i], usages[i], h.commands[key].Description)
		buf.WriteString(strings.TrimRight(line, " "))
		buf.WriteString("\n")
	}
	return buf.String()
}

func (h *Host) helpCommand() *command.Command {
	return &command.Command{
		Name:        "help",
		Description: "Shows all commands, or the usage of one command",
		Usage:       "[command]",
		Handler: func(ctx *command.Context) {
			key, ok := ctx.RawArg(0)
			if !ok {
				ctx.Reply(command.Text("Commands:\n%s", strings.TrimSuffix(h.CommandUsages(), "\n")))
				return
			}
			cmd, found := h.Lookup(key)
			ctx.Assertion(found, command.Text("Unknown command '%s'", key))
			usage := cmd.FullUsage(cleanseKey(key))
			if len(cmd.Description) > 0 {
				usage += "\n  " + cmd.Description
			}
			ctx.Reply(command.Text(usage))
		},
		TabHandler: func(ctx *command.Context) []string {
			if ctx.NArgs() > 1 {
				return nil
			}
			return h.commandKeys(ctx.Sender(), "")
		},
	}
}
