package main

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saylorsolutions/cmdctx/argument"
	"github.com/saylorsolutions/cmdctx/command"
	"github.com/saylorsolutions/cmdctx/console"
)

const permStop = "cmdctx.stop"

type gameMode string

const (
	modeSurvival  gameMode = "survival"
	modeCreative  gameMode = "creative"
	modeAdventure gameMode = "adventure"
	modeSpectator gameMode = "spectator"
)

var gameModes = argument.Enum("gamemode", map[string]gameMode{
	"survival":  modeSurvival,
	"s":         modeSurvival,
	"0":         modeSurvival,
	"creative":  modeCreative,
	"c":         modeCreative,
	"1":         modeCreative,
	"adventure": modeAdventure,
	"a":         modeAdventure,
	"2":         modeAdventure,
	"spectator": modeSpectator,
	"sp":        modeSpectator,
	"3":         modeSpectator,
})

// demo holds the state changed by the demo commands while the process runs.
type demo struct {
	mux     sync.Mutex
	toggles map[string]argument.TriState
	modes   map[string]gameMode
	stop    context.CancelFunc
}

// addDemoCommands registers the demo commands with the host.
// The stop function is called by the "stop" command.
func addDemoCommands(host *console.Host, optionPrefix string, stop context.CancelFunc) *demo {
	d := &demo{
		toggles: map[string]argument.TriState{},
		modes:   map[string]gameMode{},
		stop:    stop,
	}
	argument.Register(host.Registry(), gameModes)
	for _, def := range []struct {
		cmd     *command.Command
		aliases []string
	}{
		{d.sumCommand(), []string{"add"}},
		{d.durationCommand(), []string{"dur"}},
		{d.rangeCommand(), nil},
		{d.uuidCommand(), nil},
		{d.toggleCommand(), []string{"t"}},
		{d.gamemodeCommand(), []string{"gm"}},
		{d.keyCommand(), nil},
		{d.whoamiCommand(), nil},
		{d.stopCommand(), nil},
	} {
		def.cmd.OptionPrefix = optionPrefix
		host.AddCommand(def.cmd, def.aliases...)
	}
	return d
}

func (d *demo) sumCommand() *command.Command {
	return &command.Command{
		Name:         "sum",
		Description:  "Adds numbers written for the configured locale",
		Usage:        "<number> [numbers...]",
		UsageMessage: command.Text("Usage: {usage}"),
		Handler: func(ctx *command.Context) {
			var total argument.Number
			for i, n := 0, ctx.NArgs(); i < n; i++ {
				total += command.ValidateArgumentFunc[argument.Number](ctx, i, func(raw command.Message) command.Message {
					return command.Text("'%s' is not a number", raw.PlainText())
				})
			}
			if ctx.HasOption("int") {
				total = argument.Number(total.Int64())
			}
			ctx.Reply(command.Text("%s", total))
		},
	}
}

func (d *demo) durationCommand() *command.Command {
	return &command.Command{
		Name:         "duration",
		Description:  "Normalizes a duration like '1 day, 2 hours'",
		Usage:        "<duration> [more...]",
		UsageMessage: command.Text("Usage: {usage}"),
		Handler: func(ctx *command.Context) {
			input := strings.Join(ctx.RawArgs(), " ")
			dur, err := argument.ParseDuration(input)
			ctx.Assertion(err == nil, command.Text("'%s' is not a duration", input))
			if ctx.HasOption("seconds") {
				ctx.Reply(command.Text("%d", int64(dur/time.Second)))
				return
			}
			ctx.Reply(command.Text("%s (%s)", argument.FormatDuration(dur), dur))
		},
	}
}

func (d *demo) rangeCommand() *command.Command {
	return &command.Command{
		Name:         "range",
		Description:  "Shows a range, or checks if a number is in it",
		Usage:        "<start-end> [number]",
		UsageMessage: command.Text("Usage: {usage}"),
		Handler: func(ctx *command.Context) {
			r := command.ValidateArgument[argument.IntRange](ctx, 0, command.Text("A range looks like '1-10'"))
			if _, ok := ctx.RawArg(1); !ok {
				ctx.Reply(command.Text("%s has %d numbers", r, r.Len()))
				return
			}
			n := command.ValidateArgument[int](ctx, 1, command.Text("That's not a whole number"))
			if r.Contains(n) {
				ctx.Reply(command.Text("%d is in %s", n, r))
				return
			}
			ctx.Reply(command.Text("%d is not in %s", n, r))
		},
	}
}

func (d *demo) uuidCommand() *command.Command {
	return &command.Command{
		Name:        "uuid",
		Description: "Normalizes a UUID, or generates a new one",
		Usage:       "[uuid]",
		Handler: func(ctx *command.Context) {
			id := command.OptionalArgument(ctx, 0, uuid.New(), command.Text("That's not a UUID"))
			ctx.Reply(command.Text(id.String()))
		},
	}
}

func (d *demo) toggleCommand() *command.Command {
	return &command.Command{
		Name:         "toggle",
		Description:  "Shows or changes a named setting",
		Usage:        "<name> [on|off|clear]",
		UsageMessage: command.Text("Usage: {usage}"),
		Handler: func(ctx *command.Context) {
			name := command.ValidateArgument[argument.NamespacedKey](ctx, 0, command.Text("Setting names look like 'namespace:name'"))
			d.mux.Lock()
			defer d.mux.Unlock()
			if _, ok := ctx.RawArg(1); ok {
				d.toggles[name.String()] = command.ValidateArgument[argument.TriState](ctx, 1, command.Text("Use on, off, or clear"))
			}
			ctx.Reply(command.Text("%s is %s", name, d.toggles[name.String()]))
		},
		TabHandler: func(ctx *command.Context) []string {
			switch ctx.NArgs() {
			case 1:
				d.mux.Lock()
				defer d.mux.Unlock()
				names := make([]string, 0, len(d.toggles))
				for name := range d.toggles {
					names = append(names, name)
				}
				sort.Strings(names)
				return names
			case 2:
				return []string{"on", "off", "clear"}
			default:
				return nil
			}
		},
	}
}

func (d *demo) gamemodeCommand() *command.Command {
	return &command.Command{
		Name:              "gamemode",
		Description:       "Changes your game mode",
		Usage:             "<mode>",
		Permission:        "cmdctx.gamemode",
		UsageMessage:      command.Text("Usage: {usage}"),
		PermissionMessage: command.Text("You can't change your game mode"),
		Handler: func(ctx *command.Context) {
			pctx := ctx.AssertPlayer(command.Text("Only players have a game mode"))
			mode := command.ValidateArgumentFunc[gameMode](ctx, 0, func(raw command.Message) command.Message {
				return command.Text("Unknown game mode '%s'", raw.PlainText())
			})
			d.mux.Lock()
			d.modes[pctx.Player().UUID().String()] = mode
			d.mux.Unlock()
			pctx.Reply(command.Text("Game mode set to %s", mode))
		},
		TabHandler: func(ctx *command.Context) []string {
			if ctx.NArgs() > 1 {
				return nil
			}
			return []string{string(modeSurvival), string(modeCreative), string(modeAdventure), string(modeSpectator)}
		},
	}
}

func (d *demo) keyCommand() *command.Command {
	return &command.Command{
		Name:         "key",
		Description:  "Normalizes a namespaced key",
		Usage:        "<key>",
		UsageMessage: command.Text("Usage: {usage}"),
		Handler: func(ctx *command.Context) {
			key := command.ValidateArgument[argument.NamespacedKey](ctx, 0, command.Text("Keys may only use a-z, 0-9, '.', '_', '-', and '/'"))
			ctx.Reply(command.Text("namespace=%s key=%s", key.Namespace, key.Key))
		},
	}
}

func (d *demo) whoamiCommand() *command.Command {
	return &command.Command{
		Name:        "whoami",
		Description: "Describes the sender",
		Handler: func(ctx *command.Context) {
			switch {
			case ctx.IsPlayer():
				pctx := ctx.AssertPlayer(nil)
				d.mux.Lock()
				mode, ok := d.modes[pctx.Player().UUID().String()]
				d.mux.Unlock()
				if !ok {
					mode = modeSurvival
				}
				ctx.Reply(command.Text("%s is a player (%s) in %s mode", ctx.Sender().Name(), pctx.Player().UUID(), mode))
			case ctx.IsConsole():
				ctx.Reply(command.Text("%s is the console", ctx.Sender().Name()))
			default:
				ctx.Reply(command.Text("%s", ctx.Sender().Name()))
			}
		},
	}
}

func (d *demo) stopCommand() *command.Command {
	return &command.Command{
		Name:              "stop",
		Description:       "Stops the console",
		Permission:        permStop,
		PermissionMessage: command.Text("You can't stop the console"),
		Handler: func(ctx *command.Context) {
			ctx.AssertConsole(command.Text("Only the console can do that"))
			ctx.Reply(command.Text("Stopping"))
			if d.stop != nil {
				d.stop()
			}
		},
	}
}
