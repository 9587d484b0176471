package console

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saylorsolutions/cmdctx/argument"
	"github.com/saylorsolutions/cmdctx/command"
)

func testHost(t *testing.T) (*Host, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	printer := NewPrinter()
	printer.Redirect(&buf)
	h := NewHost(argument.NewDefaultRegistry(), WithPrinter(printer))
	h.AddCommand(&command.Command{
		Name:         "Give",
		Description:  "Gives something to a target",
		Usage:        "<target> [amount]",
		Permission:   "test.give",
		UsageMessage: command.Text("Usage: {usage}"),
		Handler: func(ctx *command.Context) {
			target, _ := ctx.RawArg(0)
			amount := command.OptionalArgument(ctx, 1, argument.Number(1), command.Text("amount must be a number"))
			ctx.Reply(command.Text("gave %s %s", target, amount))
		},
		TabHandler: func(ctx *command.Context) []string {
			if ctx.NArgs() > 1 {
				return []string{"1", "10", "64"}
			}
			return []string{"Alice", "alex", "Bob"}
		},
	}, "g", "hand over")
	return h, &buf
}

func TestHost_Exec(t *testing.T) {
	h, buf := testHost(t)
	require.NoError(t, h.Exec(nil, "give bob 1,234.5"))
	assert.Equal(t, "gave bob 1234.5\n", buf.String())

	buf.Reset()
	require.NoError(t, h.Exec(nil, "  GIVE   bob  "), "Keys should be case-insensitive and whitespace ignored")
	assert.Equal(t, "gave bob 1\n", buf.String())
}

func TestHost_Exec_Aliases(t *testing.T) {
	h, buf := testHost(t)
	require.NoError(t, h.Exec(nil, "g bob 2"))
	require.NoError(t, h.Exec(nil, "handover bob 3"), "Whitespace should be removed from aliases")
	assert.Equal(t, "gave bob 2\ngave bob 3\n", buf.String())
}

func TestHost_Exec_Unknown(t *testing.T) {
	h, _ := testHost(t)
	assert.ErrorIs(t, h.Exec(nil, ""), ErrUnknownCommand)
	assert.ErrorIs(t, h.Exec(nil, "take bob"), ErrUnknownCommand)
}

func TestHost_Exec_Usage(t *testing.T) {
	h, buf := testHost(t)
	err := h.Exec(nil, "g -silent")
	assert.ErrorIs(t, err, command.ErrUsage)
	assert.Equal(t, "Usage: /g <target> [amount]\n", buf.String(), "The label should be the alias that was used")
}

func TestHost_Exec_Permission(t *testing.T) {
	h, buf := testHost(t)
	h.Printer().Deny("test.give")
	assert.ErrorIs(t, h.Exec(nil, "give bob"), command.ErrPermissionDenied)
	assert.Empty(t, buf.String())
}

func TestHost_Exec_Assertion(t *testing.T) {
	h, buf := testHost(t)
	assert.NoError(t, h.Exec(nil, "give bob lots"), "An assertion failure is handled by the command")
	assert.Equal(t, "amount must be a number\n", buf.String())
}

func TestHost_AddCommand_Invalid(t *testing.T) {
	h, _ := testHost(t)
	assert.Panics(t, func() {
		h.AddCommand(nil)
	})
	assert.Panics(t, func() {
		h.AddCommand(&command.Command{Name: "nohandler"})
	})
}

func TestHost_Complete(t *testing.T) {
	tests := map[string]struct {
		line     string
		expected []string
	}{
		"Empty": {
			line:     "",
			expected: []string{"?", "g", "give", "handover", "help"},
		},
		"Command prefix": {
			line:     "G",
			expected: []string{"g", "give"},
		},
		"First argument": {
			line:     "give a",
			expected: []string{"Alice", "alex"},
		},
		"First argument empty": {
			line:     "give ",
			expected: []string{"Alice", "alex", "Bob"},
		},
		"Second argument": {
			line:     "give bob 6",
			expected: []string{"64"},
		},
		"Unknown command": {
			line:     "take b",
			expected: nil,
		},
		"Help": {
			line:     "help gi",
			expected: []string{"give"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			h, _ := testHost(t)
			assert.Equal(t, tc.expected, h.Complete(nil, tc.line))
		})
	}
}

func TestHost_Complete_Permission(t *testing.T) {
	h, _ := testHost(t)
	h.Printer().Deny("test.give")
	assert.Equal(t, []string{"?", "help"}, h.Complete(nil, ""))
	assert.Nil(t, h.Complete(nil, "give a"))
}

func TestHost_CommandUsages(t *testing.T) {
	h, _ := testHost(t)
	expected := strings.Join([]string{
		"  give, g, handover  /give <target> [amount]  Gives something to a target",
		"  help, ?            /help [command]          Shows all commands, or the usage of one command",
		"",
	}, "\n")
	assert.Equal(t, expected, h.CommandUsages())
}

func TestHost_Help(t *testing.T) {
	h, buf := testHost(t)
	require.NoError(t, h.Exec(nil, "help g"))
	assert.Equal(t, "/g <target> [amount]\n  Gives something to a target\n", buf.String())

	buf.Reset()
	require.NoError(t, h.Exec(nil, "help take"))
	assert.Equal(t, "Unknown command 'take'\n", buf.String())

	buf.Reset()
	require.NoError(t, h.Exec(nil, "?"))
	assert.True(t, strings.HasPrefix(buf.String(), "Commands:\n  give, g, handover"))
}

func TestHost_Interactive(t *testing.T) {
	h, buf := testHost(t)
	var out bytes.Buffer
	in := strings.NewReader("give bob 2\n\ntake bob\nX\ngive alice\n")
	require.NoError(t, h.Interactive(context.Background(), nil, in, &out))
	assert.Equal(t, "gave bob 2\n", buf.String(), "Nothing after the quit command should run")
	assert.Equal(t, "Error: unknown command: take\n", out.String())
}

func TestHost_Interactive_Cancelled(t *testing.T) {
	h, buf := testHost(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, h.Interactive(ctx, nil, strings.NewReader("give bob\n"), &bytes.Buffer{}))
	assert.Empty(t, buf.String())
}

func TestCompleteLine(t *testing.T) {
	tests := map[string]struct {
		line        string
		suggestions []string
		expected    string
		ok          bool
	}{
		"No suggestions": {
			line: "gi",
		},
		"Single": {
			line:        "gi",
			suggestions: []string{"give"},
			expected:    "give ",
			ok:          true,
		},
		"Common prefix": {
			line:        "give a",
			suggestions: []string{"Alice", "alex"},
			expected:    "give Al",
			ok:          true,
		},
		"Nothing to add": {
			line:        "give al",
			suggestions: []string{"Alice", "alex"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			line, pos, ok := completeLine(tc.line, len(tc.line), tc.suggestions)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, line)
			assert.Equal(t, len(tc.expected), pos)
		})
	}
}

func ExampleHost_Exec() {
	printer := NewPrinter()
	printer.Redirect(os.Stdout)
	h := NewHost(argument.NewDefaultRegistry(), WithPrinter(printer))
	h.AddCommand(&command.Command{
		Name:  "wait",
		Usage: "<duration>",
		Handler: func(ctx *command.Context) {
			dur := command.ValidateArgument[time.Duration](ctx, 0, command.Text("That's not a duration"))
			ctx.Reply(command.Text("Waiting %s", argument.FormatDuration(dur)))
		},
	})

	_ = h.Exec(nil, "wait 1h30m")
	_ = h.Exec(nil, "wait soon")
	if err := h.Exec(nil, "wait"); err != nil {
		fmt.Println(err)
	}

	// Output:
	// Waiting 1h30m
	// That's not a duration
	// incorrect usage: wait requires 1 argument(s), got 0
}
