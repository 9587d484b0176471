package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"

	"github.com/saylorsolutions/cmdctx/command"
)

// InteractiveQuitCommands is a slice of strings that should escape from interactive mode.
var InteractiveQuitCommands = []string{"quit", "x"}

// Interactive reads commands from in and dispatches them as sender until one of the [InteractiveQuitCommands] is entered, input ends, or ctx is done.
// Dispatch errors are written to out, and don't stop the loop.
//
// If in is a terminal, then it's switched to raw mode for line editing and tab completion.
// A cancelled ctx is only noticed between lines.
func (h *Host) Interactive(ctx context.Context, sender command.Sender, in io.Reader, out io.Writer) error {
	if sender == nil {
		sender = h.printer
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return h.interactiveTerminal(ctx, sender, f, out)
	}
	return h.interactiveLines(ctx, sender, in, out)
}

func (h *Host) interactiveLines(ctx context.Context, sender command.Sender, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for ctx.Err() == nil && scanner.Scan() {
		if h.handleLine(sender, scanner.Text(), out) {
			return nil
		}
	}
	return scanner.Err()
}

func (h *Host) interactiveTerminal(ctx context.Context, sender command.Sender, f *os.File, out io.Writer) error {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set up terminal: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, state)
	}()

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{f, out}, h.prompt)
	t.AutoCompleteCallback = func(line string, pos int, key rune) (string, int, bool) {
		if key != '\t' {
			return "", 0, false
		}
		return completeLine(line, pos, h.Complete(sender, line[:pos]))
	}
	if p, ok := sender.(*Printer); ok {
		prev := p.Redirect(t)
		defer p.Redirect(prev)
	}
	_, _ = fmt.Fprintf(t, "Enter %s to exit.\n", strings.Join(InteractiveQuitCommands, " or "))
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := t.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if h.handleLine(sender, line, t) {
			return nil
		}
	}
}

// handleLine dispatches one line of input, returning true if the loop should stop.
func (h *Host) handleLine(sender command.Sender, line string, out io.Writer) bool {
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return false
	}
	if slices.Contains(InteractiveQuitCommands, strings.ToLower(line)) {
		return true
	}
	if err := h.Exec(sender, line); err != nil {
		_, _ = fmt.Fprintln(out, "Error:", err)
	}
	return false
}

// completeLine replaces the partial token before pos with the longest prefix shared by all suggestions.
func completeLine(line string, pos int, suggestions []string) (string, int, bool) {
	if len(suggestions) == 0 {
		return "", 0, false
	}
	start := strings.LastIndexAny(line[:pos], " \t") + 1
	common := suggestions[0]
	for _, s := range suggestions[1:] {
		common = commonPrefix(common, s)
	}
	if len(common) <= pos-start {
		return "", 0, false
	}
	if len(suggestions) == 1 {
		common += " "
	}
	newLine := line[:start] + common + line[pos:]
	return newLine, start + len(common), true
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if !strings.EqualFold(a[i:i+1], b[i:i+1]) {
			return a[:i]
		}
	}
	return a[:n]
}
