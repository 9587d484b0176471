package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/saylorsolutions/cmdctx/command"
	"github.com/saylorsolutions/cmdctx/internal/set"
)

// ConsoleName is the name reported by a [Printer] when it's used as a [command.Sender].
const ConsoleName = "CONSOLE"

var _ command.Console = (*Printer)(nil)

// Printer writes user-visible output, and acts as the operator's [command.Console] sender.
// The console has every permission, unless some are taken away with [Printer.Deny].
type Printer struct {
	mux    sync.Mutex
	out    io.Writer
	denied set.Set[string]
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

// Redirect changes where output is written, returning the previous writer.
func (p *Printer) Redirect(writer io.Writer) io.Writer {
	p.mux.Lock()
	defer p.mux.Unlock()
	prev := p.out
	p.out = writer
	return prev
}

// Deny removes permissions from the console.
func (p *Printer) Deny(permissions ...string) *Printer {
	if len(permissions) == 0 {
		return p
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	p.denied = p.denied.Add(permissions[0], permissions[1:]...)
	return p
}

func (p *Printer) Print(msg ...any) {
	p.mux.Lock()
	defer p.mux.Unlock()
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	p.mux.Lock()
	defer p.mux.Unlock()
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	p.mux.Lock()
	defer p.mux.Unlock()
	_, _ = fmt.Fprintln(p.out, msg...)
}

func (p *Printer) Name() string {
	return ConsoleName
}

func (p *Printer) HasPermission(permission string) bool {
	p.mux.Lock()
	defer p.mux.Unlock()
	return !p.denied.Has(permission)
}

// SendMessage prints the plain text of msg on its own line.
func (p *Printer) SendMessage(msg command.Message) {
	if msg == nil {
		return
	}
	p.Println(msg.PlainText())
}

func (p *Printer) Console() {}
