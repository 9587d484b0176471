package main

import (
	"github.com/google/uuid"

	"github.com/saylorsolutions/cmdctx/command"
	"github.com/saylorsolutions/cmdctx/console"
	"github.com/saylorsolutions/cmdctx/internal/set"
)

var _ command.Player = (*player)(nil)

// player is a [command.Player] whose messages are written to the console.
// Its UUID is derived from the name, so it's stable between runs.
type player struct {
	name        string
	id          uuid.UUID
	permissions set.Set[string]
	out         *console.Printer
}

func newPlayer(name string, out *console.Printer, permissions ...string) *player {
	return &player{
		name:        name,
		id:          uuid.NewSHA1(uuid.NameSpaceOID, []byte("cmdctx:"+name)),
		permissions: set.New(permissions...),
		out:         out,
	}
}

func (p *player) Name() string {
	return p.name
}

func (p *player) HasPermission(permission string) bool {
	return p.permissions.Has(permission)
}

func (p *player) SendMessage(msg command.Message) {
	if msg == nil {
		return
	}
	p.out.Printf("[%s] %s\n", p.name, msg.PlainText())
}

func (p *player) UUID() uuid.UUID {
	return p.id
}
