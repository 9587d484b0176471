package command

import (
	"github.com/google/uuid"
	"github.com/saylorsolutions/cmdctx/internal/set"
)

type testSender struct {
	name        string
	permissions set.Set[string]
	received    []Message
}

func newTestSender(permissions ...string) *testSender {
	return &testSender{name: "tester", permissions: set.New(permissions...)}
}

func (s *testSender) Name() string {
	return s.name
}

func (s *testSender) HasPermission(permission string) bool {
	return s.permissions.Has(permission)
}

func (s *testSender) SendMessage(msg Message) {
	s.received = append(s.received, msg)
}

func (s *testSender) plainTexts() []string {
	var texts []string
	for _, msg := range s.received {
		texts = append(texts, msg.PlainText())
	}
	return texts
}

type testPlayer struct {
	*testSender
	id uuid.UUID
}

func newTestPlayer(permissions ...string) *testPlayer {
	return &testPlayer{testSender: newTestSender(permissions...), id: uuid.New()}
}

func (p *testPlayer) UUID() uuid.UUID {
	return p.id
}

type testConsole struct {
	*testSender
}

func (c *testConsole) Console() {}
