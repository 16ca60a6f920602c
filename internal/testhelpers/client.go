// Package testhelpers provides fakes shared by the unit tests of the chat server.
package testhelpers

import (
	"sync"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

// FakeClient is an in-memory core.ClientHandle that records what it was sent.
// Break makes every send fail, as a dead connection would.
type FakeClient struct {
	mu       sync.Mutex
	name     string
	room     *core.Room
	broken   bool
	failNext int
	closed   bool
	messages []domain.ChatMessage
	statuses []domain.ConnectionStatus
	clears   int
}

func NewFakeClient(name string) *FakeClient {
	return &FakeClient{name: name}
}

func (c *FakeClient) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

func (c *FakeClient) SetName(name string) error {
	if err := domain.ValidateUsername(name); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
	return nil
}

func (c *FakeClient) Send(sender, text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing() {
		return false
	}
	c.messages = append(c.messages, domain.NewChatMessage(sender, text))
	return true
}

func (c *FakeClient) SendConnectionStatus(peer string, connected bool, note string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing() {
		return false
	}
	c.statuses = append(c.statuses, domain.NewConnectionStatus(peer, connected, note))
	return true
}

func (c *FakeClient) SendClearList() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing() {
		return false
	}
	c.clears++
	return true
}

func (c *FakeClient) CurrentRoom() *core.Room {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.room
}

func (c *FakeClient) SetCurrentRoom(room *core.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.room = room
}

func (c *FakeClient) SwapCurrentRoom(from, to *core.Room) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.room != from {
		return false
	}
	c.room = to
	return true
}

func (c *FakeClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.broken = true
}

func (c *FakeClient) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// FailNextSend makes only the next send fail.
func (c *FakeClient) FailNextSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failNext++
}

// failing reports whether the current send fails. c.mu must be held.
func (c *FakeClient) failing() bool {
	if c.broken {
		return true
	}
	if c.failNext > 0 {
		c.failNext--
		return true
	}
	return false
}

// Break makes all further sends fail.
func (c *FakeClient) Break() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.broken = true
}

func (c *FakeClient) Messages() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.ChatMessage(nil), c.messages...)
}

// Texts returns the text of every chat message received, in order.
func (c *FakeClient) Texts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.messages))
	for _, m := range c.messages {
		out = append(out, m.Text)
	}
	return out
}

func (c *FakeClient) Statuses() []domain.ConnectionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.ConnectionStatus(nil), c.statuses...)
}

func (c *FakeClient) Clears() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clears
}

// Reset forgets everything received so far.
func (c *FakeClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
	c.statuses = nil
	c.clears = 0
}

// FixedDice always rolls the same value, clamped to the requested range.
type FixedDice int

func (d FixedDice) IntN(n int) int {
	if int(d) >= n {
		return n - 1
	}
	return int(d)
}
