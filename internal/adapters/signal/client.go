package signal

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

// wsClient is one websocket connection. It implements app.Session, and
// therefore core.ClientHandle, on top of a buffered send queue drained by
// the write pump.
type wsClient struct {
	conn *websocket.Conn
	send chan []byte

	mu     sync.RWMutex
	closed bool
	user   *domain.User
	room   *core.Room
}

var _ app.Session = (*wsClient)(nil)

func newWSClient(conn *websocket.Conn, buffer int) *wsClient {
	user, _ := domain.NewUser("")
	return &wsClient{
		conn: conn,
		send: make(chan []byte, buffer),
		user: user,
	}
}

// TrySend queues data without blocking.
func (c *wsClient) TrySend(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}
	select {
	case c.send <- data:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsClient) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

func (c *wsClient) sendJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return err
	}
	return c.TrySend(b)
}

func (c *wsClient) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user.Username
}

func (c *wsClient) SetName(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user.SetUsername(name)
}

func (c *wsClient) Send(sender, text string) bool {
	return c.sendJSON(domain.NewChatMessage(sender, text)) == nil
}

func (c *wsClient) SendConnectionStatus(peer string, connected bool, note string) bool {
	return c.sendJSON(domain.NewConnectionStatus(peer, connected, note)) == nil
}

func (c *wsClient) SendClearList() bool {
	return c.sendJSON(domain.NewClearList()) == nil
}

func (c *wsClient) CurrentRoom() *core.Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.room
}

func (c *wsClient) SetCurrentRoom(room *core.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.room = room
}

func (c *wsClient) SwapCurrentRoom(from, to *core.Room) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.room != from {
		return false
	}
	c.room = to
	return true
}

// ID is the server-side identity of the connection's user, stable across renames.
func (c *wsClient) ID() domain.UserID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user.ID
}
