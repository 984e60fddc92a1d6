package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/gravity-games/dropfour/internal/domain"
)

const writeTimeout = 10 * time.Second

// client wraps one socket with a write mutex. The reader loop and the
// keep-alive pinger both write, and conn writes are not thread-safe.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func newClient(conn *websocket.Conn) *client {
	return &client{conn: conn}
}

func (c *client) send(message domain.ServerMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(message)
}

func (c *client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *client) sendError(message string) {
	_ = c.send(domain.ServerMessage{Type: "error", Message: message})
}

func (c *client) sendState(state domain.MatchState) {
	_ = c.send(domain.ServerMessage{Type: "state", State: &state})
}
