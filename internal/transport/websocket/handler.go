package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/gravity-games/dropfour/internal/domain"
	"github.com/gravity-games/dropfour/internal/service/session"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler drives one match per socket: the client opens with a
// "start" message, then sends "move" messages until the game is over.
type Handler struct {
	Sessions    *session.Manager
	DefaultTier domain.BotTier
	Upgrader    websocket.Upgrader
}

func NewHandler(sm *session.Manager, defaultTier domain.BotTier) *Handler {
	return &Handler{
		Sessions:    sm,
		DefaultTier: defaultTier,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades the connection and runs its lifecycle.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

func (h *Handler) handleConnection(conn *websocket.Conn) {
	cl := newClient(conn)
	defer conn.Close()

	// Set read deadline to detect stale connections
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	// Keep-alive pinger
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := cl.ping(); err != nil {
					return
				}
			}
		}
	}()

	// 1. Wait for the start message
	sess, err := h.awaitStart(conn, cl)
	if err != nil {
		log.Printf("[WS] Init failed: %v", err)
		return
	}
	log.Printf("[WS] Session %s attached", sess.ID)
	cl.sendState(sess.Snapshot())

	// 2. Main message loop
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		var message domain.ClientMessage
		if err := json.Unmarshal(data, &message); err != nil {
			cl.sendError("invalid message")
			continue
		}

		switch message.Type {
		case "move":
			if err := sess.Play(message.Column); err != nil {
				cl.sendError(err.Error())
				continue
			}
			cl.sendState(sess.Snapshot())
		default:
			cl.sendError("unknown message type")
		}
	}
}

// awaitStart reads messages until a valid "start" arrives and creates
// the session for it.
func (h *Handler) awaitStart(conn *websocket.Conn, cl *client) (*session.Session, error) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return nil, err
		}

		var message domain.ClientMessage
		if err := json.Unmarshal(data, &message); err != nil {
			cl.sendError("invalid message")
			continue
		}
		if message.Type != "start" || message.Player == "" {
			cl.sendError("expected a start message with a player name")
			continue
		}

		tier := h.DefaultTier
		if message.Tier != "" {
			tier = domain.ParseTier(message.Tier)
		}
		return h.Sessions.CreateVersusBot(message.Player, tier), nil
	}
}
