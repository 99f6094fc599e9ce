package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"chat-api/internal/realtime"
	"chat-api/pkg/log"
)

// sendBufferSize is the per-connection outbound buffer. Delivery is best
// effort: when the buffer is full the event is dropped for that connection.
const sendBufferSize = 256

// Connection represents one live WebSocket connection. It starts unbound and
// binds to a user identity when the client sends a join declaration.
type Connection struct {
	// Hub reference
	hub *Hub

	// WebSocket connection
	conn *websocket.Conn

	// Authenticated identity from the JWT, fixed at upgrade time.
	authUserID string

	// Bound identity, set on join. Guarded by the hub's lock.
	userID string

	// Buffered channel of outbound messages
	send chan []byte

	// Configuration
	config realtime.ConnectionConfig

	// Logger
	logger log.Logger
}

// trySend hands a payload to the connection's write pump without blocking.
// Caller must hold the hub lock, which guarantees the channel is not closed
// concurrently.
func (c *Connection) trySend(payload []byte) {
	select {
	case c.send <- payload:
	default:
		// Buffer full, drop. The write pump and ping deadlines will tear
		// down a connection that stopped draining.
	}
}

// readPump pumps events from the WebSocket connection to the hub.
//
// The application runs readPump in a per-connection goroutine. The application
// ensures that there is at most one reader on a connection by executing all
// reads from this goroutine. The deferred unregister is the single cleanup
// path for the connection and runs on graceful close, read error and abrupt
// network failure alike.
func (c *Connection) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.config.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.config.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.config.PongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warnf(context.Background(), "websocket read error for user %s: %v", c.authUserID, err)
			}
			break
		}
		c.handleEvent(raw)
	}
}

// handleEvent dispatches one inbound client event. Malformed events are
// ignored: a bad join leaves the connection unbound, it never tears it down.
func (c *Connection) handleEvent(raw []byte) {
	var event realtime.Event
	if err := json.Unmarshal(raw, &event); err != nil {
		c.logger.Debugf(context.Background(), "ignoring malformed event from user %s: %v", c.authUserID, err)
		return
	}

	switch event.Event {
	case realtime.EventTypeJoin:
		var userID string
		if err := json.Unmarshal(event.Data, &userID); err != nil || userID == "" {
			c.logger.Debugf(context.Background(), "ignoring join with invalid identity from user %s", c.authUserID)
			return
		}
		// A connection may only join as the identity it authenticated as.
		if userID != c.authUserID {
			c.logger.Warnf(context.Background(), "join identity %s does not match token subject %s, ignoring", userID, c.authUserID)
			return
		}
		select {
		case c.hub.join <- joinRequest{conn: c, userID: userID}:
		case <-c.hub.done:
		}

	default:
		c.logger.Debugf(context.Background(), "ignoring unknown event %q from user %s", event.Event, c.authUserID)
	}
}

// writePump pumps messages from the hub to the WebSocket connection.
//
// A goroutine running writePump is started for each connection. The
// application ensures that there is at most one writer to a connection by
// executing all writes from this goroutine.
func (c *Connection) writePump() {
	ticker := time.NewTicker(c.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

			// Drain queued messages while we hold the writer.
			n := len(c.send)
			for i := 0; i < n; i++ {
				c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
				if err := c.conn.WriteMessage(websocket.TextMessage, <-c.send); err != nil {
					return
				}
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
