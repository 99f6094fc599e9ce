package realtime

import (
	"encoding/json"
	"time"
)

// --- Event Types ---
type EventType string

const (
	EventTypeJoin        EventType = "join"
	EventTypeOnlineUsers EventType = "onlineUsers"
	EventTypeUserOnline  EventType = "userOnline"
	EventTypeUserOffline EventType = "userOffline"
	EventTypeMessage     EventType = "message"
)

// Event is the wire envelope for everything sent over a connection.
type Event struct {
	Event EventType       `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// EncodeEvent marshals an event envelope with the given payload.
func EncodeEvent(eventType EventType, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Event{Event: eventType, Data: raw})
}

// --- UseCase Inputs ---

// ConnectionInput represents a new connection attempt.
type ConnectionInput struct {
	// UserID is the authenticated identity from the JWT. A join declaration
	// on the connection must name the same identity.
	UserID string
	Conn   interface{} // *websocket.Conn
}

// ConnectionConfig carries per-connection transport settings.
type ConnectionConfig struct {
	PingInterval   time.Duration
	PongWait       time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
	MaxConnections int
}

// --- UseCase Outputs ---

type HubStats struct {
	ActiveConnections int `json:"active_connections"`
	OnlineUsers       int `json:"online_users"`
}
