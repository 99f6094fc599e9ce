package usecase

import (
	"context"
	"sync"

	"chat-api/internal/realtime"
	"chat-api/pkg/log"
)

// Hub maintains the set of active connections, the user-to-connections
// registry and the presence bookkeeping derived from it. All registry
// mutations happen in run() so presence transitions are computed atomically;
// events are pushed onto per-connection buffers with non-blocking sends, so a
// stalled client never holds up the registry.
type Hub struct {
	// Registered connections, bound or not.
	clients map[*Connection]bool

	// User to connections mapping for targeted delivery.
	// user_id -> set of connections
	users map[string]map[*Connection]bool

	// Register requests from new connections.
	register chan registerRequest

	// Join declarations binding a connection to a user.
	join chan joinRequest

	// Unregister requests from closing connections.
	unregister chan *Connection

	// Closed by Shutdown to stop the run loop.
	done chan struct{}

	// Connection cap, 0 means unlimited. Enforced inside the run loop so
	// concurrent registrations cannot overshoot it.
	maxConnections int

	// Lock for maps
	mu sync.RWMutex

	logger log.Logger
}

type registerRequest struct {
	conn   *Connection
	result chan error
}

type joinRequest struct {
	conn   *Connection
	userID string
}

func newHub(logger log.Logger, maxConnections int) *Hub {
	return &Hub{
		clients:        make(map[*Connection]bool),
		users:          make(map[string]map[*Connection]bool),
		register:       make(chan registerRequest),
		join:           make(chan joinRequest),
		unregister:     make(chan *Connection),
		done:           make(chan struct{}),
		maxConnections: maxConnections,
		logger:         logger,
	}
}

func (h *Hub) run() {
	for {
		select {
		case req := <-h.register:
			h.handleRegister(req)

		case req := <-h.join:
			h.handleJoin(req)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case <-h.done:
			h.closeAll()
			return
		}
	}
}

// handleRegister admits a connection, applying the connection cap atomically
// with the insert. The result channel is buffered, the reply never blocks the
// run loop.
func (h *Hub) handleRegister(req registerRequest) {
	h.mu.Lock()
	if h.maxConnections > 0 && len(h.clients) >= h.maxConnections {
		h.mu.Unlock()
		req.result <- realtime.ErrMaxConnectionsReached
		return
	}
	h.clients[req.conn] = true
	h.mu.Unlock()
	req.result <- nil
}

// handleJoin binds a connection to a user. The presence delta is computed
// while the lock is held; the resulting broadcasts happen after release. The
// online-users snapshot goes to the joining connection only, inside the
// critical section so it cannot race the connection's own unregister.
func (h *Hub) handleJoin(req joinRequest) {
	var (
		cameOnline      bool
		previousOffline string
	)

	h.mu.Lock()
	if !h.clients[req.conn] {
		// Connection already unregistered, the join loses the race.
		h.mu.Unlock()
		return
	}

	// Rebinding to a different user releases the old binding first.
	if prev := req.conn.userID; prev != "" && prev != req.userID {
		if wentOffline := h.removeBindingLocked(req.conn, prev); wentOffline {
			previousOffline = prev
		}
	}

	if _, online := h.users[req.userID]; !online {
		h.users[req.userID] = make(map[*Connection]bool)
		cameOnline = true
	}
	h.users[req.userID][req.conn] = true
	req.conn.userID = req.userID

	snapshot := h.onlineUsersLocked()
	if payload, err := realtime.EncodeEvent(realtime.EventTypeOnlineUsers, snapshot); err == nil {
		req.conn.trySend(payload)
	}
	h.mu.Unlock()

	if previousOffline != "" {
		h.broadcastPresence(realtime.EventTypeUserOffline, previousOffline)
	}
	if cameOnline {
		h.broadcastPresence(realtime.EventTypeUserOnline, req.userID)
	}
}

// handleUnregister removes a connection from the registry and closes its send
// buffer. Runs exactly once per connection, driven by the read pump's exit.
func (h *Hub) handleUnregister(client *Connection) {
	var wentOffline string

	h.mu.Lock()
	if !h.clients[client] {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	close(client.send)

	if userID := client.userID; userID != "" {
		if h.removeBindingLocked(client, userID) {
			wentOffline = userID
		}
	}
	h.mu.Unlock()

	if wentOffline != "" {
		h.broadcastPresence(realtime.EventTypeUserOffline, wentOffline)
	}
}

// removeBindingLocked drops a connection from a user's set and reports
// whether the user went offline. Caller must hold the write lock.
func (h *Hub) removeBindingLocked(client *Connection, userID string) bool {
	conns, ok := h.users[userID]
	if !ok {
		return false
	}
	delete(conns, client)
	if len(conns) > 0 {
		return false
	}
	delete(h.users, userID)
	return true
}

func (h *Hub) broadcastPresence(eventType realtime.EventType, userID string) {
	payload, err := realtime.EncodeEvent(eventType, userID)
	if err != nil {
		h.logger.Errorf(context.Background(), "encode %s event: %v", eventType, err)
		return
	}
	h.BroadcastAll(payload)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.users = make(map[string]map[*Connection]bool)
}

// SendToUser delivers a payload to every live connection of one user.
// Best effort: a no-op when the user has no connections, a drop when a
// connection's buffer is full.
func (h *Hub) SendToUser(userID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.users[userID] {
		client.trySend(payload)
	}
}

// SendToUsers delivers a payload to each user independently. Unreachable
// users do not affect delivery to the others.
func (h *Hub) SendToUsers(userIDs []string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]bool, len(userIDs))
	for _, userID := range userIDs {
		if seen[userID] {
			continue
		}
		seen[userID] = true
		for client := range h.users[userID] {
			client.trySend(payload)
		}
	}
}

// BroadcastAll delivers a payload to every registered connection, bound or
// not.
func (h *Hub) BroadcastAll(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		client.trySend(payload)
	}
}

// OnlineUsers returns a point-in-time copy of the online user set.
func (h *Hub) OnlineUsers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.onlineUsersLocked()
}

func (h *Hub) onlineUsersLocked() []string {
	users := make([]string, 0, len(h.users))
	for userID := range h.users {
		users = append(users, userID)
	}
	return users
}

// IsOnline reports whether the user has at least one live bound connection.
func (h *Hub) IsOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID]) > 0
}

// Stats returns the current statistics of the hub.
func (h *Hub) Stats() (int, int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients), len(h.users)
}
