package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"chat-api/internal/realtime"
)

// testLogger implements log.Logger for testing
type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := newHub(&testLogger{}, 0)
	go hub.run()
	t.Cleanup(func() {
		select {
		case <-hub.done:
		default:
			close(hub.done)
		}
	})
	return hub
}

func newTestConn(hub *Hub, authUserID string) *Connection {
	return &Connection{
		hub:        hub,
		authUserID: authUserID,
		send:       make(chan []byte, sendBufferSize),
		logger:     &testLogger{},
	}
}

func registerConn(t *testing.T, hub *Hub, conn *Connection) error {
	t.Helper()
	req := registerRequest{conn: conn, result: make(chan error, 1)}
	hub.register <- req
	return <-req.result
}

func registerAndJoin(t *testing.T, hub *Hub, userID string) *Connection {
	t.Helper()
	conn := newTestConn(hub, userID)
	if err := registerConn(t, hub, conn); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	hub.join <- joinRequest{conn: conn, userID: userID}
	time.Sleep(20 * time.Millisecond)
	return conn
}

// drainEvents decodes everything currently buffered on a connection.
func drainEvents(t *testing.T, conn *Connection) []realtime.Event {
	t.Helper()
	var events []realtime.Event
	for {
		select {
		case payload := <-conn.send:
			var event realtime.Event
			if err := json.Unmarshal(payload, &event); err != nil {
				t.Fatalf("malformed event on send buffer: %v", err)
			}
			events = append(events, event)
		default:
			return events
		}
	}
}

func presenceUser(t *testing.T, event realtime.Event) string {
	t.Helper()
	var userID string
	if err := json.Unmarshal(event.Data, &userID); err != nil {
		t.Fatalf("presence event data is not a user id: %v", err)
	}
	return userID
}

func TestHubJoinSendsSnapshot(t *testing.T) {
	hub := newTestHub(t)

	registerAndJoin(t, hub, "alice")
	conn := registerAndJoin(t, hub, "bob")

	events := drainEvents(t, conn)
	if len(events) == 0 {
		t.Fatal("joining connection should receive an onlineUsers snapshot")
	}
	if events[0].Event != realtime.EventTypeOnlineUsers {
		t.Fatalf("first event should be %s, got %s", realtime.EventTypeOnlineUsers, events[0].Event)
	}

	var snapshot []string
	if err := json.Unmarshal(events[0].Data, &snapshot); err != nil {
		t.Fatalf("snapshot data should be a string array: %v", err)
	}

	got := make(map[string]bool, len(snapshot))
	for _, userID := range snapshot {
		got[userID] = true
	}
	if !got["alice"] || !got["bob"] || len(snapshot) != 2 {
		t.Errorf("snapshot should contain exactly alice and bob, got %v", snapshot)
	}
}

func TestHubJoinBroadcastsUserOnline(t *testing.T) {
	hub := newTestHub(t)

	observer := registerAndJoin(t, hub, "alice")
	drainEvents(t, observer)

	registerAndJoin(t, hub, "bob")

	events := drainEvents(t, observer)
	if len(events) != 1 {
		t.Fatalf("observer should receive exactly one event, got %d", len(events))
	}
	if events[0].Event != realtime.EventTypeUserOnline {
		t.Errorf("expected %s, got %s", realtime.EventTypeUserOnline, events[0].Event)
	}
	if userID := presenceUser(t, events[0]); userID != "bob" {
		t.Errorf("expected userOnline for bob, got %s", userID)
	}
}

func TestHubSecondConnectionNoDuplicateOnline(t *testing.T) {
	hub := newTestHub(t)

	observer := registerAndJoin(t, hub, "alice")
	registerAndJoin(t, hub, "bob")
	drainEvents(t, observer)

	// Second connection for an already online user.
	second := registerAndJoin(t, hub, "bob")

	for _, event := range drainEvents(t, observer) {
		if event.Event == realtime.EventTypeUserOnline {
			t.Error("second connection of an online user must not broadcast userOnline")
		}
	}

	// The second connection still gets its own snapshot.
	events := drainEvents(t, second)
	if len(events) == 0 || events[0].Event != realtime.EventTypeOnlineUsers {
		t.Error("second connection should still receive the onlineUsers snapshot")
	}
}

func TestHubUserOfflineOnlyOnLastUnbind(t *testing.T) {
	hub := newTestHub(t)

	observer := registerAndJoin(t, hub, "alice")
	first := registerAndJoin(t, hub, "bob")
	second := registerAndJoin(t, hub, "bob")
	drainEvents(t, observer)

	hub.unregister <- first
	time.Sleep(20 * time.Millisecond)

	for _, event := range drainEvents(t, observer) {
		if event.Event == realtime.EventTypeUserOffline {
			t.Error("userOffline must not fire while the user still has a live connection")
		}
	}
	if online := hub.IsOnline("bob"); !online {
		t.Error("bob should still be online with one connection left")
	}

	hub.unregister <- second
	time.Sleep(20 * time.Millisecond)

	events := drainEvents(t, observer)
	if len(events) != 1 || events[0].Event != realtime.EventTypeUserOffline {
		t.Fatalf("closing the last connection should broadcast exactly one userOffline, got %v", events)
	}
	if userID := presenceUser(t, events[0]); userID != "bob" {
		t.Errorf("expected userOffline for bob, got %s", userID)
	}
	if online := hub.IsOnline("bob"); online {
		t.Error("bob should be offline after the last connection closed")
	}
}

func TestHubUnregisterWithoutJoin(t *testing.T) {
	hub := newTestHub(t)

	observer := registerAndJoin(t, hub, "alice")
	drainEvents(t, observer)

	// Connects and drops without ever joining.
	conn := newTestConn(hub, "ghost")
	if err := registerConn(t, hub, conn); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	hub.unregister <- conn
	time.Sleep(20 * time.Millisecond)

	if events := drainEvents(t, observer); len(events) != 0 {
		t.Errorf("unbound connection lifecycle should not broadcast presence, got %v", events)
	}

	users := hub.OnlineUsers()
	if len(users) != 1 || users[0] != "alice" {
		t.Errorf("online set should be unchanged, got %v", users)
	}
}

func TestHubRebindReleasesOldIdentity(t *testing.T) {
	hub := newTestHub(t)

	observer := registerAndJoin(t, hub, "alice")
	conn := registerAndJoin(t, hub, "bob")
	drainEvents(t, observer)
	drainEvents(t, conn)

	hub.join <- joinRequest{conn: conn, userID: "carol"}
	time.Sleep(20 * time.Millisecond)

	events := drainEvents(t, observer)
	if len(events) != 2 {
		t.Fatalf("rebind should broadcast userOffline then userOnline, got %v", events)
	}
	if events[0].Event != realtime.EventTypeUserOffline || presenceUser(t, events[0]) != "bob" {
		t.Errorf("first broadcast should be userOffline for bob, got %s %s", events[0].Event, events[0].Data)
	}
	if events[1].Event != realtime.EventTypeUserOnline || presenceUser(t, events[1]) != "carol" {
		t.Errorf("second broadcast should be userOnline for carol, got %s %s", events[1].Event, events[1].Data)
	}

	if hub.IsOnline("bob") {
		t.Error("bob should be offline after the rebind")
	}
	if !hub.IsOnline("carol") {
		t.Error("carol should be online after the rebind")
	}
}

func TestHubRejoinSameUserResendsSnapshotOnly(t *testing.T) {
	hub := newTestHub(t)

	observer := registerAndJoin(t, hub, "alice")
	conn := registerAndJoin(t, hub, "bob")
	drainEvents(t, observer)
	drainEvents(t, conn)

	hub.join <- joinRequest{conn: conn, userID: "bob"}
	time.Sleep(20 * time.Millisecond)

	if events := drainEvents(t, observer); len(events) != 0 {
		t.Errorf("re-join as the same user must not broadcast presence, got %v", events)
	}

	events := drainEvents(t, conn)
	if len(events) != 1 || events[0].Event != realtime.EventTypeOnlineUsers {
		t.Errorf("re-join should only resend the snapshot, got %v", events)
	}
}

func TestHubSendToUserOfflineIsNoop(t *testing.T) {
	hub := newTestHub(t)

	observer := registerAndJoin(t, hub, "alice")
	drainEvents(t, observer)

	hub.SendToUser("nobody", []byte(`{"event":"message","data":{}}`))
	time.Sleep(20 * time.Millisecond)

	if events := drainEvents(t, observer); len(events) != 0 {
		t.Errorf("sending to an offline user must not reach other users, got %v", events)
	}
}

func TestHubSendToUserReachesAllConnections(t *testing.T) {
	hub := newTestHub(t)

	first := registerAndJoin(t, hub, "bob")
	second := registerAndJoin(t, hub, "bob")
	other := registerAndJoin(t, hub, "alice")
	drainEvents(t, first)
	drainEvents(t, second)
	drainEvents(t, other)

	hub.SendToUser("bob", []byte(`{"event":"message","data":{}}`))

	for i, conn := range []*Connection{first, second} {
		select {
		case <-conn.send:
		default:
			t.Errorf("connection %d of bob should have received the payload", i)
		}
	}
	select {
	case <-other.send:
		t.Error("alice must not receive a payload targeted at bob")
	default:
	}
}

func TestHubSendToUsersDeduplicates(t *testing.T) {
	hub := newTestHub(t)

	conn := registerAndJoin(t, hub, "bob")
	drainEvents(t, conn)

	hub.SendToUsers([]string{"bob", "bob"}, []byte(`{"event":"message","data":{}}`))

	if got := len(drainEvents(t, conn)); got != 1 {
		t.Errorf("duplicate recipients should deliver once, got %d payloads", got)
	}
}

func TestHubFullBufferDoesNotBlockDelivery(t *testing.T) {
	hub := newTestHub(t)

	stalled := registerAndJoin(t, hub, "bob")
	healthy := registerAndJoin(t, hub, "bob")
	drainEvents(t, stalled)
	drainEvents(t, healthy)

	// Fill the stalled connection's buffer.
	for i := 0; i < sendBufferSize; i++ {
		stalled.send <- []byte(`{"event":"message","data":{}}`)
	}

	delivered := make(chan struct{})
	go func() {
		hub.SendToUser("bob", []byte(`{"event":"message","data":{}}`))
		close(delivered)
	}()

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("a full send buffer must not block delivery to other connections")
	}

	select {
	case <-healthy.send:
	default:
		t.Error("healthy connection should have received the payload")
	}
}

func TestHubConcurrentJoins(t *testing.T) {
	hub := newTestHub(t)

	const (
		numUsers    = 10
		connsPerUsr = 10
	)

	var wg sync.WaitGroup
	for u := 0; u < numUsers; u++ {
		userID := fmt.Sprintf("user-%d", u)
		for c := 0; c < connsPerUsr; c++ {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				conn := newTestConn(hub, userID)
				req := registerRequest{conn: conn, result: make(chan error, 1)}
				hub.register <- req
				if err := <-req.result; err != nil {
					t.Errorf("register failed: %v", err)
					return
				}
				hub.join <- joinRequest{conn: conn, userID: userID}
			}(userID)
		}
	}
	wg.Wait()
	time.Sleep(50 * time.Millisecond)

	active, online := hub.Stats()
	if active != numUsers*connsPerUsr {
		t.Errorf("expected %d active connections, got %d", numUsers*connsPerUsr, active)
	}
	if online != numUsers {
		t.Errorf("expected %d online users, got %d", numUsers, online)
	}
	if got := len(hub.OnlineUsers()); got != numUsers {
		t.Errorf("OnlineUsers should list %d users, got %d", numUsers, got)
	}

	hub.mu.RLock()
	for u := 0; u < numUsers; u++ {
		userID := fmt.Sprintf("user-%d", u)
		if got := len(hub.users[userID]); got != connsPerUsr {
			t.Errorf("user %s should have %d connections, got %d", userID, connsPerUsr, got)
		}
	}
	hub.mu.RUnlock()
}

func TestHubConcurrentRegistrationsHonorCap(t *testing.T) {
	const (
		maxConns = 5
		attempts = 20
	)

	hub := newHub(&testLogger{}, maxConns)
	go hub.run()
	t.Cleanup(func() { close(hub.done) })

	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := newTestConn(hub, "alice")
			req := registerRequest{conn: conn, result: make(chan error, 1)}
			hub.register <- req
			results <- <-req.result
		}()
	}
	wg.Wait()
	close(results)

	var accepted, rejected int
	for err := range results {
		switch err {
		case nil:
			accepted++
		case realtime.ErrMaxConnectionsReached:
			rejected++
		default:
			t.Fatalf("unexpected register error: %v", err)
		}
	}

	if accepted != maxConns {
		t.Errorf("expected exactly %d accepted registrations, got %d", maxConns, accepted)
	}
	if rejected != attempts-maxConns {
		t.Errorf("expected %d rejected registrations, got %d", attempts-maxConns, rejected)
	}

	active, _ := hub.Stats()
	if active != maxConns {
		t.Errorf("registry should hold exactly %d connections, got %d", maxConns, active)
	}
}

func TestHubShutdownClosesConnections(t *testing.T) {
	hub := newHub(&testLogger{}, 0)
	go hub.run()

	conn := newTestConn(hub, "alice")
	if err := registerConn(t, hub, conn); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	hub.join <- joinRequest{conn: conn, userID: "alice"}
	time.Sleep(20 * time.Millisecond)

	close(hub.done)
	time.Sleep(20 * time.Millisecond)

	// Drain the snapshot, then the channel must be closed.
	for {
		if _, ok := <-conn.send; !ok {
			break
		}
	}

	active, online := hub.Stats()
	if active != 0 || online != 0 {
		t.Errorf("shutdown should clear the registry, got %d connections %d users", active, online)
	}
}
