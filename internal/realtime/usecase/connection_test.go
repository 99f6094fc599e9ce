package usecase

import (
	"testing"
	"time"

	"chat-api/internal/realtime"
)

func TestHandleEventJoinBindsConnection(t *testing.T) {
	hub := newTestHub(t)

	conn := newTestConn(hub, "alice")
	if err := registerConn(t, hub, conn); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	conn.handleEvent([]byte(`{"event":"join","data":"alice"}`))
	time.Sleep(20 * time.Millisecond)

	if !hub.IsOnline("alice") {
		t.Error("valid join should bind the connection to its user")
	}
}

func TestHandleEventJoinIdentityMismatchIgnored(t *testing.T) {
	hub := newTestHub(t)

	conn := newTestConn(hub, "alice")
	if err := registerConn(t, hub, conn); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Joining as someone else than the token subject is ignored.
	conn.handleEvent([]byte(`{"event":"join","data":"mallory"}`))
	time.Sleep(20 * time.Millisecond)

	if hub.IsOnline("mallory") {
		t.Error("join for a foreign identity must not bind")
	}
	if hub.IsOnline("alice") {
		t.Error("a rejected join must not bind the authenticated identity either")
	}
}

func TestHandleEventMalformedIgnored(t *testing.T) {
	hub := newTestHub(t)

	conn := newTestConn(hub, "alice")
	if err := registerConn(t, hub, conn); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	for _, raw := range []string{
		`not json`,
		`{"event":"join"}`,
		`{"event":"join","data":""}`,
		`{"event":"join","data":42}`,
		`{"event":"launch","data":"alice"}`,
	} {
		conn.handleEvent([]byte(raw))
	}
	time.Sleep(20 * time.Millisecond)

	if got := len(hub.OnlineUsers()); got != 0 {
		t.Errorf("malformed events must not change presence, got %d online users", got)
	}

	_, online := hub.Stats()
	if online != 0 {
		t.Errorf("expected no online users, got %d", online)
	}
}

func TestTrySendDropsWhenFull(t *testing.T) {
	conn := &Connection{
		send:   make(chan []byte, 2),
		logger: &testLogger{},
	}

	conn.trySend([]byte("a"))
	conn.trySend([]byte("b"))
	conn.trySend([]byte("c")) // must not block

	if got := len(conn.send); got != 2 {
		t.Errorf("expected 2 buffered payloads, got %d", got)
	}
}

func TestEncodeEventShape(t *testing.T) {
	payload, err := realtime.EncodeEvent(realtime.EventTypeUserOnline, "alice")
	if err != nil {
		t.Fatalf("EncodeEvent returned error: %v", err)
	}
	if string(payload) != `{"event":"userOnline","data":"alice"}` {
		t.Errorf("unexpected wire shape: %s", payload)
	}
}
