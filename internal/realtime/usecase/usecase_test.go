package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"chat-api/internal/model"
	"chat-api/internal/realtime"
)

func newTestUseCase(t *testing.T, config realtime.ConnectionConfig) *implUseCase {
	t.Helper()
	uc := New(&testLogger{}, config).(*implUseCase)
	go uc.Run()
	t.Cleanup(func() {
		select {
		case <-uc.hub.done:
		default:
			uc.Shutdown(context.Background())
		}
	})
	return uc
}

func TestRegisterRejectsInvalidConnection(t *testing.T) {
	uc := newTestUseCase(t, realtime.ConnectionConfig{})

	err := uc.Register(context.Background(), realtime.ConnectionInput{
		UserID: "alice",
		Conn:   "not a websocket connection",
	})
	if err != realtime.ErrInvalidConnection {
		t.Errorf("expected ErrInvalidConnection, got %v", err)
	}
}

func TestRegisterRejectsWhenFull(t *testing.T) {
	uc := newTestUseCase(t, realtime.ConnectionConfig{MaxConnections: 1})

	// Occupy the single slot straight through the hub.
	conn := newTestConn(uc.hub, "alice")
	if err := registerConn(t, uc.hub, conn); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	err := uc.Register(context.Background(), realtime.ConnectionInput{
		UserID: "bob",
		Conn:   (*websocket.Conn)(nil),
	})
	if err != realtime.ErrMaxConnectionsReached {
		t.Errorf("expected ErrMaxConnectionsReached, got %v", err)
	}
}

func TestRegisterAfterShutdown(t *testing.T) {
	uc := New(&testLogger{}, realtime.ConnectionConfig{}).(*implUseCase)
	go uc.Run()
	uc.Shutdown(context.Background())
	time.Sleep(20 * time.Millisecond)

	err := uc.Register(context.Background(), realtime.ConnectionInput{
		UserID: "alice",
		Conn:   (*websocket.Conn)(nil),
	})
	if err != realtime.ErrHubClosed {
		t.Errorf("expected ErrHubClosed, got %v", err)
	}
}

func TestNotifyMessageDeliversToBothParticipants(t *testing.T) {
	uc := newTestUseCase(t, realtime.ConnectionConfig{})

	sender := registerAndJoin(t, uc.hub, "alice")
	receiver := registerAndJoin(t, uc.hub, "bob")
	drainEvents(t, sender)
	drainEvents(t, receiver)

	body := "hello"
	msg := &model.Message{
		ID:             "msg-1",
		ConversationID: "conv-1",
		SenderID:       "alice",
		ReceiverID:     "bob",
		Body:           &body,
		CreatedAt:      time.Now(),
	}

	if err := uc.NotifyMessage(context.Background(), msg, []string{"alice", "bob"}); err != nil {
		t.Fatalf("NotifyMessage returned error: %v", err)
	}

	for _, conn := range []*Connection{sender, receiver} {
		events := drainEvents(t, conn)
		if len(events) != 1 {
			t.Fatalf("expected one event for %s, got %d", conn.authUserID, len(events))
		}
		if events[0].Event != realtime.EventTypeMessage {
			t.Errorf("expected %s event, got %s", realtime.EventTypeMessage, events[0].Event)
		}

		var got model.Message
		if err := json.Unmarshal(events[0].Data, &got); err != nil {
			t.Fatalf("message payload should decode into model.Message: %v", err)
		}
		if got.ID != msg.ID || got.SenderID != "alice" || got.Body == nil || *got.Body != body {
			t.Errorf("unexpected message payload: %+v", got)
		}
	}
}

func TestDeliverRawTargetsSingleUser(t *testing.T) {
	uc := newTestUseCase(t, realtime.ConnectionConfig{})

	target := registerAndJoin(t, uc.hub, "bob")
	other := registerAndJoin(t, uc.hub, "alice")
	drainEvents(t, target)
	drainEvents(t, other)

	payload := []byte(`{"event":"message","data":{"id":"msg-1"}}`)
	if err := uc.DeliverRaw(context.Background(), "bob", payload); err != nil {
		t.Fatalf("DeliverRaw returned error: %v", err)
	}

	select {
	case got := <-target.send:
		if string(got) != string(payload) {
			t.Errorf("payload must pass through untouched, got %s", got)
		}
	default:
		t.Error("target user should have received the raw payload")
	}

	select {
	case <-other.send:
		t.Error("other users must not receive a targeted raw payload")
	default:
	}
}

func TestGetStats(t *testing.T) {
	uc := newTestUseCase(t, realtime.ConnectionConfig{})

	registerAndJoin(t, uc.hub, "alice")
	registerAndJoin(t, uc.hub, "alice")
	registerAndJoin(t, uc.hub, "bob")

	stats, err := uc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats returned error: %v", err)
	}
	if stats.ActiveConnections != 3 {
		t.Errorf("expected 3 active connections, got %d", stats.ActiveConnections)
	}
	if stats.OnlineUsers != 2 {
		t.Errorf("expected 2 online users, got %d", stats.OnlineUsers)
	}
}
