package usecase

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"

	"chat-api/internal/model"
	"chat-api/internal/realtime"
	"chat-api/pkg/log"
)

// implUseCase implements realtime.UseCase.
type implUseCase struct {
	hub    *Hub
	logger log.Logger
	config realtime.ConnectionConfig
}

var _ realtime.Notifier = &implUseCase{}

// New creates a new realtime UseCase.
func New(logger log.Logger, config realtime.ConnectionConfig) realtime.UseCase {
	return &implUseCase{
		hub:    newHub(logger, config.MaxConnections),
		logger: logger,
		config: config,
	}
}

func (uc *implUseCase) Run() {
	uc.hub.run()
}

func (uc *implUseCase) Shutdown(ctx context.Context) error {
	close(uc.hub.done)
	return nil
}

func (uc *implUseCase) Register(ctx context.Context, input realtime.ConnectionInput) error {
	conn, ok := input.Conn.(*websocket.Conn)
	if !ok {
		return realtime.ErrInvalidConnection
	}

	client := &Connection{
		hub:        uc.hub,
		conn:       conn,
		authUserID: input.UserID,
		send:       make(chan []byte, sendBufferSize),
		config:     uc.config,
		logger:     uc.logger,
	}

	// The connection cap is applied by the run loop, atomically with the
	// registry insert.
	req := registerRequest{conn: client, result: make(chan error, 1)}
	select {
	case uc.hub.register <- req:
	case <-uc.hub.done:
		return realtime.ErrHubClosed
	}
	if err := <-req.result; err != nil {
		return err
	}

	// Start the pumps
	go client.writePump()
	go client.readPump()

	return nil
}

func (uc *implUseCase) OnlineUsers(ctx context.Context) ([]string, error) {
	return uc.hub.OnlineUsers(), nil
}

func (uc *implUseCase) IsOnline(ctx context.Context, userID string) (bool, error) {
	return uc.hub.IsOnline(userID), nil
}

func (uc *implUseCase) GetStats(ctx context.Context) (realtime.HubStats, error) {
	active, online := uc.hub.Stats()
	return realtime.HubStats{
		ActiveConnections: active,
		OnlineUsers:       online,
	}, nil
}

func (uc *implUseCase) NotifyMessage(ctx context.Context, msg *model.Message, recipients []string) error {
	payload, err := realtime.EncodeEvent(realtime.EventTypeMessage, msg)
	if err != nil {
		return fmt.Errorf("encode message event: %w", err)
	}

	uc.hub.SendToUsers(recipients, payload)
	return nil
}

func (uc *implUseCase) DeliverRaw(ctx context.Context, userID string, payload []byte) error {
	uc.hub.SendToUser(userID, payload)
	return nil
}
