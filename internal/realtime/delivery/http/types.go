package http

import (
	"chat-api/internal/realtime"

	"github.com/gorilla/websocket"
)

// UpgradeReq carries the query parameters of a WebSocket upgrade request.
type UpgradeReq struct {
	Token string `form:"token"`
}

func (req UpgradeReq) validate() error {
	if req.Token == "" {
		return realtime.ErrMissingToken
	}
	return nil
}

func (req UpgradeReq) toInput(conn *websocket.Conn, userID string) realtime.ConnectionInput {
	return realtime.ConnectionInput{
		UserID: userID,
		Conn:   conn,
	}
}
