package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chat-api/pkg/response"
)

// HandleWebSocket upgrades the HTTP connection to a WebSocket connection and
// registers it with the hub. The connection starts unbound; the client binds
// it by sending a join event.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	_, userID, err := h.processUpgradeRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  h.wsConfig.ReadBufferSize,
		WriteBufferSize: h.wsConfig.WriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "websocket upgrade failed: %v", err)
		return
	}

	if err := h.uc.Register(c.Request.Context(), UpgradeReq{}.toInput(conn, userID)); err != nil {
		h.logger.Errorf(c.Request.Context(), "websocket register failed for user %s: %v", userID, err)
		conn.Close()
		return
	}
}

// HandleStats returns hub statistics.
func (h *Handler) HandleStats(c *gin.Context) {
	stats, err := h.uc.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// HandleOnlineUsers returns the current online user set.
func (h *Handler) HandleOnlineUsers(c *gin.Context) {
	users, err := h.uc.OnlineUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}
