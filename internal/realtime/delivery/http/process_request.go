package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"chat-api/internal/realtime"
)

// processUpgradeRequest authenticates the upgrade request before handing the
// socket to the hub. Browsers cannot set an Authorization header on a
// WebSocket handshake, so the token is accepted from the query string, the
// auth cookie, or a bearer header in that order.
func (h *Handler) processUpgradeRequest(c *gin.Context) (UpgradeReq, string, error) {
	var req UpgradeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return UpgradeReq{}, "", realtime.ErrMissingToken
	}

	if req.Token == "" {
		if cookie, err := c.Cookie(h.cookieCfg.Name); err == nil {
			req.Token = cookie
		}
	}

	if req.Token == "" {
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			req.Token = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if err := req.validate(); err != nil {
		return UpgradeReq{}, "", err
	}

	payload, err := h.jwtMgr.Verify(req.Token)
	if err != nil {
		h.logger.Warnf(c.Request.Context(), "token verification failed: %v", err)
		return UpgradeReq{}, "", realtime.ErrInvalidToken
	}

	return req, payload.UserID, nil
}
