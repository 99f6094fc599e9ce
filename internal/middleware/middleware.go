package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"chat-api/pkg/response"
	"chat-api/pkg/scope"
)

// Auth returns a middleware that validates JWT tokens and sets the payload
// and scope in the request context. The token comes from the Authorization
// header or, for browser clients, the auth cookie.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			m.l.Warnf(c.Request.Context(), "missing auth token | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtMgr.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func (m Middleware) extractToken(c *gin.Context) string {
	const bearerPrefix = "Bearer "

	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, bearerPrefix) {
		return strings.TrimSpace(authHeader[len(bearerPrefix):])
	}

	if cookie, err := c.Cookie(m.cookieCfg.Name); err == nil {
		return cookie
	}

	return ""
}
