package middleware

import (
	"github.com/gin-gonic/gin"

	"chat-api/pkg/log"
	"chat-api/pkg/response"
)

// Recovery returns a middleware that recovers from panics, logs them and
// responds with a generic error envelope.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorf(c.Request.Context(), "panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
