package http

import (
	"net/http"

	"chat-api/internal/realtime"
	pkgErrors "chat-api/pkg/errors"
	"chat-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	realtime.ErrMissingToken:          pkgErrors.NewHTTPError(10001, "missing token", http.StatusUnauthorized),
	realtime.ErrInvalidToken:          pkgErrors.NewHTTPError(10002, "invalid or expired token", http.StatusUnauthorized),
	realtime.ErrMaxConnectionsReached: pkgErrors.NewHTTPError(10003, "maximum connections reached", http.StatusServiceUnavailable),
}
