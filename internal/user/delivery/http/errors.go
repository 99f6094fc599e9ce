package http

import (
	"net/http"

	"chat-api/internal/user"
	pkgErrors "chat-api/pkg/errors"
	"chat-api/pkg/response"
)

var errBadRequest = pkgErrors.NewHTTPError(20000, "invalid request", http.StatusBadRequest)

var errorMapping = response.ErrorMapping{
	errBadRequest:            errBadRequest,
	user.ErrFieldRequired:    pkgErrors.NewHTTPError(20001, "field required", http.StatusBadRequest),
	user.ErrUserNotFound:     pkgErrors.NewHTTPError(20002, "user not found", http.StatusNotFound),
	user.ErrUsernameTaken:    pkgErrors.NewHTTPError(20003, "username already taken", http.StatusConflict),
	user.ErrEmailTaken:       pkgErrors.NewHTTPError(20004, "email already taken", http.StatusConflict),
	user.ErrWrongCredentials: pkgErrors.NewHTTPError(20005, "wrong credentials", http.StatusUnauthorized),
	user.ErrPasswordMismatch: pkgErrors.NewHTTPError(20006, "passwords do not match", http.StatusBadRequest),
}
