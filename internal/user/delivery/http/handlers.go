package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-api/pkg/response"
	"chat-api/pkg/scope"
)

// Register creates a new account and issues a token.
func (h *Handler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.Register.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, errBadRequest, errorMapping)
		return
	}

	out, err := h.uc.Register(c.Request.Context(), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	h.setAuthCookie(c, out.Token)
	response.Created(c, newAuthResp(out))
}

// Login verifies credentials and issues a token, both in the body and as an
// HttpOnly cookie.
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.Login.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, errBadRequest, errorMapping)
		return
	}

	out, err := h.uc.Login(c.Request.Context(), req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	h.setAuthCookie(c, out.Token)
	response.OK(c, newAuthResp(out))
}

// Logout clears the auth cookie. Tokens are stateless, so this only affects
// cookie-based clients.
func (h *Handler) Logout(c *gin.Context) {
	h.clearAuthCookie(c)
	response.OK(c, nil)
}

// DetailMe returns the authenticated user's profile.
func (h *Handler) DetailMe(c *gin.Context) {
	sc := scope.GetScopeFromContext(c.Request.Context())

	out, err := h.uc.DetailMe(c.Request.Context(), sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newUserItem(out.User))
}

// Detail returns one user's public profile.
func (h *Handler) Detail(c *gin.Context) {
	sc := scope.GetScopeFromContext(c.Request.Context())

	out, err := h.uc.Detail(c.Request.Context(), sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newUserItem(out.User))
}

// UpdateProfile updates the authenticated user's profile fields.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.UpdateProfile.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, errBadRequest, errorMapping)
		return
	}

	sc := scope.GetScopeFromContext(c.Request.Context())

	out, err := h.uc.UpdateProfile(c.Request.Context(), sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newUserItem(out.User))
}

// Delete soft-deletes the authenticated user's account and clears the cookie.
func (h *Handler) Delete(c *gin.Context) {
	sc := scope.GetScopeFromContext(c.Request.Context())

	if err := h.uc.Delete(c.Request.Context(), sc); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	h.clearAuthCookie(c)
	response.OK(c, nil)
}

// List returns the paginated user directory, excluding the caller.
func (h *Handler) List(c *gin.Context) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.List.ShouldBindQuery: %v", err)
		response.ErrorWithMap(c, errBadRequest, errorMapping)
		return
	}

	sc := scope.GetScopeFromContext(c.Request.Context())

	out, err := h.uc.Get(c.Request.Context(), sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newListResp(out))
}

func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(parseSameSite(h.cookieCfg.SameSite))
	c.SetCookie(h.cookieCfg.Name, token, h.cookieCfg.MaxAge, "/", h.cookieCfg.Domain, h.cookieCfg.Secure, true)
}

func (h *Handler) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(parseSameSite(h.cookieCfg.SameSite))
	c.SetCookie(h.cookieCfg.Name, "", -1, "/", h.cookieCfg.Domain, h.cookieCfg.Secure, true)
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
