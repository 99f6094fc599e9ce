package model

// Scope carries the authenticated identity of a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	JTI      string `json:"jti"`
}
