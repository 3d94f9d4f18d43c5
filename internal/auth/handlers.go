package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionValidateResponse represents the response of the session validation endpoint
type SessionValidateResponse struct {
	Valid    bool      `json:"valid" example:"true"`
	Identity *Identity `json:"identity"`
}

// SessionHandler exposes session introspection and logout. Sign-in is handled
// by the external identity provider that sets the session cookie.
type SessionHandler struct {
	sessions *SessionManager
	guard    *Guard
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *SessionManager, guard *Guard) *SessionHandler {
	return &SessionHandler{sessions: sessions, guard: guard}
}

// Validate handles GET /api/v1/auth/session
// @Summary Validate the current session
// @Description Return the identity carried by the session cookie or bearer token
// @Tags authentication
// @Produce json
// @Success 200 {object} SessionValidateResponse "Session is valid"
// @Failure 401 {object} map[string]interface{} "No valid session"
// @Router /api/v1/auth/session [get]
func (h *SessionHandler) Validate(c *gin.Context) {
	user, denial := h.guard.RequireAuth(c)
	if denial != nil {
		Abort(c, denial)
		return
	}

	c.JSON(http.StatusOK, SessionValidateResponse{Valid: true, Identity: user})
}

// Logout handles POST /api/v1/auth/logout
// @Summary Logout
// @Description Clear the session cookie. Tokens are stateless and expire on their own.
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully logged out"
// @Router /api/v1/auth/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessions.CookieName(), "", -1, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
