package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/claims-copilot/backend/internal/models"
	"github.com/claims-copilot/backend/internal/session"
)

// SessionKey is where RequireSession parks the resolved session in the
// gin context.
const SessionKey = "session"

// RequireSession guards authenticated routes. The API cannot navigate
// a browser, so the 401 body carries the redirect the client applies.
func RequireSession(sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortRedirect(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Login required", "/login")
			return
		}
		s, err := sessions.Get(token)
		if err != nil {
			abortRedirect(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Session expired or unknown", "/login")
			return
		}
		c.Set(SessionKey, s)
		c.Next()
	}
}

// RequireAccess guards routes tied to a role-restricted dashboard
// path. Runs after RequireSession. The decision comes from the same
// capability table the navigation endpoint serves, so what the menu
// shows and what the guard enforces cannot diverge. A wrong role is
// not an error surface: the client is sent back to the default
// landing view.
func RequireAccess(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			abortRedirect(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Login required", "/login")
			return
		}
		if !session.Allowed(s.User.Role, path) {
			abortRedirect(c, http.StatusForbidden, "FORBIDDEN_ROLE", "Insufficient role", "/workspace")
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session RequireSession resolved.
func CurrentSession(c *gin.Context) (models.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return models.Session{}, false
	}
	s, ok := v.(models.Session)
	return s, ok
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, prefix))
}

func abortRedirect(c *gin.Context, status int, code, message, redirect string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":     code,
			"message":  message,
			"redirect": redirect,
		},
	})
}
