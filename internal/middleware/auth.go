package middleware

import (
	"github.com/Ani07-05/brickdash/internal/constants"
	apierrors "github.com/Ani07-05/brickdash/internal/errors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests that carry no authenticated session.
// On success the user id from the session is copied onto the request
// context so handlers and the role gate can read it without touching
// the session again.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := sessions.Default(c).Get(constants.ContextKeyUserID)
		if raw == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, raw)
		c.Next()
	}
}

// GetUserID returns the authenticated user's id from the request
// context. Cookie stores round-trip the value through gob, so it may
// come back in a different integer width than it was saved with.
func GetUserID(c *gin.Context) (uint64, bool) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch id := raw.(type) {
	case uint64:
		return id, true
	case uint:
		return uint64(id), true
	case int:
		if id < 0 {
			return 0, false
		}
		return uint64(id), true
	default:
		return 0, false
	}
}
