package middleware

import (
	"errors"

	"github.com/Ani07-05/brickdash/internal/database"
	apierrors "github.com/Ani07-05/brickdash/internal/errors"
	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const contextKeyRole = "user_role"

// RequireRole restricts a route to users holding one of the given
// roles. It must run after RequireAuth.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Unauthorized(c, "")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Set(contextKeyRole, user.Role)
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "Insufficient role")
		c.Abort()
	}
}

// GetUserRole retrieves the current user's role from context, if a
// role-gated middleware already resolved it.
func GetUserRole(c *gin.Context) (models.UserRole, bool) {
	role, exists := c.Get(contextKeyRole)
	if !exists {
		return "", false
	}
	r, ok := role.(models.UserRole)
	return r, ok
}
