package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/project-management-api/internal/apperrors"
	"github.com/mizuki-dev/project-management-api/internal/constants"
	"github.com/mizuki-dev/project-management-api/internal/database"
	"github.com/mizuki-dev/project-management-api/internal/models"
)

// RequireAuth checks if the user is authenticated via session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.SessionKeyUserID)

		if userID == nil {
			_ = c.Error(apperrors.Unauthorized("Authentication required."))
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// RequireManager allows the request through only when the authenticated
// user's type is the manager role.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			_ = c.Error(apperrors.Unauthorized("Authentication required."))
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().Preload("Type").First(&user, "id = ?", userID).Error; err != nil {
			_ = c.Error(apperrors.Forbidden("manager role required"))
			c.Abort()
			return
		}

		if !user.IsManager() {
			_ = c.Error(apperrors.Forbidden("manager role required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
