package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// UserFrom returns the authenticated user placed in the context by
// AuthMiddleware.
func UserFrom(c *gin.Context) *entity.User {
	value, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, _ := value.(*entity.User)
	return user
}

// SessionIDFrom returns the terminal session ID for the request.
func SessionIDFrom(c *gin.Context) string {
	return c.GetString("session_id")
}

// RequirePermission gates a route group on one permission code. ADMIN and
// ADMINISTRATIVE roles pass every gate; everyone else needs the code in
// their permission set. A denied request gets an explicit 403 so the client
// can say why, rather than silently bouncing to the home screen.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := UserFrom(c)
		if user == nil {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		if !user.HasPermission(permission) {
			response.Forbidden(c, "You do not have permission to perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}
