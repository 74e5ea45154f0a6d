package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/infrastructure/backend"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
	"github.com/opticore/optipos/pkg/utils"
)

// AuthMiddleware validates the terminal session token, loads the stored
// session and attaches the remote bearer token to the request context so
// every downstream gateway call is authorized.
func AuthMiddleware(jwtManager *utils.JWTManager, sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateSessionToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), claims.ID)
		if err != nil {
			response.Unauthorized(c, "Session not found, please log in again")
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("session_id", session.ID)
		c.Set("user", &session.User)
		c.Set("user_id", session.User.ID)
		c.Set("user_email", session.User.Email)

		// All gateway calls for this request carry the store API token.
		c.Request = c.Request.WithContext(
			backend.WithToken(c.Request.Context(), session.Token))

		c.Next()
	}
}
