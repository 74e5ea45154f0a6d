package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// SessionHandler handles login, session restore and logout
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges credentials for a terminal session token
func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	out, err := h.sessions.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"token": out.Token,
		"user":  out.Session.User,
	})
}

// Me returns the cached session profile
func (h *SessionHandler) Me(c *gin.Context) {
	response.OK(c, "Session active", GetUser(c))
}

// Refresh re-fetches the profile from the store API so permission changes
// apply without re-login
func (h *SessionHandler) Refresh(c *gin.Context) {
	session, err := h.sessions.RefreshProfile(c.Request.Context(), GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Session refreshed", session.User)
}

// Logout discards the terminal session
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context(), GetSessionID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logged out", nil)
}
