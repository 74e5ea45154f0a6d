package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/presentation/http/dto/response"
	"github.com/opticore/optipos/internal/presentation/menu"
)

// MenuHandler serves the navigation entries visible to the session
type MenuHandler struct{}

// NewMenuHandler creates a new menu handler
func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// List returns the navigation entries the authenticated user may open
func (h *MenuHandler) List(c *gin.Context) {
	response.OK(c, "Menu retrieved", menu.VisibleTo(GetUser(c)))
}
