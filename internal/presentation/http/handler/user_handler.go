package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/enum"
	"github.com/opticore/optipos/internal/presentation/http/dto/response"
)

// UserHandler handles the user administration screen
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Users retrieved", users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User retrieved", user)
}

type createUserRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required"`
	Role        string   `json:"role" binding:"required"`
	Permissions []string `json:"permissions"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name, email, password and role are required")
		return
	}

	user := &entity.User{
		Name:        req.Name,
		Email:       req.Email,
		Role:        enum.Role(req.Role),
		Permissions: req.Permissions,
	}
	created, err := h.users.Create(c.Request.Context(), user, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User created", created)
}

func (h *UserHandler) Update(c *gin.Context) {
	var user entity.User
	if err := c.ShouldBindJSON(&user); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.users.Update(c.Request.Context(), c.Param("id"), &user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User updated", updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Permissions returns the catalog of assignable permission codes
func (h *UserHandler) Permissions(c *gin.Context) {
	codes, err := h.users.Permissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Permissions retrieved", codes)
}
