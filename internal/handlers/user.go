package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iggarsaudev/reservas-padel/internal/domain"
	"github.com/iggarsaudev/reservas-padel/internal/middlewares"
	"github.com/iggarsaudev/reservas-padel/internal/service"
)

type UserHandler struct {
	svc *service.UserSvc
	log *zap.Logger
}

func NewUserHandler(svc *service.UserSvc, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// POST /api/users (public registration). The body carries no role; every
// account starts as a plain user and can only be promoted by an admin.
func (h *UserHandler) Register(c *gin.Context) {
	var in struct {
		Name     string `json:"name" binding:"required"`
		Surnames string `json:"surnames" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.svc.Register(c.Request.Context(), in.Name, in.Surnames, in.Email, in.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// GET /api/users (admin)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id (self or admin)
func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.svc.GetByID(c.Request.Context(), middlewares.PathID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type updateUserBody struct {
	Name     *string `json:"name"`
	Surnames *string `json:"surnames"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=user admin"`
	Avatar   *string `json:"avatar"`
}

// PUT /api/users/:id (self or admin)
func (h *UserHandler) Update(c *gin.Context) {
	var in updateUserBody
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	// owners may edit themselves, but only admins can touch roles
	if in.Role != nil && middlewares.UserRole(c) != string(domain.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only admins can change roles", "code": "forbidden"})
		return
	}
	u, err := h.svc.Update(c.Request.Context(), middlewares.PathID(c), service.UpdateUserInput{
		Name: in.Name, Surnames: in.Surnames, Email: in.Email,
		Password: in.Password, Role: in.Role, Avatar: in.Avatar,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /api/users/:id (self or admin)
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middlewares.PathID(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// GET /api/users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	u, err := h.svc.GetByID(c.Request.Context(), middlewares.UserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// PUT /api/users/profile updates only the caller's basic fields, never the role.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var in struct {
		Name     *string `json:"name"`
		Surnames *string `json:"surnames"`
		Avatar   *string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.svc.Update(c.Request.Context(), middlewares.UserID(c), service.UpdateUserInput{
		Name: in.Name, Surnames: in.Surnames, Avatar: in.Avatar,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// PUT /api/users/profile/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var in struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.ChangePassword(c.Request.Context(), middlewares.UserID(c), in.CurrentPassword, in.NewPassword); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
