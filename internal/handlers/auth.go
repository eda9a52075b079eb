package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iggarsaudev/reservas-padel/internal/service"
)

type AuthHandler struct {
	svc *service.AuthSvc
	log *zap.Logger
}

func NewAuthHandler(svc *service.AuthSvc, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	token, user, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
