package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iggarsaudev/reservas-padel/internal/domain"
	"github.com/iggarsaudev/reservas-padel/internal/middlewares"
	"github.com/iggarsaudev/reservas-padel/internal/service"
)

type ReservationHandler struct {
	svc *service.ReservationSvc
	log *zap.Logger
}

func NewReservationHandler(svc *service.ReservationSvc, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{svc: svc, log: log}
}

func isAdmin(c *gin.Context) bool {
	return middlewares.UserRole(c) == string(domain.RoleAdmin)
}

// POST /api/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var in struct {
		CourtID   uint      `json:"courtId" binding:"required"`
		StartTime time.Time `json:"startTime" binding:"required"`
		EndTime   time.Time `json:"endTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.svc.Create(c.Request.Context(), middlewares.UserID(c), in.CourtID, in.StartTime, in.EndTime)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GET /api/reservations: admin sees all, everyone else their own.
func (h *ReservationHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), middlewares.UserID(c), isAdmin(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/reservations/:id
func (h *ReservationHandler) Cancel(c *gin.Context) {
	err := h.svc.Cancel(c.Request.Context(), middlewares.PathID(c), middlewares.UserID(c), isAdmin(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation cancelled"})
}
