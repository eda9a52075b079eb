package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iggarsaudev/reservas-padel/internal/middlewares"
	"github.com/iggarsaudev/reservas-padel/internal/service"
)

type CourtHandler struct {
	svc *service.CourtSvc
	log *zap.Logger
}

func NewCourtHandler(svc *service.CourtSvc, log *zap.Logger) *CourtHandler {
	return &CourtHandler{svc: svc, log: log}
}

// GET /api/courts
func (h *CourtHandler) List(c *gin.Context) {
	courts, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, courts)
}

// GET /api/courts/:id
func (h *CourtHandler) Get(c *gin.Context) {
	court, err := h.svc.GetByID(c.Request.Context(), middlewares.PathID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, court)
}

// POST /api/courts (admin)
func (h *CourtHandler) Create(c *gin.Context) {
	var in struct {
		Name        string  `json:"name" binding:"required"`
		Type        string  `json:"type" binding:"omitempty,oneof=INDOOR OUTDOOR"`
		Surface     string  `json:"surface" binding:"omitempty,oneof=MURO CRISTAL"`
		Price       float64 `json:"price" binding:"required"`
		IsAvailable *bool   `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	court, err := h.svc.Create(c.Request.Context(), service.CreateCourtInput{
		Name: in.Name, Type: in.Type, Surface: in.Surface,
		Price: in.Price, IsAvailable: in.IsAvailable,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, court)
}

// PUT /api/courts/:id (admin)
func (h *CourtHandler) Update(c *gin.Context) {
	var in struct {
		Name        *string  `json:"name"`
		Type        *string  `json:"type" binding:"omitempty,oneof=INDOOR OUTDOOR"`
		Surface     *string  `json:"surface" binding:"omitempty,oneof=MURO CRISTAL"`
		Price       *float64 `json:"price"`
		IsAvailable *bool    `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	court, err := h.svc.Update(c.Request.Context(), middlewares.PathID(c), service.UpdateCourtInput{
		Name: in.Name, Type: in.Type, Surface: in.Surface,
		Price: in.Price, IsAvailable: in.IsAvailable,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, court)
}

// DELETE /api/courts/:id (admin)
func (h *CourtHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middlewares.PathID(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "court deleted"})
}
