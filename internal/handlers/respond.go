package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iggarsaudev/reservas-padel/internal/domain"
)

// respondError is the single place where domain failures become HTTP.
// Unknown errors are logged and reported as a bare 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	status, code := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, domain.ErrInvalidTimeRange):
		status, code = http.StatusBadRequest, "invalid_time_range"
	case errors.Is(err, domain.ErrPastStart):
		status, code = http.StatusBadRequest, "past_start"
	case errors.Is(err, domain.ErrInvalidPrice):
		status, code = http.StatusBadRequest, "bad_request"
	case errors.Is(err, domain.ErrInvalidPassword):
		status, code = http.StatusBadRequest, "invalid_password"
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, code = http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, domain.ErrNotReservationOwner):
		status, code = http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrCourtNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrTimeSlotTaken):
		status, code = http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrEmailTaken):
		status, code = http.StatusConflict, "email_taken"
	}
	if status == http.StatusInternalServerError {
		log.Error("unexpected error", zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error", "code": code})
		return
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "bad_request"})
}
