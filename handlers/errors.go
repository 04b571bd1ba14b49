package handlers

import (
	"errors"
	"net/http"

	"glamazon/services/appointment"
	"glamazon/services/user"
	"glamazon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError translates service sentinel errors into HTTP statuses.
// Anything unrecognized is logged and returned as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrInvalidInput),
		errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, user.ErrInvalidOTP),
		errors.Is(err, user.ErrWeakPassword),
		errors.Is(err, appointment.ErrInvalidInput),
		errors.Is(err, appointment.ErrPastDate),
		errors.Is(err, appointment.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, appointment.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, appointment.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Unhandled service error",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
