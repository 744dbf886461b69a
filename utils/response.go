package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
	"github.com/sharath018/event-registration-backend/internal/lifecycle"
	"github.com/sharath018/event-registration-backend/internal/validation"
)

// RespondError writes the JSON error body for err and picks the status code from its kind.
func RespondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	var terr *lifecycle.TransitionError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation error",
			"details": verr.Details(),
			"fields":  verr.Fields,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &terr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Invalid transition",
			"code":      "INVALID_TRANSITION",
			"details":   terr.Error(),
			"available": lifecycle.Available(terr.From),
		})
	case errors.Is(err, lifecycle.ErrUnknownOperation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
	case errors.Is(err, lifecycle.ErrConfirmationRequired):
		c.JSON(http.StatusPreconditionRequired, gin.H{
			"error":   "Confirmation required",
			"code":    "CONFIRMATION_REQUIRED",
			"details": err.Error(),
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("❌ request failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": err.Error(),
		})
	}
}

// RespondBindError reports a failed ShouldBind* call as a 400.
func RespondBindError(c *gin.Context, err error) {
	RespondError(c, validation.Translate(err))
}
