package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
)

// ParseID reads the :id path parameter as a UUID and answers 400 when it is not one.
func ParseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, apperrors.NewValidation("id", "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}
