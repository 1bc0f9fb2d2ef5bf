package handlers

import (
	"errors"
	"net/http"

	apperrors "review-cycle-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// statusFor maps application errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsValidation(err),
		apperrors.IsInvalidTransition(err),
		errors.Is(err, apperrors.ErrIncompleteDownwardEvaluations),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrInvalidWeight):
		return http.StatusBadRequest
	case apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrAlreadySubmitted),
		errors.Is(err, apperrors.ErrPeerEvaluationAlreadyOpened),
		errors.Is(err, apperrors.ErrPeriodAlreadyStarted),
		errors.Is(err, apperrors.ErrPeerEvaluationNotOpen),
		errors.Is(err, apperrors.ErrConcurrentModification),
		errors.Is(err, apperrors.ErrPeriodLocked):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseIDParam parses a UUID path parameter, writing a 400 when it is malformed
func parseIDParam(c *gin.Context, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}
