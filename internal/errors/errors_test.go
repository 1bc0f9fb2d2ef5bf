package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "period"}
		assert.Equal(t, "period not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "period"}
		err2 := &NotFoundError{Entity: "period"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "period"}
		err2 := &NotFoundError{Entity: "employee"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to load: %w", ErrTeamEvaluationNotFound)
		assert.True(t, errors.Is(wrapped, ErrTeamEvaluationNotFound))
		assert.False(t, errors.Is(wrapped, ErrPeriodNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrEmployeeNotFound))
		assert.False(t, IsNotFound(ErrAlreadySubmitted))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "period", Context: "for 2025"}
		assert.Equal(t, "period already exists for 2025", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "period"}
		assert.Equal(t, "period already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrPeriodExists))
		assert.False(t, IsAlreadyExists(ErrPeriodNotFound))
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("Error message with phase", func(t *testing.T) {
		err := NewInvalidTransitionError("COMPLETED", ReasonTerminalPhase)
		assert.Equal(t, "invalid phase transition from COMPLETED: period is already in terminal phase", err.Error())
	})

	t.Run("generic sentinel matches every reason", func(t *testing.T) {
		assert.True(t, errors.Is(NewInvalidTransitionError("COMPLETED", ReasonTerminalPhase), ErrInvalidTransition))
		assert.True(t, errors.Is(NewInvalidTransitionError("PEER_EVALUATION", ReasonMissingFinalityFlag), ErrInvalidTransition))
	})

	t.Run("reason sentinels only match their reason", func(t *testing.T) {
		err := NewInvalidTransitionError("REPORT_GENERATION", ReasonMissingFinalityFlag)
		assert.True(t, errors.Is(err, ErrMissingFinalityFlag))
		assert.False(t, errors.Is(err, ErrTerminalPhase))
	})

	t.Run("IsInvalidTransition helper", func(t *testing.T) {
		assert.True(t, IsInvalidTransition(fmt.Errorf("advance: %w", ErrTerminalPhase)))
		assert.False(t, IsInvalidTransition(ErrAlreadySubmitted))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "weight", Message: "must be positive"}
		assert.Equal(t, "validation error: weight - must be positive", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid input"}
		assert.Equal(t, "validation error: invalid input", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("year", "required")))
		assert.False(t, IsValidation(ErrPeriodNotFound))
	})
}
