package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this year and unit"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Reasons carried by InvalidTransitionError
const (
	ReasonTerminalPhase       = "period is already in terminal phase"
	ReasonMissingFinalityFlag = "finality flag is not set"
	ReasonUnknownPhase        = "unknown phase"
)

// InvalidTransitionError is returned when a period cannot move to a next phase
type InvalidTransitionError struct {
	From   string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.From != "" {
		return fmt.Sprintf("invalid phase transition from %s: %s", e.From, e.Reason)
	}
	return fmt.Sprintf("invalid phase transition: %s", e.Reason)
}

// Is matches any InvalidTransitionError when the target has no reason,
// otherwise only errors with the same reason.
func (e *InvalidTransitionError) Is(target error) bool {
	t, ok := target.(*InvalidTransitionError)
	if !ok {
		return false
	}
	return t.Reason == "" || e.Reason == t.Reason
}

// Entity Not Found Errors
var (
	ErrPeriodNotFound         = &NotFoundError{Entity: "period"}
	ErrTeamNotFound           = &NotFoundError{Entity: "team"}
	ErrTeamEvaluationNotFound = &NotFoundError{Entity: "team evaluation"}
	ErrEmployeeNotFound       = &NotFoundError{Entity: "employee"}
	ErrPeerEvaluationNotFound = &NotFoundError{Entity: "peer evaluation"}
	ErrTempEvaluationNotFound = &NotFoundError{Entity: "temp evaluation"}
	ErrKeywordNotFound        = &NotFoundError{Entity: "keyword"}
)

// Already Exists Errors
var (
	ErrPeriodExists = &AlreadyExistsError{Entity: "period", Context: "with this year, unit and order"}
)

// Phase Transition Errors
var (
	ErrInvalidTransition   = &InvalidTransitionError{}
	ErrTerminalPhase       = &InvalidTransitionError{Reason: ReasonTerminalPhase}
	ErrMissingFinalityFlag = &InvalidTransitionError{Reason: ReasonMissingFinalityFlag}
)

// Business Logic Errors
var (
	ErrAlreadySubmitted              = errors.New("evaluation has already been submitted")
	ErrIncompleteDownwardEvaluations = errors.New("not all downward evaluations are completed")
	ErrPeerEvaluationAlreadyOpened   = errors.New("peer evaluation has already been opened for this period")
	ErrPeriodAlreadyStarted          = errors.New("period can only be updated before evaluation starts")
	ErrInvalidDateRange              = errors.New("end date must not be before start date")
	ErrInvalidWeight                 = errors.New("weight must be between 0 and 100")
	ErrPeerEvaluationNotOpen         = errors.New("peer evaluation phase is not open")
)

// Concurrency Errors
var (
	ErrConcurrentModification = errors.New("record was modified concurrently, retry the operation")
	ErrPeriodLocked           = errors.New("period is being modified by another request")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	return errors.Is(err, ErrInvalidTransition)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given phase
func NewInvalidTransitionError(from, reason string) error {
	return &InvalidTransitionError{From: from, Reason: reason}
}
