package service

import (
	"context"

	"review-cycle-backend/internal/database/models"
	apperrors "review-cycle-backend/internal/errors"
	"review-cycle-backend/internal/logger"
	"review-cycle-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TempEvaluationService handles the manager's draft evaluation of each member
type TempEvaluationService struct {
	teamEvaluationRepo repository.TeamEvaluationRepositoryInterface
	employeeRepo       repository.EmployeeRepositoryInterface
	tempEvaluationRepo repository.TempEvaluationRepositoryInterface
	validator          *validator.Validate
}

// NewTempEvaluationService creates a new temp evaluation service
func NewTempEvaluationService(teamEvaluationRepo repository.TeamEvaluationRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, tempEvaluationRepo repository.TempEvaluationRepositoryInterface, validator *validator.Validate) *TempEvaluationService {
	return &TempEvaluationService{
		teamEvaluationRepo: teamEvaluationRepo,
		employeeRepo:       employeeRepo,
		tempEvaluationRepo: tempEvaluationRepo,
		validator:          validator,
	}
}

// UpdateTempEvaluationRequest represents the manager's draft for one member
type UpdateTempEvaluationRequest struct {
	Score   *float64 `json:"score" validate:"required,min=0,max=5" example:"4.5"`
	Comment string   `json:"comment" validate:"max=2000"`
	Reason  string   `json:"reason" validate:"max=2000"`
}

// TempEvaluationResponse represents the response for draft operations
type TempEvaluationResponse struct {
	ID               uuid.UUID                   `json:"id"`
	TeamEvaluationID uuid.UUID                   `json:"team_evaluation_id"`
	EmpNo            string                      `json:"emp_no"`
	Score            *float64                    `json:"score,omitempty"`
	Comment          string                      `json:"comment"`
	Reason           string                      `json:"reason"`
	Status           models.TempEvaluationStatus `json:"status"`
}

// Update saves the draft for one member and marks it completed
func (s *TempEvaluationService) Update(ctx context.Context, teamEvaluationID uuid.UUID, empNo string, req *UpdateTempEvaluationRequest) (*TempEvaluationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	teamEvaluation, err := s.teamEvaluationRepo.GetByID(teamEvaluationID)
	if err != nil {
		return nil, repoError(err, apperrors.ErrTeamEvaluationNotFound, "get team evaluation")
	}
	if teamEvaluation.Status.IsSubmitted() {
		return nil, apperrors.ErrAlreadySubmitted
	}

	employee, err := s.employeeRepo.GetByEmpNo(empNo)
	if err != nil {
		return nil, repoError(err, apperrors.ErrEmployeeNotFound, "get employee")
	}

	draft, err := s.tempEvaluationRepo.GetByEmployeeAndTeamEvaluation(employee.ID, teamEvaluationID)
	if err != nil {
		return nil, repoError(err, apperrors.ErrTempEvaluationNotFound, "get temp evaluation")
	}

	draft.Score = req.Score
	draft.Comment = req.Comment
	draft.Reason = req.Reason
	draft.Status = models.TempEvaluationStatusCompleted
	if err := s.tempEvaluationRepo.Update(draft); err != nil {
		return nil, repoError(err, nil, "update temp evaluation")
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_evaluation_id": teamEvaluationID,
		"emp_no":             empNo,
	}).Debug("downward evaluation draft saved")

	return &TempEvaluationResponse{
		ID:               draft.ID,
		TeamEvaluationID: draft.TeamEvaluationID,
		EmpNo:            employee.EmpNo,
		Score:            draft.Score,
		Comment:          draft.Comment,
		Reason:           draft.Reason,
		Status:           draft.Status,
	}, nil
}
