package service

import (
	"context"
	"fmt"

	"review-cycle-backend/internal/database/models"
	apperrors "review-cycle-backend/internal/errors"
	"review-cycle-backend/internal/logger"
	"review-cycle-backend/internal/repository"

	"github.com/google/uuid"
)

// TeamEvaluationService handles the manager's side of a team evaluation
type TeamEvaluationService struct {
	periodRepo         repository.PeriodRepositoryInterface
	teamEvaluationRepo repository.TeamEvaluationRepositoryInterface
	txManager          repository.TransactionManagerInterface
}

// NewTeamEvaluationService creates a new team evaluation service
func NewTeamEvaluationService(periodRepo repository.PeriodRepositoryInterface, teamEvaluationRepo repository.TeamEvaluationRepositoryInterface, txManager repository.TransactionManagerInterface) *TeamEvaluationService {
	return &TeamEvaluationService{
		periodRepo:         periodRepo,
		teamEvaluationRepo: teamEvaluationRepo,
		txManager:          txManager,
	}
}

// TeamEvaluationResponse represents the response for team evaluation operations
type TeamEvaluationResponse struct {
	ID       uuid.UUID                   `json:"id"`
	TeamID   uuid.UUID                   `json:"team_id"`
	PeriodID uuid.UUID                   `json:"period_id"`
	Status   models.TeamEvaluationStatus `json:"status"`
	Version  int64                       `json:"version"`
}

// Submit closes out the downward evaluation once every member's draft is completed
func (s *TeamEvaluationService) Submit(ctx context.Context, id uuid.UUID) (*TeamEvaluationResponse, error) {
	var teamEvaluation *models.TeamEvaluation
	err := s.txManager.WithinTransaction(func(repos *repository.Repositories) error {
		var err error
		teamEvaluation, err = repos.TeamEvaluations.GetByID(id)
		if err != nil {
			return repoError(err, apperrors.ErrTeamEvaluationNotFound, "get team evaluation")
		}
		if teamEvaluation.Status.IsSubmitted() {
			return apperrors.ErrAlreadySubmitted
		}

		pending, err := repos.TempEvaluations.ExistsNotCompletedByTeamEvaluation(id)
		if err != nil {
			return fmt.Errorf("failed to check downward evaluations: %w", err)
		}
		if pending {
			return apperrors.ErrIncompleteDownwardEvaluations
		}

		teamEvaluation.Status = models.TeamEvaluationStatusSubmitted
		if err := repos.TeamEvaluations.UpdateWithVersion(teamEvaluation); err != nil {
			return repoError(err, apperrors.ErrTeamEvaluationNotFound, "submit team evaluation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("team_evaluation_id", id).Info("team evaluation submitted")

	return &TeamEvaluationResponse{
		ID:       teamEvaluation.ID,
		TeamID:   teamEvaluation.TeamID,
		PeriodID: teamEvaluation.PeriodID,
		Status:   teamEvaluation.Status,
		Version:  teamEvaluation.Version,
	}, nil
}

// IsAllManagerEvaluationSubmitted reports whether every team of the period has submitted
func (s *TeamEvaluationService) IsAllManagerEvaluationSubmitted(periodID uuid.UUID) (bool, error) {
	if _, err := s.periodRepo.GetByID(periodID); err != nil {
		return false, repoError(err, apperrors.ErrPeriodNotFound, "get period")
	}

	evaluations, err := s.teamEvaluationRepo.GetByPeriodID(periodID)
	if err != nil {
		return false, fmt.Errorf("failed to list team evaluations: %w", err)
	}
	for _, evaluation := range evaluations {
		if !evaluation.Status.IsSubmitted() {
			return false, nil
		}
	}
	return true, nil
}
