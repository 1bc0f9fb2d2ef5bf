package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"review-cycle-backend/internal/database/models"
	apperrors "review-cycle-backend/internal/errors"
	"review-cycle-backend/internal/logger"
	"review-cycle-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PeerEvaluationService handles the evaluator's side of peer evaluation
type PeerEvaluationService struct {
	periodRepo         repository.PeriodRepositoryInterface
	employeeRepo       repository.EmployeeRepositoryInterface
	peerEvaluationRepo repository.PeerEvaluationRepositoryInterface
	keywordRepo        repository.KeywordRepositoryInterface
	txManager          repository.TransactionManagerInterface
	validator          *validator.Validate
}

// NewPeerEvaluationService creates a new peer evaluation service
func NewPeerEvaluationService(periodRepo repository.PeriodRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, peerEvaluationRepo repository.PeerEvaluationRepositoryInterface, keywordRepo repository.KeywordRepositoryInterface, txManager repository.TransactionManagerInterface, validator *validator.Validate) *PeerEvaluationService {
	return &PeerEvaluationService{
		periodRepo:         periodRepo,
		employeeRepo:       employeeRepo,
		peerEvaluationRepo: peerEvaluationRepo,
		keywordRepo:        keywordRepo,
		txManager:          txManager,
		validator:          validator,
	}
}

// SubmitPeerEvaluationRequest represents an evaluator's single submission
type SubmitPeerEvaluationRequest struct {
	Weight         int         `json:"weight" validate:"min=0,max=100" example:"70"`
	KeywordIDs     []uuid.UUID `json:"keyword_ids"`
	CustomKeywords []string    `json:"custom_keywords" validate:"dive,required,max=100"`
}

// PeerEvaluationStatusResponse is one entry of an evaluator's peer list
type PeerEvaluationStatusResponse struct {
	ID             uuid.UUID `json:"id"`
	TargetEmpNo    string    `json:"target_emp_no"`
	TargetName     string    `json:"target_name"`
	TargetPosition string    `json:"target_position"`
	JointTasks     []string  `json:"joint_tasks"`
	IsCompleted    bool      `json:"is_completed"`
}

// KeywordResponse represents a keyword
type KeywordResponse struct {
	ID        *uuid.UUID              `json:"id,omitempty"`
	Name      string                  `json:"name"`
	Sentiment models.KeywordSentiment `json:"sentiment,omitempty"`
	Custom    bool                    `json:"custom"`
}

// PeerEvaluationDetailResponse represents one pairing with its submission
type PeerEvaluationDetailResponse struct {
	ID             uuid.UUID         `json:"id"`
	PeriodID       uuid.UUID         `json:"period_id"`
	EvaluatorEmpNo string            `json:"evaluator_emp_no"`
	TargetEmpNo    string            `json:"target_emp_no"`
	TargetName     string            `json:"target_name"`
	JointTasks     []string          `json:"joint_tasks"`
	Weight         *int              `json:"weight,omitempty"`
	IsCompleted    bool              `json:"is_completed"`
	Keywords       []KeywordResponse `json:"keywords"`
}

// IsAllCompleted reports whether every pairing of the period has been submitted
func (s *PeerEvaluationService) IsAllCompleted(periodID uuid.UUID) (bool, error) {
	if _, err := s.periodRepo.GetByID(periodID); err != nil {
		return false, repoError(err, apperrors.ErrPeriodNotFound, "get period")
	}

	incomplete, err := s.peerEvaluationRepo.ExistsIncompleteByPeriod(periodID)
	if err != nil {
		return false, fmt.Errorf("failed to check peer evaluations: %w", err)
	}
	return !incomplete, nil
}

// GetStatusList returns the pairings an employee owes in a period
func (s *PeerEvaluationService) GetStatusList(empNo string, periodID uuid.UUID) ([]PeerEvaluationStatusResponse, error) {
	evaluator, err := s.employeeRepo.GetByEmpNo(empNo)
	if err != nil {
		return nil, repoError(err, apperrors.ErrEmployeeNotFound, "get employee")
	}

	evaluations, err := s.peerEvaluationRepo.GetByEvaluatorAndPeriod(evaluator.ID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list peer evaluations: %w", err)
	}

	responses := make([]PeerEvaluationStatusResponse, 0, len(evaluations))
	for _, evaluation := range evaluations {
		response := PeerEvaluationStatusResponse{
			ID:          evaluation.ID,
			JointTasks:  []string(evaluation.JointTasks),
			IsCompleted: evaluation.IsCompleted,
		}
		if evaluation.Target != nil {
			response.TargetEmpNo = evaluation.Target.EmpNo
			response.TargetName = evaluation.Target.Name
			response.TargetPosition = evaluation.Target.Position
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// GetDetail returns one pairing with the keywords chosen on submission
func (s *PeerEvaluationService) GetDetail(id uuid.UUID) (*PeerEvaluationDetailResponse, error) {
	evaluation, err := s.peerEvaluationRepo.GetByID(id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrPeerEvaluationNotFound, "get peer evaluation")
	}

	selections, err := s.keywordRepo.GetSelections(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}

	response := &PeerEvaluationDetailResponse{
		ID:          evaluation.ID,
		JointTasks:  []string(evaluation.JointTasks),
		Weight:      evaluation.Weight,
		IsCompleted: evaluation.IsCompleted,
		Keywords:    make([]KeywordResponse, 0, len(selections)),
	}
	if evaluation.TeamEvaluation != nil {
		response.PeriodID = evaluation.TeamEvaluation.PeriodID
	}
	if evaluation.Evaluator != nil {
		response.EvaluatorEmpNo = evaluation.Evaluator.EmpNo
	}
	if evaluation.Target != nil {
		response.TargetEmpNo = evaluation.Target.EmpNo
		response.TargetName = evaluation.Target.Name
	}
	for _, selection := range selections {
		if selection.Keyword != nil {
			response.Keywords = append(response.Keywords, toKeywordResponse(selection.Keyword))
			continue
		}
		response.Keywords = append(response.Keywords, KeywordResponse{Name: selection.CustomKeyword, Custom: true})
	}
	return response, nil
}

// Submit records the evaluator's weight and keywords. A pairing can be submitted once.
func (s *PeerEvaluationService) Submit(ctx context.Context, id uuid.UUID, req *SubmitPeerEvaluationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	err := s.txManager.WithinTransaction(func(repos *repository.Repositories) error {
		evaluation, err := repos.PeerEvaluations.GetByID(id)
		if err != nil {
			return repoError(err, apperrors.ErrPeerEvaluationNotFound, "get peer evaluation")
		}
		if evaluation.IsCompleted {
			return apperrors.ErrAlreadySubmitted
		}
		if evaluation.TeamEvaluation != nil && evaluation.TeamEvaluation.Period != nil &&
			evaluation.TeamEvaluation.Period.Phase != models.PeriodPhasePeerEvaluation {
			return apperrors.ErrPeerEvaluationNotOpen
		}

		keywordIDs := uniqueIDs(req.KeywordIDs)
		keywords, err := repos.Keywords.GetByIDs(keywordIDs)
		if err != nil {
			return fmt.Errorf("failed to resolve keywords: %w", err)
		}
		if len(keywords) != len(keywordIDs) {
			return apperrors.ErrKeywordNotFound
		}

		if err := repos.PeerEvaluations.MarkCompleted(id, req.Weight); err != nil {
			if errors.Is(err, repository.ErrStaleObject) {
				return apperrors.ErrAlreadySubmitted
			}
			return fmt.Errorf("failed to submit peer evaluation: %w", err)
		}

		selections := make([]models.PeerEvaluationKeyword, 0, len(keywords)+len(req.CustomKeywords))
		for i := range keywords {
			keywordID := keywords[i].ID
			selections = append(selections, models.PeerEvaluationKeyword{PeerEvaluationID: id, KeywordID: &keywordID})
		}
		for _, custom := range req.CustomKeywords {
			selections = append(selections, models.PeerEvaluationKeyword{PeerEvaluationID: id, CustomKeyword: strings.TrimSpace(custom)})
		}
		if err := repos.Keywords.CreateSelections(selections); err != nil {
			return fmt.Errorf("failed to store keywords: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("peer_evaluation_id", id).Info("peer evaluation submitted")
	return nil
}

// GetSystemKeywords returns the system keywords offered on submission
func (s *PeerEvaluationService) GetSystemKeywords() ([]KeywordResponse, error) {
	keywords, err := s.keywordRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}

	responses := make([]KeywordResponse, len(keywords))
	for i := range keywords {
		responses[i] = toKeywordResponse(&keywords[i])
	}
	return responses, nil
}

func toKeywordResponse(keyword *models.Keyword) KeywordResponse {
	id := keyword.ID
	return KeywordResponse{ID: &id, Name: keyword.Name, Sentiment: keyword.Sentiment}
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
