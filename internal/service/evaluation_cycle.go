package service

import (
	"context"
	"fmt"

	"review-cycle-backend/internal/database/models"
	apperrors "review-cycle-backend/internal/errors"
	"review-cycle-backend/internal/lock"
	"review-cycle-backend/internal/logger"
	"review-cycle-backend/internal/notification"
	"review-cycle-backend/internal/repository"

	"github.com/google/uuid"
)

// EvaluationCycleService opens peer evaluation for a period
type EvaluationCycleService struct {
	txManager    repository.TransactionManagerInterface
	employeeRepo repository.EmployeeRepositoryInterface
	locker       lock.Locker
	generator    *PeerPairingGenerator
	notifier     Notifier
}

// NewEvaluationCycleService creates a new evaluation cycle service
func NewEvaluationCycleService(txManager repository.TransactionManagerInterface, employeeRepo repository.EmployeeRepositoryInterface, locker lock.Locker, generator *PeerPairingGenerator, notifier Notifier) *EvaluationCycleService {
	return &EvaluationCycleService{
		txManager:    txManager,
		employeeRepo: employeeRepo,
		locker:       locker,
		generator:    generator,
		notifier:     notifier,
	}
}

// TeamPairingResult is the outcome of opening peer evaluation for one team
type TeamPairingResult struct {
	PairingResult
	TeamID   uuid.UUID `json:"team_id"`
	TeamName string    `json:"team_name,omitempty"`
}

// OpenPeerEvaluationResult reports per-team pairing counts and notification delivery
type OpenPeerEvaluationResult struct {
	PeriodID      uuid.UUID           `json:"period_id"`
	Phase         models.PeriodPhase  `json:"phase"`
	Teams         []TeamPairingResult `json:"teams"`
	Notifications notification.Result `json:"notifications"`
}

// OpenPeerEvaluation generates the pairings of every team, marks the team
// evaluations in progress and moves the period to PEER_EVALUATION, all in one
// transaction. Employees are notified only after the transaction commits and a
// failed notification never fails the call.
func (s *EvaluationCycleService) OpenPeerEvaluation(ctx context.Context, periodID uuid.UUID) (*OpenPeerEvaluationResult, error) {
	log := logger.WithContext(ctx).WithField("period_id", periodID)

	release, err := acquireLock(ctx, s.locker, lock.PeriodKey(periodID))
	if err != nil {
		return nil, err
	}
	defer release()

	result := &OpenPeerEvaluationResult{PeriodID: periodID}
	var period *models.Period

	err = s.txManager.WithinTransaction(func(repos *repository.Repositories) error {
		var err error
		period, err = repos.Periods.GetByIDForUpdate(periodID)
		if err != nil {
			return repoError(err, apperrors.ErrPeriodNotFound, "get period")
		}
		if period.Phase != models.PeriodPhaseNotStarted {
			return apperrors.ErrPeerEvaluationAlreadyOpened
		}
		// checked here because every later transition forks on it
		if period.IsFinal == nil {
			return apperrors.NewInvalidTransitionError(string(period.Phase), apperrors.ReasonMissingFinalityFlag)
		}
		next, err := period.Phase.Next(period.IsFinal)
		if err != nil {
			return err
		}

		teamEvaluations, err := repos.TeamEvaluations.GetByPeriodID(periodID)
		if err != nil {
			return fmt.Errorf("failed to list team evaluations: %w", err)
		}

		result.Teams = make([]TeamPairingResult, 0, len(teamEvaluations))
		for i := range teamEvaluations {
			teamEvaluation := &teamEvaluations[i]

			pairing, err := s.generator.Generate(repos, teamEvaluation.ID)
			if err != nil {
				return fmt.Errorf("failed to generate pairings for team %s: %w", teamEvaluation.TeamID, err)
			}
			if err := createMemberShells(repos, period, teamEvaluation); err != nil {
				return err
			}

			teamEvaluation.Status = models.TeamEvaluationStatusInProgress
			if err := repos.TeamEvaluations.UpdateWithVersion(teamEvaluation); err != nil {
				return repoError(err, apperrors.ErrTeamEvaluationNotFound, "update team evaluation")
			}

			teamResult := TeamPairingResult{PairingResult: *pairing, TeamID: teamEvaluation.TeamID}
			if teamEvaluation.Team != nil {
				teamResult.TeamName = teamEvaluation.Team.Name
			}
			result.Teams = append(result.Teams, teamResult)
		}

		period.Phase = next
		if err := repos.Periods.UpdateWithVersion(period); err != nil {
			return repoError(err, apperrors.ErrPeriodNotFound, "update period phase")
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("failed to open peer evaluation")
		return nil, err
	}
	result.Phase = period.Phase

	log.WithField("teams", len(result.Teams)).Info("peer evaluation opened")

	employees, err := s.employeeRepo.GetAll()
	if err != nil {
		log.WithError(err).Error("failed to load employees for peer evaluation notification")
		return result, nil
	}
	result.Notifications = s.notifier.Notify(ctx, period, employees)

	return result, nil
}

// createMemberShells creates the report shell and downward draft of every MEMBER of the team
func createMemberShells(repos *repository.Repositories, period *models.Period, teamEvaluation *models.TeamEvaluation) error {
	members, err := repos.Employees.GetByTeamIDAndRole(teamEvaluation.TeamID, models.RoleMember)
	if err != nil {
		return fmt.Errorf("failed to list team members: %w", err)
	}
	if len(members) == 0 {
		return nil
	}

	drafts := make([]models.TempEvaluation, 0, len(members))
	for _, member := range members {
		drafts = append(drafts, models.TempEvaluation{
			TeamEvaluationID: teamEvaluation.ID,
			EmployeeID:       member.ID,
			Status:           models.TempEvaluationStatusNotStarted,
		})
	}
	if err := repos.TempEvaluations.CreateBatch(drafts); err != nil {
		return fmt.Errorf("failed to create downward evaluation drafts: %w", err)
	}

	if period.Final() {
		reports := make([]models.FinalEvaluationReport, 0, len(members))
		for _, member := range members {
			reports = append(reports, models.FinalEvaluationReport{TeamEvaluationID: teamEvaluation.ID, EmployeeID: member.ID})
		}
		if err := repos.Reports.CreateFinalReports(reports); err != nil {
			return fmt.Errorf("failed to create final evaluation reports: %w", err)
		}
		return nil
	}

	reports := make([]models.FeedbackReport, 0, len(members))
	for _, member := range members {
		reports = append(reports, models.FeedbackReport{TeamEvaluationID: teamEvaluation.ID, EmployeeID: member.ID})
	}
	if err := repos.Reports.CreateFeedbackReports(reports); err != nil {
		return fmt.Errorf("failed to create feedback reports: %w", err)
	}
	return nil
}
