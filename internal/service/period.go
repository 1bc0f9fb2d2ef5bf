package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"review-cycle-backend/internal/database/models"
	apperrors "review-cycle-backend/internal/errors"
	"review-cycle-backend/internal/lock"
	"review-cycle-backend/internal/logger"
	"review-cycle-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// PeriodService handles business logic for evaluation periods
type PeriodService struct {
	periodRepo repository.PeriodRepositoryInterface
	txManager  repository.TransactionManagerInterface
	locker     lock.Locker
	cycle      EvaluationCycleServiceInterface
	validator  *validator.Validate
}

// NewPeriodService creates a new period service
func NewPeriodService(periodRepo repository.PeriodRepositoryInterface, txManager repository.TransactionManagerInterface, locker lock.Locker, cycle EvaluationCycleServiceInterface, validator *validator.Validate) *PeriodService {
	return &PeriodService{
		periodRepo: periodRepo,
		txManager:  txManager,
		locker:     locker,
		cycle:      cycle,
		validator:  validator,
	}
}

// CreatePeriodRequest represents the request to create a period
type CreatePeriodRequest struct {
	Unit      models.PeriodUnit `json:"unit" validate:"required,oneof=QUARTER ANNUAL" example:"QUARTER"`
	IsFinal   *bool             `json:"is_final"`
	StartDate string            `json:"start_date" validate:"required,datetime=2006-01-02" example:"2025-01-01"`
	EndDate   string            `json:"end_date" validate:"required,datetime=2006-01-02" example:"2025-03-31"`
}

// UpdatePeriodRequest represents the request to update a period that has not started
type UpdatePeriodRequest struct {
	Name      string `json:"name" validate:"omitempty,max=100"`
	IsFinal   *bool  `json:"is_final"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// PeriodResponse represents the response for period operations
type PeriodResponse struct {
	ID          uuid.UUID          `json:"id"`
	Year        int                `json:"year"`
	Name        string             `json:"name"`
	Unit        models.PeriodUnit  `json:"unit"`
	IsFinal     *bool              `json:"is_final"`
	OrderInYear int                `json:"order_in_year"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	Phase       models.PeriodPhase `json:"phase"`
	Version     int64              `json:"version"`
}

// CreatePeriod allocates the next order within the year and unit, then creates
// the period and one team evaluation per team in a single transaction.
func (s *PeriodService) CreatePeriod(ctx context.Context, req *CreatePeriodRequest) (*PeriodResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	year := startDate.Year()

	release, err := acquireLock(ctx, s.locker, lock.PeriodOrderKey(year, string(req.Unit)))
	if err != nil {
		return nil, err
	}
	defer release()

	var period *models.Period
	err = s.txManager.WithinTransaction(func(repos *repository.Repositories) error {
		order := 1
		latest, err := repos.Periods.GetLatestByYearAndUnit(year, req.Unit)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to find latest period: %w", err)
		}
		if latest != nil {
			order = latest.OrderInYear + 1
		}

		period = &models.Period{
			Year:        year,
			Name:        periodName(year, order, req.IsFinal),
			Unit:        req.Unit,
			IsFinal:     req.IsFinal,
			OrderInYear: order,
			StartDate:   startDate,
			EndDate:     endDate,
			Phase:       models.PeriodPhaseNotStarted,
		}
		if err := repos.Periods.Create(period); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrPeriodExists
			}
			return fmt.Errorf("failed to create period: %w", err)
		}

		teams, err := repos.Teams.GetAll()
		if err != nil {
			return fmt.Errorf("failed to list teams: %w", err)
		}
		evaluations := make([]models.TeamEvaluation, 0, len(teams))
		for _, team := range teams {
			evaluations = append(evaluations, models.TeamEvaluation{
				TeamID:   team.ID,
				PeriodID: period.ID,
				Status:   models.TeamEvaluationStatusNotStarted,
			})
		}
		if err := repos.TeamEvaluations.CreateBatch(evaluations); err != nil {
			return fmt.Errorf("failed to create team evaluations: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"period_id": period.ID,
		"year":      period.Year,
		"unit":      period.Unit,
		"order":     period.OrderInYear,
	}).Info("period created")

	return s.toResponse(period), nil
}

// GetAvailablePeriods returns every period that has not completed, by start date
func (s *PeriodService) GetAvailablePeriods() ([]PeriodResponse, error) {
	periods, err := s.periodRepo.GetAllNotCompleted()
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}

	responses := make([]PeriodResponse, len(periods))
	for i := range periods {
		responses[i] = *s.toResponse(&periods[i])
	}
	return responses, nil
}

// UpdatePeriod changes name, finality and dates of a period that has not started
func (s *PeriodService) UpdatePeriod(ctx context.Context, id uuid.UUID, req *UpdatePeriodRequest) (*PeriodResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	// the name becomes the subject of notification mails
	if strings.ContainsAny(req.Name, "\r\n") {
		return nil, apperrors.NewValidationError("name", "must not contain line breaks")
	}

	release, err := acquireLock(ctx, s.locker, lock.PeriodKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	var period *models.Period
	err = s.txManager.WithinTransaction(func(repos *repository.Repositories) error {
		var err error
		period, err = repos.Periods.GetByIDForUpdate(id)
		if err != nil {
			return repoError(err, apperrors.ErrPeriodNotFound, "get period")
		}
		if period.Phase != models.PeriodPhaseNotStarted {
			return apperrors.ErrPeriodAlreadyStarted
		}

		if req.Name != "" {
			period.Name = req.Name
		}
		if req.IsFinal != nil {
			period.IsFinal = req.IsFinal
		}
		start, end := period.StartDate.Format(dateLayout), period.EndDate.Format(dateLayout)
		if req.StartDate != "" {
			start = req.StartDate
		}
		if req.EndDate != "" {
			end = req.EndDate
		}
		startDate, endDate, err := parseDateRange(start, end)
		if err != nil {
			return err
		}
		if startDate.Year() != period.Year {
			return apperrors.NewValidationError("start_date", "must stay within the period year")
		}
		period.StartDate, period.EndDate = startDate, endDate

		if err := repos.Periods.UpdateWithVersion(period); err != nil {
			return repoError(err, apperrors.ErrPeriodNotFound, "update period")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(period), nil
}

// AdvancePhase moves a period to its next phase. Leaving NOT_STARTED is the
// opening of peer evaluation and goes through the evaluation cycle service.
func (s *PeriodService) AdvancePhase(ctx context.Context, id uuid.UUID) (*PeriodResponse, error) {
	current, err := s.periodRepo.GetByID(id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrPeriodNotFound, "get period")
	}
	if current.Phase == models.PeriodPhaseNotStarted {
		if _, err := s.cycle.OpenPeerEvaluation(ctx, id); err != nil {
			return nil, err
		}
		opened, err := s.periodRepo.GetByID(id)
		if err != nil {
			return nil, repoError(err, apperrors.ErrPeriodNotFound, "get period")
		}
		return s.toResponse(opened), nil
	}

	release, err := acquireLock(ctx, s.locker, lock.PeriodKey(id))
	if err != nil {
		return nil, err
	}
	defer release()

	var period *models.Period
	var from models.PeriodPhase
	err = s.txManager.WithinTransaction(func(repos *repository.Repositories) error {
		var err error
		period, err = repos.Periods.GetByIDForUpdate(id)
		if err != nil {
			return repoError(err, apperrors.ErrPeriodNotFound, "get period")
		}
		from = period.Phase
		if period.Phase.IsTerminal() {
			return apperrors.NewInvalidTransitionError(string(period.Phase), apperrors.ReasonTerminalPhase)
		}

		next, err := period.Phase.Next(period.IsFinal)
		if err != nil {
			return err
		}
		period.Phase = next
		if err := repos.Periods.UpdateWithVersion(period); err != nil {
			return repoError(err, apperrors.ErrPeriodNotFound, "update period phase")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"period_id": period.ID,
		"from":      from,
		"to":        period.Phase,
	}).Info("period phase advanced")

	return s.toResponse(period), nil
}

func (s *PeriodService) toResponse(period *models.Period) *PeriodResponse {
	return &PeriodResponse{
		ID:          period.ID,
		Year:        period.Year,
		Name:        period.Name,
		Unit:        period.Unit,
		IsFinal:     period.IsFinal,
		OrderInYear: period.OrderInYear,
		StartDate:   period.StartDate.Format(dateLayout),
		EndDate:     period.EndDate.Format(dateLayout),
		Phase:       period.Phase,
		Version:     period.Version,
	}
}

func periodName(year, order int, isFinal *bool) string {
	if isFinal != nil && *isFinal {
		return fmt.Sprintf("%d Final Evaluation", year)
	}
	return fmt.Sprintf("%d Q%d Evaluation", year, order)
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("start_date", "must be YYYY-MM-DD")
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("end_date", "must be YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}
