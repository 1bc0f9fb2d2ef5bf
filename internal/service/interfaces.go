package service

import (
	"context"

	"review-cycle-backend/internal/database/models"
	"review-cycle-backend/internal/notification"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PeriodServiceInterface defines the interface for period service
type PeriodServiceInterface interface {
	CreatePeriod(ctx context.Context, req *CreatePeriodRequest) (*PeriodResponse, error)
	GetAvailablePeriods() ([]PeriodResponse, error)
	UpdatePeriod(ctx context.Context, id uuid.UUID, req *UpdatePeriodRequest) (*PeriodResponse, error)
	AdvancePhase(ctx context.Context, id uuid.UUID) (*PeriodResponse, error)
}

// EvaluationCycleServiceInterface defines the interface for opening peer evaluation
type EvaluationCycleServiceInterface interface {
	OpenPeerEvaluation(ctx context.Context, periodID uuid.UUID) (*OpenPeerEvaluationResult, error)
}

// TeamEvaluationServiceInterface defines the interface for team evaluation service
type TeamEvaluationServiceInterface interface {
	Submit(ctx context.Context, id uuid.UUID) (*TeamEvaluationResponse, error)
	IsAllManagerEvaluationSubmitted(periodID uuid.UUID) (bool, error)
}

// PeerEvaluationServiceInterface defines the interface for peer evaluation service
type PeerEvaluationServiceInterface interface {
	IsAllCompleted(periodID uuid.UUID) (bool, error)
	GetStatusList(empNo string, periodID uuid.UUID) ([]PeerEvaluationStatusResponse, error)
	GetDetail(id uuid.UUID) (*PeerEvaluationDetailResponse, error)
	Submit(ctx context.Context, id uuid.UUID, req *SubmitPeerEvaluationRequest) error
	GetSystemKeywords() ([]KeywordResponse, error)
}

// TempEvaluationServiceInterface defines the interface for downward draft evaluations
type TempEvaluationServiceInterface interface {
	Update(ctx context.Context, teamEvaluationID uuid.UUID, empNo string, req *UpdateTempEvaluationRequest) (*TempEvaluationResponse, error)
}

// Notifier announces the opening of peer evaluation to employees
type Notifier interface {
	Notify(ctx context.Context, period *models.Period, employees []models.Employee) notification.Result
}
