package repository

import (
	"review-cycle-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PeriodRepositoryInterface defines the interface for period repository operations
type PeriodRepositoryInterface interface {
	Create(period *models.Period) error
	GetByID(id uuid.UUID) (*models.Period, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Period, error)
	GetLatestByYearAndUnit(year int, unit models.PeriodUnit) (*models.Period, error)
	GetAllNotCompleted() ([]models.Period, error)
	UpdateWithVersion(period *models.Period) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByIDs(ids []uuid.UUID) ([]models.Employee, error)
	GetByEmpNo(empNo string) (*models.Employee, error)
	GetAll() ([]models.Employee, error)
	GetByTeamIDAndRole(teamID uuid.UUID, role models.Role) ([]models.Employee, error)
}

// TeamKPIRepositoryInterface defines the interface for KPI and task lookups
type TeamKPIRepositoryInterface interface {
	Create(kpi *models.TeamKPI) error
	CreateTask(task *models.Task) error
	GetByTeamIDAndYear(teamID uuid.UUID, year int) ([]models.TeamKPI, error)
	GetContributorIDs(kpiID uuid.UUID, role models.Role) ([]uuid.UUID, error)
}

// TeamEvaluationRepositoryInterface defines the interface for team evaluation repository operations
type TeamEvaluationRepositoryInterface interface {
	CreateBatch(evaluations []models.TeamEvaluation) error
	GetByID(id uuid.UUID) (*models.TeamEvaluation, error)
	GetByIDWithPeriod(id uuid.UUID) (*models.TeamEvaluation, error)
	GetByPeriodID(periodID uuid.UUID) ([]models.TeamEvaluation, error)
	UpdateWithVersion(evaluation *models.TeamEvaluation) error
}

// PeerEvaluationRepositoryInterface defines the interface for peer evaluation repository operations
type PeerEvaluationRepositoryInterface interface {
	CreateBatch(evaluations []models.PeerEvaluation) error
	GetByID(id uuid.UUID) (*models.PeerEvaluation, error)
	GetByTeamEvaluationID(teamEvaluationID uuid.UUID) ([]models.PeerEvaluation, error)
	GetByEvaluatorAndPeriod(evaluatorID, periodID uuid.UUID) ([]models.PeerEvaluation, error)
	UpdateJointTasks(evaluation *models.PeerEvaluation) error
	ExistsIncompleteByPeriod(periodID uuid.UUID) (bool, error)
	MarkCompleted(id uuid.UUID, weight int) error
}

// KeywordRepositoryInterface defines the interface for keyword repository operations
type KeywordRepositoryInterface interface {
	Create(keyword *models.Keyword) error
	GetAll() ([]models.Keyword, error)
	GetByIDs(ids []uuid.UUID) ([]models.Keyword, error)
	CreateSelections(selections []models.PeerEvaluationKeyword) error
	GetSelections(peerEvaluationID uuid.UUID) ([]models.PeerEvaluationKeyword, error)
}

// TempEvaluationRepositoryInterface defines the interface for downward draft evaluations
type TempEvaluationRepositoryInterface interface {
	CreateBatch(evaluations []models.TempEvaluation) error
	GetByEmployeeAndTeamEvaluation(employeeID, teamEvaluationID uuid.UUID) (*models.TempEvaluation, error)
	ExistsNotCompletedByTeamEvaluation(teamEvaluationID uuid.UUID) (bool, error)
	Update(evaluation *models.TempEvaluation) error
}

// ReportRepositoryInterface defines the interface for per-member report shells
type ReportRepositoryInterface interface {
	CreateFeedbackReports(reports []models.FeedbackReport) error
	CreateFinalReports(reports []models.FinalEvaluationReport) error
}

// TransactionManagerInterface runs a unit of work against transaction-bound repositories
type TransactionManagerInterface interface {
	WithinTransaction(fn func(repos *Repositories) error) error
}
