package service_test

import (
	"context"
	"errors"
	"testing"

	"review-cycle-backend/internal/database/models"
	apperrors "review-cycle-backend/internal/errors"
	"review-cycle-backend/internal/lock"
	"review-cycle-backend/internal/mocks"
	"review-cycle-backend/internal/notification"
	"review-cycle-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EvaluationCycleServiceTestSuite defines the test suite for EvaluationCycleService
type EvaluationCycleServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	repos        *repoMocks
	locker       *mocks.MockLocker
	mockNotifier *mocks.MockNotifier
	service      *service.EvaluationCycleService
	ctx          context.Context

	period         *models.Period
	teamEvaluation models.TeamEvaluation
	members        []models.Employee
}

func (suite *EvaluationCycleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repos = newRepoMocks(suite.ctrl)
	suite.locker = mocks.NewMockLocker(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.service = service.NewEvaluationCycleService(
		suite.repos.txManager,
		suite.repos.employees,
		suite.locker,
		service.NewPeerPairingGenerator(),
		suite.mockNotifier,
	)
	suite.ctx = context.Background()

	suite.period = &models.Period{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Year:      2025,
		Name:      "2025 Q2 Evaluation",
		IsFinal:   boolPtr(false),
		Phase:     models.PeriodPhaseNotStarted,
		Version:   1,
	}
	teamID := uuid.New()
	suite.teamEvaluation = models.TeamEvaluation{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    teamID,
		PeriodID:  suite.period.ID,
		Status:    models.TeamEvaluationStatusNotStarted,
		Version:   1,
		Team:      &models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "Platform"},
	}
	suite.members = []models.Employee{
		{BaseModel: models.BaseModel{ID: uuid.New()}, EmpNo: "E001", Email: "a@example.com", Role: models.RoleMember},
		{BaseModel: models.BaseModel{ID: uuid.New()}, EmpNo: "E002", Email: "b@example.com", Role: models.RoleMember},
	}
}

func (suite *EvaluationCycleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EvaluationCycleServiceTestSuite) expectLockAndPeriod() {
	suite.locker.EXPECT().Acquire(gomock.Any(), lock.PeriodKey(suite.period.ID)).Return(noopRelease, nil)
	suite.repos.expectTransaction()
	suite.repos.periods.EXPECT().GetByIDForUpdate(suite.period.ID).Return(suite.period, nil)
}

// expectPairing wires one KPI shared by both members of the team
func (suite *EvaluationCycleServiceTestSuite) expectPairing() {
	kpi := models.TeamKPI{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Latency"}
	withPeriod := suite.teamEvaluation
	withPeriod.Period = suite.period

	suite.repos.teamEvaluations.EXPECT().GetByIDWithPeriod(suite.teamEvaluation.ID).Return(&withPeriod, nil)
	suite.repos.teamKPIs.EXPECT().GetByTeamIDAndYear(suite.teamEvaluation.TeamID, 2025).Return([]models.TeamKPI{kpi}, nil)
	suite.repos.teamKPIs.EXPECT().GetContributorIDs(kpi.ID, models.RoleMember).Return([]uuid.UUID{suite.members[0].ID, suite.members[1].ID}, nil)
	suite.repos.employees.EXPECT().GetByIDs(gomock.Any()).Return(suite.members, nil)
	suite.repos.peerEvaluations.EXPECT().GetByTeamEvaluationID(suite.teamEvaluation.ID).Return(nil, nil)
	suite.repos.peerEvaluations.EXPECT().CreateBatch(gomock.Len(2)).Return(nil)
}

func (suite *EvaluationCycleServiceTestSuite) expectShells() {
	suite.repos.employees.EXPECT().GetByTeamIDAndRole(suite.teamEvaluation.TeamID, models.RoleMember).Return(suite.members, nil)
	suite.repos.tempEvaluations.EXPECT().CreateBatch(gomock.Len(2)).DoAndReturn(func(drafts []models.TempEvaluation) error {
		for _, draft := range drafts {
			suite.Equal(models.TempEvaluationStatusNotStarted, draft.Status)
			suite.Equal(suite.teamEvaluation.ID, draft.TeamEvaluationID)
		}
		return nil
	})
}

func (suite *EvaluationCycleServiceTestSuite) TestOpenPeerEvaluation_Success() {
	suite.expectLockAndPeriod()
	suite.repos.teamEvaluations.EXPECT().GetByPeriodID(suite.period.ID).Return([]models.TeamEvaluation{suite.teamEvaluation}, nil)
	suite.expectPairing()
	suite.expectShells()
	suite.repos.reports.EXPECT().CreateFeedbackReports(gomock.Len(2)).Return(nil)
	suite.repos.teamEvaluations.EXPECT().UpdateWithVersion(gomock.Any()).DoAndReturn(func(evaluation *models.TeamEvaluation) error {
		suite.Equal(models.TeamEvaluationStatusInProgress, evaluation.Status)
		return nil
	})
	suite.repos.periods.EXPECT().UpdateWithVersion(gomock.Any()).DoAndReturn(func(period *models.Period) error {
		suite.Equal(models.PeriodPhasePeerEvaluation, period.Phase)
		return nil
	})
	suite.repos.employees.EXPECT().GetAll().Return(suite.members, nil)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), suite.members).Return(notification.Result{Sent: 2})

	result, err := suite.service.OpenPeerEvaluation(suite.ctx, suite.period.ID)

	suite.Require().NoError(err)
	suite.Equal(models.PeriodPhasePeerEvaluation, result.Phase)
	suite.Require().Len(result.Teams, 1)
	suite.Equal("Platform", result.Teams[0].TeamName)
	suite.Equal(2, result.Teams[0].Created)
	suite.Equal(notification.Result{Sent: 2}, result.Notifications)
}

func (suite *EvaluationCycleServiceTestSuite) TestOpenPeerEvaluation_FinalPeriodCreatesFinalReports() {
	suite.period.IsFinal = boolPtr(true)
	suite.expectLockAndPeriod()
	suite.repos.teamEvaluations.EXPECT().GetByPeriodID(suite.period.ID).Return([]models.TeamEvaluation{suite.teamEvaluation}, nil)
	suite.expectPairing()
	suite.expectShells()
	suite.repos.reports.EXPECT().CreateFinalReports(gomock.Len(2)).Return(nil)
	suite.repos.reports.EXPECT().CreateFeedbackReports(gomock.Any()).Times(0)
	suite.repos.teamEvaluations.EXPECT().UpdateWithVersion(gomock.Any()).Return(nil)
	suite.repos.periods.EXPECT().UpdateWithVersion(gomock.Any()).Return(nil)
	suite.repos.employees.EXPECT().GetAll().Return(nil, nil)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(notification.Result{})

	_, err := suite.service.OpenPeerEvaluation(suite.ctx, suite.period.ID)

	suite.NoError(err)
}

func (suite *EvaluationCycleServiceTestSuite) TestOpenPeerEvaluation_AlreadyOpened() {
	suite.period.Phase = models.PeriodPhasePeerEvaluation
	suite.expectLockAndPeriod()
	suite.repos.periods.EXPECT().UpdateWithVersion(gomock.Any()).Times(0)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.service.OpenPeerEvaluation(suite.ctx, suite.period.ID)

	suite.ErrorIs(err, apperrors.ErrPeerEvaluationAlreadyOpened)
}

func (suite *EvaluationCycleServiceTestSuite) TestOpenPeerEvaluation_MissingFinalityFlag() {
	suite.period.IsFinal = nil
	suite.expectLockAndPeriod()
	suite.repos.teamEvaluations.EXPECT().GetByPeriodID(gomock.Any()).Times(0)

	_, err := suite.service.OpenPeerEvaluation(suite.ctx, suite.period.ID)

	suite.ErrorIs(err, apperrors.ErrMissingFinalityFlag)
}

func (suite *EvaluationCycleServiceTestSuite) TestOpenPeerEvaluation_FailureLeavesPhaseUntouched() {
	suite.expectLockAndPeriod()
	suite.repos.teamEvaluations.EXPECT().GetByPeriodID(suite.period.ID).Return([]models.TeamEvaluation{suite.teamEvaluation}, nil)
	suite.repos.teamEvaluations.EXPECT().GetByIDWithPeriod(suite.teamEvaluation.ID).Return(nil, errors.New("connection reset"))
	suite.repos.periods.EXPECT().UpdateWithVersion(gomock.Any()).Times(0)
	suite.repos.employees.EXPECT().GetAll().Times(0)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := suite.service.OpenPeerEvaluation(suite.ctx, suite.period.ID)

	suite.Nil(result)
	suite.Error(err)
	suite.Contains(err.Error(), "connection reset")
}

func (suite *EvaluationCycleServiceTestSuite) TestOpenPeerEvaluation_NotificationFailureIsIsolated() {
	suite.expectLockAndPeriod()
	suite.repos.teamEvaluations.EXPECT().GetByPeriodID(suite.period.ID).Return(nil, nil)
	suite.repos.periods.EXPECT().UpdateWithVersion(gomock.Any()).Return(nil)
	suite.repos.employees.EXPECT().GetAll().Return(suite.members, nil)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(notification.Result{Sent: 1, Failed: 1})

	result, err := suite.service.OpenPeerEvaluation(suite.ctx, suite.period.ID)

	suite.Require().NoError(err)
	suite.Equal(models.PeriodPhasePeerEvaluation, result.Phase)
	suite.Equal(1, result.Notifications.Failed)
}

func (suite *EvaluationCycleServiceTestSuite) TestOpenPeerEvaluation_EmployeeLookupFailureIsIsolated() {
	suite.expectLockAndPeriod()
	suite.repos.teamEvaluations.EXPECT().GetByPeriodID(suite.period.ID).Return(nil, nil)
	suite.repos.periods.EXPECT().UpdateWithVersion(gomock.Any()).Return(nil)
	suite.repos.employees.EXPECT().GetAll().Return(nil, errors.New("timeout"))
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := suite.service.OpenPeerEvaluation(suite.ctx, suite.period.ID)

	suite.Require().NoError(err)
	suite.Equal(models.PeriodPhasePeerEvaluation, result.Phase)
}

func (suite *EvaluationCycleServiceTestSuite) TestOpenPeerEvaluation_Locked() {
	suite.locker.EXPECT().Acquire(gomock.Any(), lock.PeriodKey(suite.period.ID)).Return(nil, lock.ErrLocked)

	_, err := suite.service.OpenPeerEvaluation(suite.ctx, suite.period.ID)

	suite.ErrorIs(err, apperrors.ErrPeriodLocked)
}

func TestEvaluationCycleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EvaluationCycleServiceTestSuite))
}
