package service_test

import (
	"context"
	"testing"

	"review-cycle-backend/internal/database/models"
	apperrors "review-cycle-backend/internal/errors"
	"review-cycle-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamEvaluationServiceTestSuite defines the test suite for TeamEvaluationService
type TeamEvaluationServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repos   *repoMocks
	service *service.TeamEvaluationService
	ctx     context.Context
}

func (suite *TeamEvaluationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repos = newRepoMocks(suite.ctrl)
	suite.service = service.NewTeamEvaluationService(suite.repos.periods, suite.repos.teamEvaluations, suite.repos.txManager)
	suite.ctx = context.Background()
}

func (suite *TeamEvaluationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamEvaluationServiceTestSuite) TestSubmit_AllDraftsCompleted() {
	id := uuid.New()
	suite.repos.expectTransaction()
	suite.repos.teamEvaluations.EXPECT().GetByID(id).Return(&models.TeamEvaluation{
		BaseModel: models.BaseModel{ID: id},
		Status:    models.TeamEvaluationStatusInProgress,
		Version:   4,
	}, nil)
	suite.repos.tempEvaluations.EXPECT().ExistsNotCompletedByTeamEvaluation(id).Return(false, nil)
	suite.repos.teamEvaluations.EXPECT().UpdateWithVersion(gomock.Any()).DoAndReturn(func(evaluation *models.TeamEvaluation) error {
		evaluation.Version++
		return nil
	})

	response, err := suite.service.Submit(suite.ctx, id)

	suite.Require().NoError(err)
	suite.Equal(models.TeamEvaluationStatusSubmitted, response.Status)
	suite.Equal(int64(5), response.Version)
}

func (suite *TeamEvaluationServiceTestSuite) TestSubmit_PendingDrafts() {
	id := uuid.New()
	suite.repos.expectTransaction()
	suite.repos.teamEvaluations.EXPECT().GetByID(id).Return(&models.TeamEvaluation{
		BaseModel: models.BaseModel{ID: id},
		Status:    models.TeamEvaluationStatusInProgress,
	}, nil)
	suite.repos.tempEvaluations.EXPECT().ExistsNotCompletedByTeamEvaluation(id).Return(true, nil)
	suite.repos.teamEvaluations.EXPECT().UpdateWithVersion(gomock.Any()).Times(0)

	_, err := suite.service.Submit(suite.ctx, id)

	suite.ErrorIs(err, apperrors.ErrIncompleteDownwardEvaluations)
}

func (suite *TeamEvaluationServiceTestSuite) TestSubmit_AlreadySubmitted() {
	for _, status := range []models.TeamEvaluationStatus{models.TeamEvaluationStatusSubmitted, models.TeamEvaluationStatusCompleted} {
		suite.Run(string(status), func() {
			id := uuid.New()
			suite.repos.expectTransaction()
			suite.repos.teamEvaluations.EXPECT().GetByID(id).Return(&models.TeamEvaluation{
				BaseModel: models.BaseModel{ID: id},
				Status:    status,
			}, nil)

			_, err := suite.service.Submit(suite.ctx, id)

			suite.ErrorIs(err, apperrors.ErrAlreadySubmitted)
		})
	}
}

func (suite *TeamEvaluationServiceTestSuite) TestSubmit_NotFound() {
	id := uuid.New()
	suite.repos.expectTransaction()
	suite.repos.teamEvaluations.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Submit(suite.ctx, id)

	suite.ErrorIs(err, apperrors.ErrTeamEvaluationNotFound)
}

func (suite *TeamEvaluationServiceTestSuite) TestSubmit_ConcurrentSubmit() {
	id := uuid.New()
	suite.repos.expectTransaction()
	suite.repos.teamEvaluations.EXPECT().GetByID(id).Return(&models.TeamEvaluation{
		BaseModel: models.BaseModel{ID: id},
		Status:    models.TeamEvaluationStatusInProgress,
	}, nil)
	suite.repos.tempEvaluations.EXPECT().ExistsNotCompletedByTeamEvaluation(id).Return(false, nil)
	suite.repos.teamEvaluations.EXPECT().UpdateWithVersion(gomock.Any()).Return(repositoryStale())

	_, err := suite.service.Submit(suite.ctx, id)

	suite.ErrorIs(err, apperrors.ErrConcurrentModification)
}

func (suite *TeamEvaluationServiceTestSuite) TestIsAllManagerEvaluationSubmitted() {
	periodID := uuid.New()
	tests := []struct {
		name     string
		statuses []models.TeamEvaluationStatus
		want     bool
	}{
		{"no teams", nil, true},
		{"all submitted", []models.TeamEvaluationStatus{models.TeamEvaluationStatusSubmitted, models.TeamEvaluationStatusCompleted}, true},
		{"one in progress", []models.TeamEvaluationStatus{models.TeamEvaluationStatusSubmitted, models.TeamEvaluationStatusInProgress}, false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			evaluations := make([]models.TeamEvaluation, len(tt.statuses))
			for i, status := range tt.statuses {
				evaluations[i] = models.TeamEvaluation{PeriodID: periodID, Status: status}
			}
			suite.repos.periods.EXPECT().GetByID(periodID).Return(&models.Period{}, nil)
			suite.repos.teamEvaluations.EXPECT().GetByPeriodID(periodID).Return(evaluations, nil)

			got, err := suite.service.IsAllManagerEvaluationSubmitted(periodID)

			suite.Require().NoError(err)
			suite.Equal(tt.want, got)
		})
	}
}

func (suite *TeamEvaluationServiceTestSuite) TestIsAllManagerEvaluationSubmitted_UnknownPeriod() {
	periodID := uuid.New()
	suite.repos.periods.EXPECT().GetByID(periodID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.IsAllManagerEvaluationSubmitted(periodID)

	suite.ErrorIs(err, apperrors.ErrPeriodNotFound)
}

func TestTeamEvaluationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamEvaluationServiceTestSuite))
}
