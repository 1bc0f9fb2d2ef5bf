package service_test

import (
	"context"
	"testing"

	"review-cycle-backend/internal/database/models"
	apperrors "review-cycle-backend/internal/errors"
	"review-cycle-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PeerEvaluationServiceTestSuite defines the test suite for PeerEvaluationService
type PeerEvaluationServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repos   *repoMocks
	service *service.PeerEvaluationService
	ctx     context.Context
}

func (suite *PeerEvaluationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repos = newRepoMocks(suite.ctrl)
	suite.service = service.NewPeerEvaluationService(
		suite.repos.periods,
		suite.repos.employees,
		suite.repos.peerEvaluations,
		suite.repos.keywords,
		suite.repos.txManager,
		validator.New(),
	)
	suite.ctx = context.Background()
}

func (suite *PeerEvaluationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PeerEvaluationServiceTestSuite) openPairing(phase models.PeriodPhase) *models.PeerEvaluation {
	return &models.PeerEvaluation{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		JointTasks: datatypes.JSONSlice[string]{"Latency"},
		TeamEvaluation: &models.TeamEvaluation{
			Period: &models.Period{Phase: phase},
		},
	}
}

func (suite *PeerEvaluationServiceTestSuite) TestSubmit_Success() {
	pairing := suite.openPairing(models.PeriodPhasePeerEvaluation)
	keywordID := uuid.New()

	suite.repos.expectTransaction()
	suite.repos.peerEvaluations.EXPECT().GetByID(pairing.ID).Return(pairing, nil)
	suite.repos.keywords.EXPECT().GetByIDs([]uuid.UUID{keywordID}).Return([]models.Keyword{{BaseModel: models.BaseModel{ID: keywordID}, Name: "Reliable"}}, nil)
	suite.repos.peerEvaluations.EXPECT().MarkCompleted(pairing.ID, 70).Return(nil)
	suite.repos.keywords.EXPECT().CreateSelections(gomock.Any()).DoAndReturn(func(selections []models.PeerEvaluationKeyword) error {
		suite.Require().Len(selections, 2)
		suite.Equal(keywordID, *selections[0].KeywordID)
		suite.Nil(selections[1].KeywordID)
		suite.Equal("calm under pressure", selections[1].CustomKeyword)
		return nil
	})

	err := suite.service.Submit(suite.ctx, pairing.ID, &service.SubmitPeerEvaluationRequest{
		Weight:         70,
		KeywordIDs:     []uuid.UUID{keywordID, keywordID},
		CustomKeywords: []string{"  calm under pressure "},
	})

	suite.NoError(err)
}

func (suite *PeerEvaluationServiceTestSuite) TestSubmit_AlreadyCompleted() {
	pairing := suite.openPairing(models.PeriodPhasePeerEvaluation)
	pairing.IsCompleted = true

	suite.repos.expectTransaction()
	suite.repos.peerEvaluations.EXPECT().GetByID(pairing.ID).Return(pairing, nil)
	suite.repos.peerEvaluations.EXPECT().MarkCompleted(gomock.Any(), gomock.Any()).Times(0)

	err := suite.service.Submit(suite.ctx, pairing.ID, &service.SubmitPeerEvaluationRequest{Weight: 50})

	suite.ErrorIs(err, apperrors.ErrAlreadySubmitted)
}

func (suite *PeerEvaluationServiceTestSuite) TestSubmit_LostRace() {
	pairing := suite.openPairing(models.PeriodPhasePeerEvaluation)

	suite.repos.expectTransaction()
	suite.repos.peerEvaluations.EXPECT().GetByID(pairing.ID).Return(pairing, nil)
	suite.repos.keywords.EXPECT().GetByIDs(gomock.Any()).Return(nil, nil)
	suite.repos.peerEvaluations.EXPECT().MarkCompleted(pairing.ID, 50).Return(repositoryStale())

	err := suite.service.Submit(suite.ctx, pairing.ID, &service.SubmitPeerEvaluationRequest{Weight: 50})

	suite.ErrorIs(err, apperrors.ErrAlreadySubmitted)
}

func (suite *PeerEvaluationServiceTestSuite) TestSubmit_OutsidePeerEvaluationPhase() {
	pairing := suite.openPairing(models.PeriodPhaseReportGeneration)

	suite.repos.expectTransaction()
	suite.repos.peerEvaluations.EXPECT().GetByID(pairing.ID).Return(pairing, nil)

	err := suite.service.Submit(suite.ctx, pairing.ID, &service.SubmitPeerEvaluationRequest{Weight: 50})

	suite.ErrorIs(err, apperrors.ErrPeerEvaluationNotOpen)
}

func (suite *PeerEvaluationServiceTestSuite) TestSubmit_UnknownKeyword() {
	pairing := suite.openPairing(models.PeriodPhasePeerEvaluation)

	suite.repos.expectTransaction()
	suite.repos.peerEvaluations.EXPECT().GetByID(pairing.ID).Return(pairing, nil)
	suite.repos.keywords.EXPECT().GetByIDs(gomock.Any()).Return(nil, nil)

	err := suite.service.Submit(suite.ctx, pairing.ID, &service.SubmitPeerEvaluationRequest{Weight: 50, KeywordIDs: []uuid.UUID{uuid.New()}})

	suite.ErrorIs(err, apperrors.ErrKeywordNotFound)
}

func (suite *PeerEvaluationServiceTestSuite) TestSubmit_WeightOutOfRange() {
	err := suite.service.Submit(suite.ctx, uuid.New(), &service.SubmitPeerEvaluationRequest{Weight: 101})

	suite.True(apperrors.IsValidation(err))
}

func (suite *PeerEvaluationServiceTestSuite) TestSubmit_NotFound() {
	id := uuid.New()
	suite.repos.expectTransaction()
	suite.repos.peerEvaluations.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Submit(suite.ctx, id, &service.SubmitPeerEvaluationRequest{Weight: 10})

	suite.ErrorIs(err, apperrors.ErrPeerEvaluationNotFound)
}

func (suite *PeerEvaluationServiceTestSuite) TestIsAllCompleted() {
	periodID := uuid.New()
	suite.repos.periods.EXPECT().GetByID(periodID).Return(&models.Period{}, nil).Times(2)
	suite.repos.peerEvaluations.EXPECT().ExistsIncompleteByPeriod(periodID).Return(true, nil)
	suite.repos.peerEvaluations.EXPECT().ExistsIncompleteByPeriod(periodID).Return(false, nil)

	first, err := suite.service.IsAllCompleted(periodID)
	suite.Require().NoError(err)
	second, err := suite.service.IsAllCompleted(periodID)
	suite.Require().NoError(err)

	suite.False(first)
	suite.True(second)
}

func (suite *PeerEvaluationServiceTestSuite) TestIsAllCompleted_UnknownPeriod() {
	periodID := uuid.New()
	suite.repos.periods.EXPECT().GetByID(periodID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.IsAllCompleted(periodID)

	suite.ErrorIs(err, apperrors.ErrPeriodNotFound)
}

func (suite *PeerEvaluationServiceTestSuite) TestGetStatusList() {
	evaluator := &models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}, EmpNo: "E001"}
	periodID := uuid.New()
	suite.repos.employees.EXPECT().GetByEmpNo("E001").Return(evaluator, nil)
	suite.repos.peerEvaluations.EXPECT().GetByEvaluatorAndPeriod(evaluator.ID, periodID).Return([]models.PeerEvaluation{
		{
			JointTasks:  datatypes.JSONSlice[string]{"Latency", "Cost"},
			IsCompleted: true,
			Target:      &models.Employee{EmpNo: "E002", Name: "Bob", Position: "Engineer"},
		},
	}, nil)

	list, err := suite.service.GetStatusList("E001", periodID)

	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal("E002", list[0].TargetEmpNo)
	suite.Equal([]string{"Latency", "Cost"}, list[0].JointTasks)
	suite.True(list[0].IsCompleted)
}

func (suite *PeerEvaluationServiceTestSuite) TestGetStatusList_UnknownEmployee() {
	suite.repos.employees.EXPECT().GetByEmpNo("E404").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetStatusList("E404", uuid.New())

	suite.ErrorIs(err, apperrors.ErrEmployeeNotFound)
}

func (suite *PeerEvaluationServiceTestSuite) TestGetDetail() {
	pairing := suite.openPairing(models.PeriodPhasePeerEvaluation)
	pairing.TeamEvaluation.PeriodID = uuid.New()
	pairing.Evaluator = &models.Employee{EmpNo: "E001"}
	pairing.Target = &models.Employee{EmpNo: "E002", Name: "Bob"}
	weight := 40
	pairing.Weight = &weight
	pairing.IsCompleted = true
	keywordID := uuid.New()

	suite.repos.peerEvaluations.EXPECT().GetByID(pairing.ID).Return(pairing, nil)
	suite.repos.keywords.EXPECT().GetSelections(pairing.ID).Return([]models.PeerEvaluationKeyword{
		{KeywordID: &keywordID, Keyword: &models.Keyword{BaseModel: models.BaseModel{ID: keywordID}, Name: "Reliable", Sentiment: models.KeywordSentimentPositive}},
		{CustomKeyword: "mentor"},
	}, nil)

	detail, err := suite.service.GetDetail(pairing.ID)

	suite.Require().NoError(err)
	suite.Equal(pairing.TeamEvaluation.PeriodID, detail.PeriodID)
	suite.Equal("E001", detail.EvaluatorEmpNo)
	suite.Equal(40, *detail.Weight)
	suite.Require().Len(detail.Keywords, 2)
	suite.Equal("Reliable", detail.Keywords[0].Name)
	suite.False(detail.Keywords[0].Custom)
	suite.Equal("mentor", detail.Keywords[1].Name)
	suite.True(detail.Keywords[1].Custom)
}

func (suite *PeerEvaluationServiceTestSuite) TestGetSystemKeywords() {
	suite.repos.keywords.EXPECT().GetAll().Return([]models.Keyword{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Reliable", Sentiment: models.KeywordSentimentPositive},
	}, nil)

	keywords, err := suite.service.GetSystemKeywords()

	suite.Require().NoError(err)
	suite.Require().Len(keywords, 1)
	suite.NotNil(keywords[0].ID)
	suite.Equal(models.KeywordSentimentPositive, keywords[0].Sentiment)
}

func TestPeerEvaluationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeerEvaluationServiceTestSuite))
}
