package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"review-cycle-backend/internal/database/models"
	apperrors "review-cycle-backend/internal/errors"
	"review-cycle-backend/internal/service"
	"review-cycle-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PeerEvaluationHandlerTestSuite defines the test suite for PeerEvaluationHandler
type PeerEvaluationHandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	api  *apiHarness
}

func (suite *PeerEvaluationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.api = newAPIHarness(suite.ctrl)
}

func (suite *PeerEvaluationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PeerEvaluationHandlerTestSuite) TestGetStatusList() {
	periodID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.api.peerEvaluationService.EXPECT().
			GetStatusList("E001", periodID).
			Return([]service.PeerEvaluationStatusResponse{
				{ID: uuid.New(), TargetEmpNo: "E002", TargetName: "Bob", JointTasks: []string{"KPI1"}},
			}, nil)

		recorder := suite.api.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/v1/peer-evaluations?emp_no=E001&period_id=%s", periodID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response []service.PeerEvaluationStatusResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 1)
		assert.Equal(t, []string{"KPI1"}, response[0].JointTasks)
		assert.False(t, response[0].IsCompleted)
	})

	suite.T().Run("MissingEmpNo", func(t *testing.T) {
		recorder := suite.api.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/v1/peer-evaluations?period_id=%s", periodID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "emp_no is required")
	})

	suite.T().Run("InvalidPeriodID", func(t *testing.T) {
		recorder := suite.api.httpSuite.MakeRequest(http.MethodGet, "/api/v1/peer-evaluations?emp_no=E001&period_id=q2", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid period ID")
	})

	suite.T().Run("UnknownEmployee", func(t *testing.T) {
		suite.api.peerEvaluationService.EXPECT().
			GetStatusList("E404", periodID).
			Return(nil, apperrors.ErrEmployeeNotFound)

		recorder := suite.api.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/v1/peer-evaluations?emp_no=E404&period_id=%s", periodID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "employee not found")
	})
}

func (suite *PeerEvaluationHandlerTestSuite) TestGetDetail() {
	evaluationID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		weight := 70
		keywordID := uuid.New()
		suite.api.peerEvaluationService.EXPECT().
			GetDetail(evaluationID).
			Return(&service.PeerEvaluationDetailResponse{
				ID:          evaluationID,
				TargetEmpNo: "E002",
				JointTasks:  []string{"KPI1", "KPI2"},
				Weight:      &weight,
				IsCompleted: true,
				Keywords: []service.KeywordResponse{
					{ID: &keywordID, Name: "Reliable", Sentiment: models.KeywordSentimentPositive},
					{Name: "Calm under pressure", Custom: true},
				},
			}, nil)

		recorder := suite.api.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/v1/peer-evaluations/%s", evaluationID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.PeerEvaluationDetailResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 70, *response.Weight)
		assert.Len(t, response.Keywords, 2)
		assert.True(t, response.Keywords[1].Custom)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.api.peerEvaluationService.EXPECT().GetDetail(evaluationID).Return(nil, apperrors.ErrPeerEvaluationNotFound)

		recorder := suite.api.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/v1/peer-evaluations/%s", evaluationID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "peer evaluation not found")
	})
}

func (suite *PeerEvaluationHandlerTestSuite) TestSubmit() {
	evaluationID := uuid.New()
	url := fmt.Sprintf("/api/v1/peer-evaluations/%s/submit", evaluationID)

	suite.T().Run("Success", func(t *testing.T) {
		keywordID := uuid.New()
		suite.api.peerEvaluationService.EXPECT().
			Submit(gomock.Any(), evaluationID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req *service.SubmitPeerEvaluationRequest) error {
				assert.Equal(t, 80, req.Weight)
				assert.Equal(t, []uuid.UUID{keywordID}, req.KeywordIDs)
				assert.Equal(t, []string{"Mentors juniors"}, req.CustomKeywords)
				return nil
			})

		recorder := suite.api.httpSuite.MakeRequest(http.MethodPost, url, map[string]interface{}{
			"weight":          80,
			"keyword_ids":     []string{keywordID.String()},
			"custom_keywords": []string{"Mentors juniors"},
		})

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.api.httpSuite.MakeRequest(http.MethodPost, url, `{"weight": "heavy"}`)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "")
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"AlreadySubmitted", apperrors.ErrAlreadySubmitted, http.StatusConflict},
		{"PhaseClosed", apperrors.ErrPeerEvaluationNotOpen, http.StatusConflict},
		{"UnknownKeyword", apperrors.ErrKeywordNotFound, http.StatusNotFound},
		{"InvalidWeight", apperrors.NewValidationError("Weight", "failed on max"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.api.peerEvaluationService.EXPECT().Submit(gomock.Any(), evaluationID, gomock.Any()).Return(tt.err)

			recorder := suite.api.httpSuite.MakeRequest(http.MethodPost, url, map[string]interface{}{"weight": 50})

			testutils.AssertErrorResponse(t, recorder, tt.status, tt.err.Error())
		})
	}
}

func (suite *PeerEvaluationHandlerTestSuite) TestGetSystemKeywords() {
	keywordID := uuid.New()
	suite.api.peerEvaluationService.EXPECT().
		GetSystemKeywords().
		Return([]service.KeywordResponse{{ID: &keywordID, Name: "Proactive", Sentiment: models.KeywordSentimentPositive}}, nil)

	recorder := suite.api.httpSuite.MakeRequest(http.MethodGet, "/api/v1/peer-evaluations/keywords", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	var response []service.KeywordResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.Require().Len(response, 1)
	suite.Equal("Proactive", response[0].Name)
	suite.Equal(&keywordID, response[0].ID)
}

func TestPeerEvaluationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PeerEvaluationHandlerTestSuite))
}
