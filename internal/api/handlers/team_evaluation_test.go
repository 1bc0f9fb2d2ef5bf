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

// TeamEvaluationHandlerTestSuite defines the test suite for TeamEvaluationHandler
type TeamEvaluationHandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	api  *apiHarness
}

func (suite *TeamEvaluationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.api = newAPIHarness(suite.ctrl)
}

func (suite *TeamEvaluationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamEvaluationHandlerTestSuite) TestSubmit() {
	evaluationID := uuid.New()
	url := fmt.Sprintf("/api/v1/team-evaluations/%s/submit", evaluationID)

	suite.T().Run("Success", func(t *testing.T) {
		suite.api.teamEvaluationService.EXPECT().
			Submit(gomock.Any(), evaluationID).
			Return(&service.TeamEvaluationResponse{
				ID:      evaluationID,
				Status:  models.TeamEvaluationStatusSubmitted,
				Version: 3,
			}, nil)

		recorder := suite.api.httpSuite.MakeRequest(http.MethodPost, url, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TeamEvaluationResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.TeamEvaluationStatusSubmitted, response.Status)
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"PendingDrafts", apperrors.ErrIncompleteDownwardEvaluations, http.StatusBadRequest},
		{"AlreadySubmitted", apperrors.ErrAlreadySubmitted, http.StatusConflict},
		{"NotFound", apperrors.ErrTeamEvaluationNotFound, http.StatusNotFound},
		{"Concurrent", apperrors.ErrConcurrentModification, http.StatusConflict},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.api.teamEvaluationService.EXPECT().Submit(gomock.Any(), evaluationID).Return(nil, tt.err)

			recorder := suite.api.httpSuite.MakeRequest(http.MethodPost, url, nil)

			testutils.AssertErrorResponse(t, recorder, tt.status, tt.err.Error())
		})
	}

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.api.httpSuite.MakeRequest(http.MethodPost, "/api/v1/team-evaluations/abc/submit", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team evaluation ID")
	})
}

func (suite *TeamEvaluationHandlerTestSuite) TestUpdateTempEvaluation() {
	evaluationID := uuid.New()
	url := fmt.Sprintf("/api/v1/team-evaluations/%s/temp-evaluations/E001", evaluationID)

	suite.T().Run("Success", func(t *testing.T) {
		score := 4.5
		suite.api.tempEvaluationService.EXPECT().
			Update(gomock.Any(), evaluationID, "E001", gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ string, req *service.UpdateTempEvaluationRequest) (*service.TempEvaluationResponse, error) {
				assert.Equal(t, &score, req.Score)
				assert.Equal(t, "steady delivery", req.Comment)
				return &service.TempEvaluationResponse{
					TeamEvaluationID: evaluationID,
					EmpNo:            "E001",
					Score:            req.Score,
					Comment:          req.Comment,
					Status:           models.TempEvaluationStatusCompleted,
				}, nil
			})

		recorder := suite.api.httpSuite.MakeRequest(http.MethodPut, url, map[string]interface{}{
			"score":   4.5,
			"comment": "steady delivery",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TempEvaluationResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "E001", response.EmpNo)
		assert.Equal(t, models.TempEvaluationStatusCompleted, response.Status)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.api.httpSuite.MakeRequest(http.MethodPut, url, "{score:")

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "")
	})

	suite.T().Run("TeamAlreadySubmitted", func(t *testing.T) {
		suite.api.tempEvaluationService.EXPECT().
			Update(gomock.Any(), evaluationID, "E001", gomock.Any()).
			Return(nil, apperrors.ErrAlreadySubmitted)

		recorder := suite.api.httpSuite.MakeRequest(http.MethodPut, url, map[string]interface{}{"score": 3})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, apperrors.ErrAlreadySubmitted.Error())
	})

	suite.T().Run("NoDraft", func(t *testing.T) {
		suite.api.tempEvaluationService.EXPECT().
			Update(gomock.Any(), evaluationID, "E001", gomock.Any()).
			Return(nil, apperrors.ErrTempEvaluationNotFound)

		recorder := suite.api.httpSuite.MakeRequest(http.MethodPut, url, map[string]interface{}{"score": 3})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "temp evaluation not found")
	})
}

func TestTeamEvaluationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamEvaluationHandlerTestSuite))
}
