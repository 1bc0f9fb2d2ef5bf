package handlers_test

import (
	"review-cycle-backend/internal/api/handlers"
	"review-cycle-backend/internal/api/routes"
	"review-cycle-backend/internal/mocks"
	"review-cycle-backend/internal/testutils"

	"go.uber.org/mock/gomock"
)

// apiHarness registers every API route against mocked services
type apiHarness struct {
	periodService         *mocks.MockPeriodServiceInterface
	cycleService          *mocks.MockEvaluationCycleServiceInterface
	teamEvaluationService *mocks.MockTeamEvaluationServiceInterface
	tempEvaluationService *mocks.MockTempEvaluationServiceInterface
	peerEvaluationService *mocks.MockPeerEvaluationServiceInterface
	httpSuite             *testutils.HTTPTestSuite
}

func newAPIHarness(ctrl *gomock.Controller) *apiHarness {
	h := &apiHarness{
		periodService:         mocks.NewMockPeriodServiceInterface(ctrl),
		cycleService:          mocks.NewMockEvaluationCycleServiceInterface(ctrl),
		teamEvaluationService: mocks.NewMockTeamEvaluationServiceInterface(ctrl),
		tempEvaluationService: mocks.NewMockTempEvaluationServiceInterface(ctrl),
		peerEvaluationService: mocks.NewMockPeerEvaluationServiceInterface(ctrl),
		httpSuite:             testutils.SetupHTTPTest(),
	}

	routes.RegisterAPIRoutes(
		h.httpSuite.Router.Group("/api/v1"),
		handlers.NewPeriodHandler(h.periodService, h.cycleService, h.peerEvaluationService, h.teamEvaluationService),
		handlers.NewTeamEvaluationHandler(h.teamEvaluationService, h.tempEvaluationService),
		handlers.NewPeerEvaluationHandler(h.peerEvaluationService),
	)
	return h
}

func boolPtr(b bool) *bool { return &b }
