package service_test

import (
	"review-cycle-backend/internal/mocks"
	"review-cycle-backend/internal/repository"

	"go.uber.org/mock/gomock"
)

// repoMocks holds one mock per repository, bundled the way a transaction hands them out
type repoMocks struct {
	periods         *mocks.MockPeriodRepositoryInterface
	teams           *mocks.MockTeamRepositoryInterface
	employees       *mocks.MockEmployeeRepositoryInterface
	teamKPIs        *mocks.MockTeamKPIRepositoryInterface
	teamEvaluations *mocks.MockTeamEvaluationRepositoryInterface
	peerEvaluations *mocks.MockPeerEvaluationRepositoryInterface
	keywords        *mocks.MockKeywordRepositoryInterface
	tempEvaluations *mocks.MockTempEvaluationRepositoryInterface
	reports         *mocks.MockReportRepositoryInterface
	txManager       *mocks.MockTransactionManagerInterface
}

func newRepoMocks(ctrl *gomock.Controller) *repoMocks {
	return &repoMocks{
		periods:         mocks.NewMockPeriodRepositoryInterface(ctrl),
		teams:           mocks.NewMockTeamRepositoryInterface(ctrl),
		employees:       mocks.NewMockEmployeeRepositoryInterface(ctrl),
		teamKPIs:        mocks.NewMockTeamKPIRepositoryInterface(ctrl),
		teamEvaluations: mocks.NewMockTeamEvaluationRepositoryInterface(ctrl),
		peerEvaluations: mocks.NewMockPeerEvaluationRepositoryInterface(ctrl),
		keywords:        mocks.NewMockKeywordRepositoryInterface(ctrl),
		tempEvaluations: mocks.NewMockTempEvaluationRepositoryInterface(ctrl),
		reports:         mocks.NewMockReportRepositoryInterface(ctrl),
		txManager:       mocks.NewMockTransactionManagerInterface(ctrl),
	}
}

func (m *repoMocks) repositories() *repository.Repositories {
	return &repository.Repositories{
		Periods:         m.periods,
		Teams:           m.teams,
		Employees:       m.employees,
		TeamKPIs:        m.teamKPIs,
		TeamEvaluations: m.teamEvaluations,
		PeerEvaluations: m.peerEvaluations,
		Keywords:        m.keywords,
		TempEvaluations: m.tempEvaluations,
		Reports:         m.reports,
	}
}

// expectTransaction makes WithinTransaction run fn against the mocks and return its error
func (m *repoMocks) expectTransaction() *gomock.Call {
	return m.txManager.EXPECT().
		WithinTransaction(gomock.Any()).
		DoAndReturn(func(fn func(*repository.Repositories) error) error {
			return fn(m.repositories())
		})
}

func boolPtr(b bool) *bool { return &b }

func noopRelease() {}

func repositoryStale() error { return repository.ErrStaleObject }
