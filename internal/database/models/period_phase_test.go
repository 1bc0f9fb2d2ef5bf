package models

import (
	"errors"
	"testing"

	apperrors "review-cycle-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// walk advances from NOT_STARTED until the terminal phase and returns every visited phase
func walk(t *testing.T, isFinal *bool) []PeriodPhase {
	t.Helper()
	visited := []PeriodPhase{PeriodPhaseNotStarted}
	phase := PeriodPhaseNotStarted
	for !phase.IsTerminal() {
		next, err := phase.Next(isFinal)
		require.NoError(t, err)
		visited = append(visited, next)
		phase = next
		require.Less(t, len(visited), 10, "phase sequence does not terminate")
	}
	return visited
}

func TestPeriodPhaseNext_FinalSequence(t *testing.T) {
	visited := walk(t, boolPtr(true))

	assert.Equal(t, []PeriodPhase{
		PeriodPhaseNotStarted,
		PeriodPhasePeerEvaluation,
		PeriodPhaseMiddleReport,
		PeriodPhaseManagerEvaluation,
		PeriodPhaseReportGeneration,
		PeriodPhaseEvaluationFeedback,
		PeriodPhaseCompleted,
	}, visited)
}

func TestPeriodPhaseNext_NonFinalSequence(t *testing.T) {
	visited := walk(t, boolPtr(false))

	assert.Equal(t, []PeriodPhase{
		PeriodPhaseNotStarted,
		PeriodPhasePeerEvaluation,
		PeriodPhaseReportGeneration,
		PeriodPhaseCompleted,
	}, visited)
	assert.NotContains(t, visited, PeriodPhaseMiddleReport)
	assert.NotContains(t, visited, PeriodPhaseEvaluationFeedback)
}

func TestPeriodPhaseNext_CompletedIsTerminal(t *testing.T) {
	for _, flag := range []*bool{nil, boolPtr(true), boolPtr(false)} {
		next, err := PeriodPhaseCompleted.Next(flag)

		assert.Empty(t, next)
		assert.True(t, errors.Is(err, apperrors.ErrTerminalPhase))
		assert.True(t, apperrors.IsInvalidTransition(err))
	}
}

func TestPeriodPhaseNext_MissingFinalityFlag(t *testing.T) {
	for _, phase := range []PeriodPhase{PeriodPhasePeerEvaluation, PeriodPhaseReportGeneration} {
		t.Run(string(phase), func(t *testing.T) {
			next, err := phase.Next(nil)

			assert.Empty(t, next)
			assert.True(t, errors.Is(err, apperrors.ErrMissingFinalityFlag))
			assert.True(t, apperrors.IsInvalidTransition(err))
		})
	}
}

func TestPeriodPhaseNext_FlagNotConsultedOutsideForks(t *testing.T) {
	tests := []struct {
		from PeriodPhase
		want PeriodPhase
	}{
		{PeriodPhaseNotStarted, PeriodPhasePeerEvaluation},
		{PeriodPhaseMiddleReport, PeriodPhaseManagerEvaluation},
		{PeriodPhaseManagerEvaluation, PeriodPhaseReportGeneration},
		{PeriodPhaseEvaluationFeedback, PeriodPhaseCompleted},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			next, err := tt.from.Next(nil)

			require.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestPeriodPhaseNext_UnknownPhase(t *testing.T) {
	next, err := PeriodPhase("ARCHIVED").Next(boolPtr(true))

	assert.Empty(t, next)
	assert.True(t, apperrors.IsInvalidTransition(err))
	assert.False(t, errors.Is(err, apperrors.ErrTerminalPhase))
}

func TestEnumsIsValid(t *testing.T) {
	assert.True(t, PeriodPhaseMiddleReport.IsValid())
	assert.False(t, PeriodPhase("DONE").IsValid())
	assert.True(t, PeriodUnitQuarter.IsValid())
	assert.False(t, PeriodUnit("MONTH").IsValid())
	assert.True(t, RoleMember.IsValid())
	assert.False(t, Role("GUEST").IsValid())
	assert.True(t, TeamEvaluationStatusCompleted.IsSubmitted())
	assert.False(t, TeamEvaluationStatusInProgress.IsSubmitted())
}
