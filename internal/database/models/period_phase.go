package models

import (
	apperrors "review-cycle-backend/internal/errors"
)

// Next returns the only legal phase following p.
//
// The finality flag is consulted only at the two forks (PEER_EVALUATION and
// REPORT_GENERATION); a nil flag there yields ErrMissingFinalityFlag.
func (p PeriodPhase) Next(isFinal *bool) (PeriodPhase, error) {
	switch p {
	case PeriodPhaseNotStarted:
		return PeriodPhasePeerEvaluation, nil
	case PeriodPhasePeerEvaluation:
		if isFinal == nil {
			return "", apperrors.NewInvalidTransitionError(string(p), apperrors.ReasonMissingFinalityFlag)
		}
		if *isFinal {
			return PeriodPhaseMiddleReport, nil
		}
		return PeriodPhaseReportGeneration, nil
	case PeriodPhaseMiddleReport:
		return PeriodPhaseManagerEvaluation, nil
	case PeriodPhaseManagerEvaluation:
		return PeriodPhaseReportGeneration, nil
	case PeriodPhaseReportGeneration:
		if isFinal == nil {
			return "", apperrors.NewInvalidTransitionError(string(p), apperrors.ReasonMissingFinalityFlag)
		}
		if *isFinal {
			return PeriodPhaseEvaluationFeedback, nil
		}
		return PeriodPhaseCompleted, nil
	case PeriodPhaseEvaluationFeedback:
		return PeriodPhaseCompleted, nil
	case PeriodPhaseCompleted:
		return "", apperrors.NewInvalidTransitionError(string(p), apperrors.ReasonTerminalPhase)
	}
	return "", apperrors.NewInvalidTransitionError(string(p), apperrors.ReasonUnknownPhase)
}

// IsTerminal reports whether no further transition is possible
func (p PeriodPhase) IsTerminal() bool {
	return p == PeriodPhaseCompleted
}
