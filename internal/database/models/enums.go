package models

// PeriodPhase is the current stage of a period's workflow
type PeriodPhase string

const (
	PeriodPhaseNotStarted         PeriodPhase = "NOT_STARTED"
	PeriodPhasePeerEvaluation     PeriodPhase = "PEER_EVALUATION"
	PeriodPhaseMiddleReport       PeriodPhase = "MIDDLE_REPORT"
	PeriodPhaseManagerEvaluation  PeriodPhase = "MANAGER_EVALUATION"
	PeriodPhaseReportGeneration   PeriodPhase = "REPORT_GENERATION"
	PeriodPhaseEvaluationFeedback PeriodPhase = "EVALUATION_FEEDBACK"
	PeriodPhaseCompleted          PeriodPhase = "COMPLETED"
)

// PeriodUnit distinguishes quarterly periods from annual ones
type PeriodUnit string

const (
	PeriodUnitQuarter PeriodUnit = "QUARTER"
	PeriodUnitAnnual  PeriodUnit = "ANNUAL"
)

// TeamEvaluationStatus is the lifecycle status of a team evaluation
type TeamEvaluationStatus string

const (
	TeamEvaluationStatusNotStarted        TeamEvaluationStatus = "NOT_STARTED"
	TeamEvaluationStatusInProgress        TeamEvaluationStatus = "IN_PROGRESS"
	TeamEvaluationStatusAIPhase1Completed TeamEvaluationStatus = "AI_PHASE1_COMPLETED"
	TeamEvaluationStatusAIPhase2Completed TeamEvaluationStatus = "AI_PHASE2_COMPLETED"
	TeamEvaluationStatusAIPhase3Completed TeamEvaluationStatus = "AI_PHASE3_COMPLETED"
	TeamEvaluationStatusSubmitted         TeamEvaluationStatus = "SUBMITTED"
	TeamEvaluationStatusCompleted         TeamEvaluationStatus = "COMPLETED"
)

// TempEvaluationStatus is the status of a manager's draft evaluation of one member
type TempEvaluationStatus string

const (
	TempEvaluationStatusNotStarted TempEvaluationStatus = "NOT_STARTED"
	TempEvaluationStatusCompleted  TempEvaluationStatus = "COMPLETED"
)

// Role is the organizational role of an employee
type Role string

const (
	RoleMember  Role = "MEMBER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

// KeywordSentiment classifies system keywords
type KeywordSentiment string

const (
	KeywordSentimentPositive KeywordSentiment = "POSITIVE"
	KeywordSentimentNegative KeywordSentiment = "NEGATIVE"
)

// IsValid checks if the PeriodPhase is valid
func (p PeriodPhase) IsValid() bool {
	switch p {
	case PeriodPhaseNotStarted, PeriodPhasePeerEvaluation, PeriodPhaseMiddleReport,
		PeriodPhaseManagerEvaluation, PeriodPhaseReportGeneration,
		PeriodPhaseEvaluationFeedback, PeriodPhaseCompleted:
		return true
	}
	return false
}

// IsValid checks if the PeriodUnit is valid
func (u PeriodUnit) IsValid() bool {
	switch u {
	case PeriodUnitQuarter, PeriodUnitAnnual:
		return true
	}
	return false
}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// IsSubmitted reports whether the manager has closed out the team evaluation
func (s TeamEvaluationStatus) IsSubmitted() bool {
	return s == TeamEvaluationStatusSubmitted || s == TeamEvaluationStatusCompleted
}
