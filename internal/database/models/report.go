package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeedbackReport is the per-member report shell of a non-final period
type FeedbackReport struct {
	BaseModel
	TeamEvaluationID uuid.UUID      `json:"team_evaluation_id" gorm:"type:uuid;not null;uniqueIndex:idx_feedback_report_member"`
	EmployeeID       uuid.UUID      `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_feedback_report_member"`
	Report           datatypes.JSON `json:"report,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for FeedbackReport
func (FeedbackReport) TableName() string {
	return "feedback_reports"
}

// FinalEvaluationReport is the per-member report shell of a final period
type FinalEvaluationReport struct {
	BaseModel
	TeamEvaluationID uuid.UUID      `json:"team_evaluation_id" gorm:"type:uuid;not null;uniqueIndex:idx_final_report_member"`
	EmployeeID       uuid.UUID      `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_final_report_member"`
	Report           datatypes.JSON `json:"report,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for FinalEvaluationReport
func (FinalEvaluationReport) TableName() string {
	return "final_evaluation_reports"
}
