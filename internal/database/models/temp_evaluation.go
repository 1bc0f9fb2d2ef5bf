package models

import (
	"github.com/google/uuid"
)

// TempEvaluation is a manager's draft downward evaluation of one member
type TempEvaluation struct {
	BaseModel
	TeamEvaluationID uuid.UUID            `json:"team_evaluation_id" gorm:"type:uuid;not null;uniqueIndex:idx_temp_evaluation_member"`
	EmployeeID       uuid.UUID            `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_temp_evaluation_member"`
	Score            *float64             `json:"score,omitempty"`
	Comment          string               `json:"comment" gorm:"type:text"`
	Reason           string               `json:"reason" gorm:"type:text"`
	Status           TempEvaluationStatus `json:"status" gorm:"size:20;not null;default:NOT_STARTED"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for TempEvaluation
func (TempEvaluation) TableName() string {
	return "temp_evaluations"
}
