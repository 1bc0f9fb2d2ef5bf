package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TeamEvaluation is the per-team instance of a period's workflow
type TeamEvaluation struct {
	BaseModel
	TeamID       uuid.UUID            `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_evaluation_team_period"`
	PeriodID     uuid.UUID            `json:"period_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_evaluation_team_period;index"`
	Status       TeamEvaluationStatus `json:"status" gorm:"size:30;not null;default:NOT_STARTED"`
	Report       datatypes.JSON       `json:"report,omitempty" gorm:"type:jsonb"`
	MiddleReport datatypes.JSON       `json:"middle_report,omitempty" gorm:"type:jsonb"`
	Version      int64                `json:"version" gorm:"not null;default:1"`

	Team   *Team   `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Period *Period `json:"period,omitempty" gorm:"foreignKey:PeriodID"`
}

// TableName returns the table name for TeamEvaluation
func (TeamEvaluation) TableName() string {
	return "team_evaluations"
}
