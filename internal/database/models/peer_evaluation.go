package models

import (
	"slices"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PeerEvaluation is one directed evaluator -> target pairing within a team evaluation
type PeerEvaluation struct {
	BaseModel
	EvaluatorID      uuid.UUID                   `json:"evaluator_id" gorm:"type:uuid;not null;uniqueIndex:idx_peer_evaluation_pair;check:chk_peer_evaluation_not_self,evaluator_id <> target_id"`
	TargetID         uuid.UUID                   `json:"target_id" gorm:"type:uuid;not null;uniqueIndex:idx_peer_evaluation_pair"`
	TeamEvaluationID uuid.UUID                   `json:"team_evaluation_id" gorm:"type:uuid;not null;uniqueIndex:idx_peer_evaluation_pair;index"`
	JointTasks       datatypes.JSONSlice[string] `json:"joint_tasks" gorm:"type:jsonb;not null"`
	Weight           *int                        `json:"weight,omitempty"`
	IsCompleted      bool                        `json:"is_completed" gorm:"not null;default:false"`

	Evaluator      *Employee       `json:"evaluator,omitempty" gorm:"foreignKey:EvaluatorID"`
	Target         *Employee       `json:"target,omitempty" gorm:"foreignKey:TargetID"`
	TeamEvaluation *TeamEvaluation `json:"team_evaluation,omitempty" gorm:"foreignKey:TeamEvaluationID"`
}

// TableName returns the table name for PeerEvaluation
func (PeerEvaluation) TableName() string {
	return "peer_evaluations"
}

// AddJointTask appends a KPI name unless already present. Returns true if it was added.
func (p *PeerEvaluation) AddJointTask(name string) bool {
	if slices.Contains(p.JointTasks, name) {
		return false
	}
	p.JointTasks = append(p.JointTasks, name)
	return true
}

// PeerEvaluationKeyword is a keyword chosen for a submitted peer evaluation:
// either a system keyword or free text.
type PeerEvaluationKeyword struct {
	BaseModel
	PeerEvaluationID uuid.UUID  `json:"peer_evaluation_id" gorm:"type:uuid;not null;index"`
	KeywordID        *uuid.UUID `json:"keyword_id,omitempty" gorm:"type:uuid"`
	CustomKeyword    string     `json:"custom_keyword,omitempty" gorm:"size:100"`

	Keyword *Keyword `json:"keyword,omitempty" gorm:"foreignKey:KeywordID"`
}

// TableName returns the table name for PeerEvaluationKeyword
func (PeerEvaluationKeyword) TableName() string {
	return "peer_evaluation_keywords"
}

// Keyword is a system-defined keyword offered on peer evaluation
type Keyword struct {
	BaseModel
	Name      string           `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Sentiment KeywordSentiment `json:"sentiment" gorm:"size:20;not null"`
}

// TableName returns the table name for Keyword
func (Keyword) TableName() string {
	return "keywords"
}
