package repository

import (
	"review-cycle-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TempEvaluationRepository handles database operations for downward draft evaluations
type TempEvaluationRepository struct {
	db *gorm.DB
}

// NewTempEvaluationRepository creates a new temp evaluation repository
func NewTempEvaluationRepository(db *gorm.DB) *TempEvaluationRepository {
	return &TempEvaluationRepository{db: db}
}

// CreateBatch inserts drafts, skipping members that already have one
func (r *TempEvaluationRepository) CreateBatch(evaluations []models.TempEvaluation) error {
	if len(evaluations) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&evaluations).Error
}

// GetByEmployeeAndTeamEvaluation retrieves the draft for one member of a team evaluation
func (r *TempEvaluationRepository) GetByEmployeeAndTeamEvaluation(employeeID, teamEvaluationID uuid.UUID) (*models.TempEvaluation, error) {
	var evaluation models.TempEvaluation
	err := r.db.First(&evaluation, "employee_id = ? AND team_evaluation_id = ?", employeeID, teamEvaluationID).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// ExistsNotCompletedByTeamEvaluation reports whether any draft of the team evaluation is unfinished
func (r *TempEvaluationRepository) ExistsNotCompletedByTeamEvaluation(teamEvaluationID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TempEvaluation{}).
		Where("team_evaluation_id = ? AND status <> ?", teamEvaluationID, models.TempEvaluationStatusCompleted).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update saves a draft
func (r *TempEvaluationRepository) Update(evaluation *models.TempEvaluation) error {
	return r.db.Save(evaluation).Error
}
