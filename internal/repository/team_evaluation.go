package repository

import (
	"time"

	"review-cycle-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamEvaluationRepository handles database operations for team evaluations
type TeamEvaluationRepository struct {
	db *gorm.DB
}

// NewTeamEvaluationRepository creates a new team evaluation repository
func NewTeamEvaluationRepository(db *gorm.DB) *TeamEvaluationRepository {
	return &TeamEvaluationRepository{db: db}
}

// CreateBatch inserts team evaluations in one statement
func (r *TeamEvaluationRepository) CreateBatch(evaluations []models.TeamEvaluation) error {
	if len(evaluations) == 0 {
		return nil
	}
	for i := range evaluations {
		if evaluations[i].Version == 0 {
			evaluations[i].Version = 1
		}
	}
	return r.db.Create(&evaluations).Error
}

// GetByID retrieves a team evaluation by ID
func (r *TeamEvaluationRepository) GetByID(id uuid.UUID) (*models.TeamEvaluation, error) {
	var evaluation models.TeamEvaluation
	err := r.db.First(&evaluation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// GetByIDWithPeriod retrieves a team evaluation with its period
func (r *TeamEvaluationRepository) GetByIDWithPeriod(id uuid.UUID) (*models.TeamEvaluation, error) {
	var evaluation models.TeamEvaluation
	err := r.db.Preload("Period").First(&evaluation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// GetByPeriodID retrieves every team evaluation of a period
func (r *TeamEvaluationRepository) GetByPeriodID(periodID uuid.UUID) ([]models.TeamEvaluation, error) {
	var evaluations []models.TeamEvaluation
	err := r.db.Preload("Team").
		Where("period_id = ?", periodID).
		Order("created_at ASC, id ASC").
		Find(&evaluations).Error
	return evaluations, err
}

// UpdateWithVersion writes status and report payloads if the stored version still matches
func (r *TeamEvaluationRepository) UpdateWithVersion(evaluation *models.TeamEvaluation) error {
	now := time.Now()
	result := r.db.Model(&models.TeamEvaluation{}).
		Where("id = ? AND version = ?", evaluation.ID, evaluation.Version).
		Updates(map[string]interface{}{
			"status":        evaluation.Status,
			"report":        evaluation.Report,
			"middle_report": evaluation.MiddleReport,
			"version":       evaluation.Version + 1,
			"updated_at":    now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleObject
	}
	evaluation.Version++
	evaluation.UpdatedAt = now
	return nil
}
