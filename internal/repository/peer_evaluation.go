package repository

import (
	"time"

	"review-cycle-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PeerEvaluationRepository handles database operations for peer evaluation pairings
type PeerEvaluationRepository struct {
	db *gorm.DB
}

// NewPeerEvaluationRepository creates a new peer evaluation repository
func NewPeerEvaluationRepository(db *gorm.DB) *PeerEvaluationRepository {
	return &PeerEvaluationRepository{db: db}
}

// CreateBatch inserts pairings in batches
func (r *PeerEvaluationRepository) CreateBatch(evaluations []models.PeerEvaluation) error {
	if len(evaluations) == 0 {
		return nil
	}
	return r.db.CreateInBatches(&evaluations, 200).Error
}

// GetByID retrieves a pairing with both employees and its team evaluation period
func (r *PeerEvaluationRepository) GetByID(id uuid.UUID) (*models.PeerEvaluation, error) {
	var evaluation models.PeerEvaluation
	err := r.db.Preload("Evaluator").
		Preload("Target").
		Preload("TeamEvaluation.Period").
		First(&evaluation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// GetByTeamEvaluationID retrieves every pairing of a team evaluation
func (r *PeerEvaluationRepository) GetByTeamEvaluationID(teamEvaluationID uuid.UUID) ([]models.PeerEvaluation, error) {
	var evaluations []models.PeerEvaluation
	err := r.db.Where("team_evaluation_id = ?", teamEvaluationID).
		Order("created_at ASC, id ASC").
		Find(&evaluations).Error
	return evaluations, err
}

// GetByEvaluatorAndPeriod retrieves the pairings an employee owes within a period
func (r *PeerEvaluationRepository) GetByEvaluatorAndPeriod(evaluatorID, periodID uuid.UUID) ([]models.PeerEvaluation, error) {
	var evaluations []models.PeerEvaluation
	err := r.db.Preload("Target").
		Joins("JOIN team_evaluations ON team_evaluations.id = peer_evaluations.team_evaluation_id").
		Where("peer_evaluations.evaluator_id = ? AND team_evaluations.period_id = ?", evaluatorID, periodID).
		Order("peer_evaluations.created_at ASC").
		Find(&evaluations).Error
	return evaluations, err
}

// UpdateJointTasks stores the merged joint task list of a pairing
func (r *PeerEvaluationRepository) UpdateJointTasks(evaluation *models.PeerEvaluation) error {
	return r.db.Model(&models.PeerEvaluation{}).
		Where("id = ?", evaluation.ID).
		Updates(map[string]interface{}{
			"joint_tasks": evaluation.JointTasks,
			"updated_at":  time.Now(),
		}).Error
}

// ExistsIncompleteByPeriod reports whether any pairing of the period is not yet submitted
func (r *PeerEvaluationRepository) ExistsIncompleteByPeriod(periodID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.PeerEvaluation{}).
		Joins("JOIN team_evaluations ON team_evaluations.id = peer_evaluations.team_evaluation_id").
		Where("team_evaluations.period_id = ? AND peer_evaluations.is_completed = ?", periodID, false).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkCompleted sets the weight and completed flag once. A pairing that is
// already completed is left untouched and ErrStaleObject is returned.
func (r *PeerEvaluationRepository) MarkCompleted(id uuid.UUID, weight int) error {
	result := r.db.Model(&models.PeerEvaluation{}).
		Where("id = ? AND is_completed = ?", id, false).
		Updates(map[string]interface{}{
			"weight":       weight,
			"is_completed": true,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleObject
	}
	return nil
}
