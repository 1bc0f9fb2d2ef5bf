package repository

import (
	"review-cycle-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KeywordRepository handles database operations for keywords and keyword selections
type KeywordRepository struct {
	db *gorm.DB
}

// NewKeywordRepository creates a new keyword repository
func NewKeywordRepository(db *gorm.DB) *KeywordRepository {
	return &KeywordRepository{db: db}
}

// Create creates a new system keyword
func (r *KeywordRepository) Create(keyword *models.Keyword) error {
	return r.db.Create(keyword).Error
}

// GetAll retrieves every system keyword
func (r *KeywordRepository) GetAll() ([]models.Keyword, error) {
	var keywords []models.Keyword
	err := r.db.Order("sentiment ASC, name ASC").Find(&keywords).Error
	return keywords, err
}

// GetByIDs retrieves the system keywords with the given IDs
func (r *KeywordRepository) GetByIDs(ids []uuid.UUID) ([]models.Keyword, error) {
	var keywords []models.Keyword
	if len(ids) == 0 {
		return keywords, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&keywords).Error
	return keywords, err
}

// CreateSelections stores the keywords chosen for a peer evaluation
func (r *KeywordRepository) CreateSelections(selections []models.PeerEvaluationKeyword) error {
	if len(selections) == 0 {
		return nil
	}
	return r.db.Create(&selections).Error
}

// GetSelections retrieves the keywords chosen for a peer evaluation
func (r *KeywordRepository) GetSelections(peerEvaluationID uuid.UUID) ([]models.PeerEvaluationKeyword, error) {
	var selections []models.PeerEvaluationKeyword
	err := r.db.Preload("Keyword").
		Where("peer_evaluation_id = ?", peerEvaluationID).
		Order("created_at ASC").
		Find(&selections).Error
	return selections, err
}
