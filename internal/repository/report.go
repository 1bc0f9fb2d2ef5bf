package repository

import (
	"review-cycle-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReportRepository creates the per-member report shells of a team evaluation
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// CreateFeedbackReports inserts feedback report shells, skipping existing ones
func (r *ReportRepository) CreateFeedbackReports(reports []models.FeedbackReport) error {
	if len(reports) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&reports).Error
}

// CreateFinalReports inserts final evaluation report shells, skipping existing ones
func (r *ReportRepository) CreateFinalReports(reports []models.FinalEvaluationReport) error {
	if len(reports) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&reports).Error
}
