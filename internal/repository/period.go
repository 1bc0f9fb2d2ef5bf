package repository

import (
	"time"

	"review-cycle-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PeriodRepository handles database operations for periods
type PeriodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new period repository
func NewPeriodRepository(db *gorm.DB) *PeriodRepository {
	return &PeriodRepository{db: db}
}

// Create creates a new period
func (r *PeriodRepository) Create(period *models.Period) error {
	if period.Version == 0 {
		period.Version = 1
	}
	if period.Phase == "" {
		period.Phase = models.PeriodPhaseNotStarted
	}
	return r.db.Create(period).Error
}

// GetByID retrieves a period by ID
func (r *PeriodRepository) GetByID(id uuid.UUID) (*models.Period, error) {
	var period models.Period
	err := r.db.First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetByIDForUpdate retrieves a period by ID and locks the row until the transaction ends
func (r *PeriodRepository) GetByIDForUpdate(id uuid.UUID) (*models.Period, error) {
	var period models.Period
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetLatestByYearAndUnit retrieves the period with the highest order for a year and unit
func (r *PeriodRepository) GetLatestByYearAndUnit(year int, unit models.PeriodUnit) (*models.Period, error) {
	var period models.Period
	err := r.db.Where("year = ? AND unit = ?", year, unit).
		Order("order_in_year DESC").
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetAllNotCompleted retrieves every period that has not reached the terminal phase
func (r *PeriodRepository) GetAllNotCompleted() ([]models.Period, error) {
	var periods []models.Period
	err := r.db.Where("phase <> ?", models.PeriodPhaseCompleted).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

// UpdateWithVersion writes the mutable fields if the stored version still matches.
// On success period.Version is incremented; otherwise ErrStaleObject is returned.
func (r *PeriodRepository) UpdateWithVersion(period *models.Period) error {
	now := time.Now()
	result := r.db.Model(&models.Period{}).
		Where("id = ? AND version = ?", period.ID, period.Version).
		Updates(map[string]interface{}{
			"name":       period.Name,
			"is_final":   period.IsFinal,
			"start_date": period.StartDate,
			"end_date":   period.EndDate,
			"phase":      period.Phase,
			"version":    period.Version + 1,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleObject
	}
	period.Version++
	period.UpdatedAt = now
	return nil
}
