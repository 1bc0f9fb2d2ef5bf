package repository

import (
	"review-cycle-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamKPIRepository handles database operations for team KPIs and their tasks
type TeamKPIRepository struct {
	db *gorm.DB
}

// NewTeamKPIRepository creates a new team KPI repository
func NewTeamKPIRepository(db *gorm.DB) *TeamKPIRepository {
	return &TeamKPIRepository{db: db}
}

// Create creates a new KPI
func (r *TeamKPIRepository) Create(kpi *models.TeamKPI) error {
	return r.db.Create(kpi).Error
}

// CreateTask records an employee's contribution to a KPI
func (r *TeamKPIRepository) CreateTask(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByTeamIDAndYear retrieves the KPIs a team owns for a year in creation order
func (r *TeamKPIRepository) GetByTeamIDAndYear(teamID uuid.UUID, year int) ([]models.TeamKPI, error) {
	var kpis []models.TeamKPI
	err := r.db.Where("team_id = ? AND year = ?", teamID, year).
		Order("created_at ASC, id ASC").
		Find(&kpis).Error
	return kpis, err
}

// GetContributorIDs returns the distinct employees with at least one task under the KPI
// holding the given role, ordered by employee number.
func (r *TeamKPIRepository) GetContributorIDs(kpiID uuid.UUID, role models.Role) ([]uuid.UUID, error) {
	var rows []struct {
		ID    uuid.UUID
		EmpNo string
	}
	err := r.db.Model(&models.Task{}).
		Select("DISTINCT employees.id, employees.emp_no").
		Joins("JOIN employees ON employees.id = tasks.employee_id").
		Where("tasks.team_kpi_id = ? AND employees.role = ?", kpiID, role).
		Order("employees.emp_no ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}
