package repository

import (
	"review-cycle-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByIDs retrieves the employees with the given IDs ordered by employee number
func (r *EmployeeRepository) GetByIDs(ids []uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	if len(ids) == 0 {
		return employees, nil
	}
	err := r.db.Where("id IN ?", ids).Order("emp_no ASC").Find(&employees).Error
	return employees, err
}

// GetByEmpNo retrieves an employee by employee number
func (r *EmployeeRepository) GetByEmpNo(empNo string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "emp_no = ?", empNo).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves all employees
func (r *EmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Order("emp_no ASC").Find(&employees).Error
	return employees, err
}

// GetByTeamIDAndRole retrieves the employees of a team holding a role
func (r *EmployeeRepository) GetByTeamIDAndRole(teamID uuid.UUID, role models.Role) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("team_id = ? AND role = ?", teamID, role).
		Order("emp_no ASC").
		Find(&employees).Error
	return employees, err
}
