package models

import (
	"github.com/google/uuid"
)

// TeamKPI is a key performance indicator owned by a team for one year
type TeamKPI struct {
	BaseModel
	TeamID      uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index:idx_team_kpi_team_year"`
	Year        int       `json:"year" gorm:"not null;index:idx_team_kpi_team_year"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"size:1000"`
	Weight      int       `json:"weight" gorm:"not null;default:0"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:TeamKPIID"`
}

// TableName returns the table name for TeamKPI
func (TeamKPI) TableName() string {
	return "team_kpis"
}

// Task is one employee's contribution to a TeamKPI
type Task struct {
	BaseModel
	TeamKPIID  uuid.UUID `json:"team_kpi_id" gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index"`
	Name       string    `json:"name" gorm:"size:200;not null"`
	Summary    string    `json:"summary" gorm:"type:text"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
