package models

import (
	"strings"

	"github.com/google/uuid"
)

// Employee is a person in the directory. Only MEMBER employees are paired for peer review.
type Employee struct {
	BaseModel
	EmpNo    string     `json:"emp_no" gorm:"size:20;not null;uniqueIndex" validate:"required,max=20"`
	Name     string     `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Email    string     `json:"email" gorm:"size:200" validate:"omitempty,email,max=200"`
	Position string     `json:"position" gorm:"size:100" validate:"max=100"`
	Role     Role       `json:"role" gorm:"size:20;not null;default:MEMBER;index"`
	TeamID   *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// HasEmail reports whether the employee can be notified
func (e *Employee) HasEmail() bool {
	return strings.TrimSpace(e.Email) != ""
}
