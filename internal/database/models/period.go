package models

import (
	"time"
)

// Period is one scheduled evaluation cycle. Phase only moves forward and
// every update is checked against Version.
type Period struct {
	BaseModel
	Year        int         `json:"year" gorm:"not null;uniqueIndex:idx_period_year_unit_order"`
	Name        string      `json:"name" gorm:"size:100;not null"`
	Unit        PeriodUnit  `json:"unit" gorm:"size:20;not null;uniqueIndex:idx_period_year_unit_order"`
	IsFinal     *bool       `json:"is_final"`
	OrderInYear int         `json:"order_in_year" gorm:"not null;uniqueIndex:idx_period_year_unit_order"`
	StartDate   time.Time   `json:"start_date" gorm:"type:date;not null"`
	EndDate     time.Time   `json:"end_date" gorm:"type:date;not null"`
	Phase       PeriodPhase `json:"phase" gorm:"size:30;not null;default:NOT_STARTED;index"`
	Version     int64       `json:"version" gorm:"not null;default:1"`
}

// TableName returns the table name for Period
func (Period) TableName() string {
	return "periods"
}

// Final returns the resolved finality flag, treating an unset flag as not final
func (p *Period) Final() bool {
	return p.IsFinal != nil && *p.IsFinal
}
