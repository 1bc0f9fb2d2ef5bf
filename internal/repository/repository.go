package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrStaleObject is returned when a version-checked or conditional update matches no row
var ErrStaleObject = errors.New("stale object: row changed or missing")

// Repositories bundles every repository bound to the same *gorm.DB (or transaction)
type Repositories struct {
	Periods         PeriodRepositoryInterface
	Teams           TeamRepositoryInterface
	Employees       EmployeeRepositoryInterface
	TeamKPIs        TeamKPIRepositoryInterface
	TeamEvaluations TeamEvaluationRepositoryInterface
	PeerEvaluations PeerEvaluationRepositoryInterface
	Keywords        KeywordRepositoryInterface
	TempEvaluations TempEvaluationRepositoryInterface
	Reports         ReportRepositoryInterface
}

// NewRepositories creates all repositories on top of db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Periods:         NewPeriodRepository(db),
		Teams:           NewTeamRepository(db),
		Employees:       NewEmployeeRepository(db),
		TeamKPIs:        NewTeamKPIRepository(db),
		TeamEvaluations: NewTeamEvaluationRepository(db),
		PeerEvaluations: NewPeerEvaluationRepository(db),
		Keywords:        NewKeywordRepository(db),
		TempEvaluations: NewTempEvaluationRepository(db),
		Reports:         NewReportRepository(db),
	}
}

// TransactionManager opens database transactions for multi-repository units of work
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithinTransaction runs fn in a transaction. Returning an error from fn rolls everything back.
func (m *TransactionManager) WithinTransaction(fn func(repos *Repositories) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
