package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"review-cycle-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var sequence atomic.Int64

func next() int64 { return sequence.Add(1) }

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{Name: fmt.Sprintf("team-%d", next())}
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Member creates a MEMBER of the team with a unique employee number
func (f *EmployeeFactory) Member(teamID uuid.UUID) *models.Employee {
	n := next()
	return &models.Employee{
		EmpNo:    fmt.Sprintf("E%05d", n),
		Name:     fmt.Sprintf("Employee %d", n),
		Email:    fmt.Sprintf("employee%d@example.com", n),
		Position: "Engineer",
		Role:     models.RoleMember,
		TeamID:   &teamID,
	}
}

// Manager creates a MANAGER of the team
func (f *EmployeeFactory) Manager(teamID uuid.UUID) *models.Employee {
	employee := f.Member(teamID)
	employee.Role = models.RoleManager
	employee.Position = "Manager"
	return employee
}

// PeriodFactory provides methods to create test Period data
type PeriodFactory struct{}

// NewPeriodFactory creates a new PeriodFactory
func NewPeriodFactory() *PeriodFactory {
	return &PeriodFactory{}
}

// Quarter creates a NOT_STARTED quarterly period for year and order
func (f *PeriodFactory) Quarter(year, order int, isFinal bool) *models.Period {
	start := time.Date(year, time.Month(3*(order-1)+1), 1, 0, 0, 0, 0, time.UTC)
	return &models.Period{
		Year:        year,
		Name:        fmt.Sprintf("%d Q%d Evaluation", year, order),
		Unit:        models.PeriodUnitQuarter,
		IsFinal:     &isFinal,
		OrderInYear: order,
		StartDate:   start,
		EndDate:     start.AddDate(0, 3, -1),
		Phase:       models.PeriodPhaseNotStarted,
		Version:     1,
	}
}

// Seed is the data inserted by SeedTeam
type Seed struct {
	Team    *models.Team
	Members []*models.Employee
	KPIs    []*models.TeamKPI
}

// SeedTeam inserts a team with members MEMBER employees and one KPI per entry
// of kpis. Each entry lists the indexes of the members holding a task on it.
func SeedTeam(db *gorm.DB, year, members int, kpis map[string][]int) (*Seed, error) {
	seed := &Seed{Team: NewTeamFactory().Create()}
	if err := db.Create(seed.Team).Error; err != nil {
		return nil, err
	}

	employees := NewEmployeeFactory()
	for i := 0; i < members; i++ {
		member := employees.Member(seed.Team.ID)
		if err := db.Create(member).Error; err != nil {
			return nil, err
		}
		seed.Members = append(seed.Members, member)
	}

	for name, holders := range kpis {
		kpi := &models.TeamKPI{TeamID: seed.Team.ID, Year: year, Name: name, Weight: 10}
		if err := db.Create(kpi).Error; err != nil {
			return nil, err
		}
		for _, index := range holders {
			task := &models.Task{TeamKPIID: kpi.ID, EmployeeID: seed.Members[index].ID, Name: name + " task"}
			if err := db.Create(task).Error; err != nil {
				return nil, err
			}
		}
		seed.KPIs = append(seed.KPIs, kpi)
	}
	return seed, nil
}
