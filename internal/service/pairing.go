package service

import (
	"fmt"
	"slices"

	"review-cycle-backend/internal/database/models"
	apperrors "review-cycle-backend/internal/errors"
	"review-cycle-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PairKey identifies one directed evaluator -> target pairing within a team evaluation
type PairKey struct {
	EvaluatorID uuid.UUID
	TargetID    uuid.UUID
}

// PairingResult counts what one generation pass did to the stored pairings
type PairingResult struct {
	TeamEvaluationID uuid.UUID `json:"team_evaluation_id"`
	Created          int       `json:"created"`
	Updated          int       `json:"updated"`
	Unchanged        int       `json:"unchanged"`
}

// Total is the number of pairings the pass accounted for
func (r PairingResult) Total() int {
	return r.Created + r.Updated + r.Unchanged
}

// PeerPairingGenerator derives the all-pairs peer review matrix of a team from KPI co-membership
type PeerPairingGenerator struct{}

// NewPeerPairingGenerator creates a new pairing generator
func NewPeerPairingGenerator() *PeerPairingGenerator {
	return &PeerPairingGenerator{}
}

// Generate makes sure every ordered pair of MEMBER co-contributors of a KPI has
// exactly one pairing whose joint tasks name every shared KPI. Pairings already
// stored are merged into rather than duplicated, so running it again is a no-op.
// repos must be bound to the caller's transaction.
func (g *PeerPairingGenerator) Generate(repos *repository.Repositories, teamEvaluationID uuid.UUID) (*PairingResult, error) {
	teamEvaluation, err := repos.TeamEvaluations.GetByIDWithPeriod(teamEvaluationID)
	if err != nil {
		return nil, repoError(err, apperrors.ErrTeamEvaluationNotFound, "get team evaluation")
	}
	if teamEvaluation.Period == nil {
		return nil, apperrors.ErrPeriodNotFound
	}

	kpis, err := repos.TeamKPIs.GetByTeamIDAndYear(teamEvaluation.TeamID, teamEvaluation.Period.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list team KPIs: %w", err)
	}

	wanted := make(map[PairKey][]string)
	var order []PairKey
	resolved := make(map[uuid.UUID]struct{})

	for _, kpi := range kpis {
		contributors, err := repos.TeamKPIs.GetContributorIDs(kpi.ID, models.RoleMember)
		if err != nil {
			return nil, fmt.Errorf("failed to list contributors of KPI %s: %w", kpi.ID, err)
		}
		if err := resolveEmployees(repos.Employees, contributors, resolved); err != nil {
			return nil, err
		}

		for _, evaluator := range contributors {
			for _, target := range contributors {
				if evaluator == target {
					continue
				}
				key := PairKey{EvaluatorID: evaluator, TargetID: target}
				tasks, seen := wanted[key]
				if !seen {
					order = append(order, key)
				}
				// labels are KPI names, so same-named KPIs share one entry
				if !slices.Contains(tasks, kpi.Name) {
					wanted[key] = append(tasks, kpi.Name)
				}
			}
		}
	}

	existing, err := repos.PeerEvaluations.GetByTeamEvaluationID(teamEvaluationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing pairings: %w", err)
	}
	stored := make(map[PairKey]*models.PeerEvaluation, len(existing))
	for i := range existing {
		stored[PairKey{EvaluatorID: existing[i].EvaluatorID, TargetID: existing[i].TargetID}] = &existing[i]
	}

	result := &PairingResult{TeamEvaluationID: teamEvaluationID}
	var toCreate []models.PeerEvaluation

	for _, key := range order {
		tasks := wanted[key]

		if current, ok := stored[key]; ok {
			changed := false
			for _, task := range tasks {
				if current.AddJointTask(task) {
					changed = true
				}
			}
			if !changed {
				result.Unchanged++
				continue
			}
			if err := repos.PeerEvaluations.UpdateJointTasks(current); err != nil {
				return nil, fmt.Errorf("failed to update pairing joint tasks: %w", err)
			}
			result.Updated++
			continue
		}

		toCreate = append(toCreate, models.PeerEvaluation{
			EvaluatorID:      key.EvaluatorID,
			TargetID:         key.TargetID,
			TeamEvaluationID: teamEvaluationID,
			JointTasks:       datatypes.JSONSlice[string](tasks),
		})
	}

	if err := repos.PeerEvaluations.CreateBatch(toCreate); err != nil {
		return nil, fmt.Errorf("failed to create pairings: %w", err)
	}
	result.Created = len(toCreate)

	return result, nil
}

// resolveEmployees checks that every id not yet seen still resolves to an employee
func resolveEmployees(employeeRepo repository.EmployeeRepositoryInterface, ids []uuid.UUID, resolved map[uuid.UUID]struct{}) error {
	var pending []uuid.UUID
	for _, id := range ids {
		if _, ok := resolved[id]; !ok {
			pending = append(pending, id)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	employees, err := employeeRepo.GetByIDs(pending)
	if err != nil {
		return fmt.Errorf("failed to resolve contributors: %w", err)
	}
	for _, employee := range employees {
		resolved[employee.ID] = struct{}{}
	}
	for _, id := range pending {
		if _, ok := resolved[id]; !ok {
			return apperrors.ErrEmployeeNotFound
		}
	}
	return nil
}
