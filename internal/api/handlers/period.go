package handlers

import (
	"net/http"

	"review-cycle-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PeriodHandler handles the administrator's period operations
type PeriodHandler struct {
	periodService         service.PeriodServiceInterface
	cycleService          service.EvaluationCycleServiceInterface
	peerEvaluationService service.PeerEvaluationServiceInterface
	teamEvaluationService service.TeamEvaluationServiceInterface
}

// NewPeriodHandler creates a new period handler
func NewPeriodHandler(periodService service.PeriodServiceInterface, cycleService service.EvaluationCycleServiceInterface, peerEvaluationService service.PeerEvaluationServiceInterface, teamEvaluationService service.TeamEvaluationServiceInterface) *PeriodHandler {
	return &PeriodHandler{
		periodService:         periodService,
		cycleService:          cycleService,
		peerEvaluationService: peerEvaluationService,
		teamEvaluationService: teamEvaluationService,
	}
}

// CompletionResponse reports whether every evaluation of a kind is done
type CompletionResponse struct {
	PeriodID  uuid.UUID `json:"period_id"`
	Completed bool      `json:"completed"`
}

// CreatePeriod handles POST /admin/periods
// @Summary Create a period
// @Description Create the next period of a year and unit, together with one team evaluation per team
// @Tags periods
// @Accept json
// @Produce json
// @Param period body service.CreatePeriodRequest true "Period data"
// @Success 201 {object} service.PeriodResponse "Successfully created period"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Period already exists or is locked"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/periods [post]
func (h *PeriodHandler) CreatePeriod(c *gin.Context) {
	var req service.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := h.periodService.CreatePeriod(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, period)
}

// GetAvailablePeriods handles GET /admin/periods/available
// @Summary List available periods
// @Description List every period that has not completed, ordered by start date
// @Tags periods
// @Produce json
// @Success 200 {array} service.PeriodResponse "Successfully retrieved periods"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/periods/available [get]
func (h *PeriodHandler) GetAvailablePeriods(c *gin.Context) {
	periods, err := h.periodService.GetAvailablePeriods()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, periods)
}

// UpdatePeriod handles PUT /admin/periods/:id
// @Summary Update a period
// @Description Update name, finality and dates of a period that has not started
// @Tags periods
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Param period body service.UpdatePeriodRequest true "Period changes"
// @Success 200 {object} service.PeriodResponse "Successfully updated period"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 409 {object} ErrorResponse "Period already started"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/periods/{id} [put]
func (h *PeriodHandler) UpdatePeriod(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "period")
	if !ok {
		return
	}

	var req service.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := h.periodService.UpdatePeriod(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, period)
}

// AdvancePhase handles PUT /admin/periods/:id/next-phase
// @Summary Advance a period
// @Description Move the period to its next phase. Leaving NOT_STARTED opens peer evaluation.
// @Tags periods
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Success 200 {object} service.PeriodResponse "Period advanced"
// @Failure 400 {object} ErrorResponse "Invalid transition"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 409 {object} ErrorResponse "Concurrent modification"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/periods/{id}/next-phase [put]
func (h *PeriodHandler) AdvancePhase(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "period")
	if !ok {
		return
	}

	period, err := h.periodService.AdvancePhase(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, period)
}

// OpenPeerEvaluation handles POST /admin/periods/:id/peer-evaluation
// @Summary Open peer evaluation
// @Description Generate peer pairings for every team, move the period to PEER_EVALUATION and notify employees
// @Tags periods
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Success 200 {object} service.OpenPeerEvaluationResult "Peer evaluation opened"
// @Failure 400 {object} ErrorResponse "Finality flag missing"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 409 {object} ErrorResponse "Peer evaluation already opened"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/periods/{id}/peer-evaluation [post]
func (h *PeriodHandler) OpenPeerEvaluation(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "period")
	if !ok {
		return
	}

	result, err := h.cycleService.OpenPeerEvaluation(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// IsPeerEvaluationCompleted handles GET /admin/periods/:id/peer-evaluation/completed
// @Summary Peer evaluation completion
// @Description Report whether every peer pairing of the period is submitted
// @Tags periods
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Success 200 {object} CompletionResponse
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/periods/{id}/peer-evaluation/completed [get]
func (h *PeriodHandler) IsPeerEvaluationCompleted(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "period")
	if !ok {
		return
	}

	completed, err := h.peerEvaluationService.IsAllCompleted(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CompletionResponse{PeriodID: id, Completed: completed})
}

// IsManagerEvaluationSubmitted handles GET /admin/periods/:id/team-evaluation/submitted
// @Summary Manager evaluation submission
// @Description Report whether every team evaluation of the period is submitted
// @Tags periods
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Success 200 {object} CompletionResponse
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/periods/{id}/team-evaluation/submitted [get]
func (h *PeriodHandler) IsManagerEvaluationSubmitted(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "period")
	if !ok {
		return
	}

	submitted, err := h.teamEvaluationService.IsAllManagerEvaluationSubmitted(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CompletionResponse{PeriodID: id, Completed: submitted})
}
