package handlers

import (
	"net/http"
	"strings"

	"review-cycle-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamEvaluationHandler handles the manager's team evaluation operations
type TeamEvaluationHandler struct {
	teamEvaluationService service.TeamEvaluationServiceInterface
	tempEvaluationService service.TempEvaluationServiceInterface
}

// NewTeamEvaluationHandler creates a new team evaluation handler
func NewTeamEvaluationHandler(teamEvaluationService service.TeamEvaluationServiceInterface, tempEvaluationService service.TempEvaluationServiceInterface) *TeamEvaluationHandler {
	return &TeamEvaluationHandler{
		teamEvaluationService: teamEvaluationService,
		tempEvaluationService: tempEvaluationService,
	}
}

// Submit handles POST /team-evaluations/:id/submit
// @Summary Submit a team evaluation
// @Description Submit the downward evaluation once every member's draft is completed
// @Tags team-evaluations
// @Produce json
// @Param id path string true "Team evaluation ID (UUID)"
// @Success 200 {object} service.TeamEvaluationResponse "Submitted"
// @Failure 400 {object} ErrorResponse "Downward evaluations incomplete"
// @Failure 404 {object} ErrorResponse "Team evaluation not found"
// @Failure 409 {object} ErrorResponse "Already submitted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team-evaluations/{id}/submit [post]
func (h *TeamEvaluationHandler) Submit(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team evaluation")
	if !ok {
		return
	}

	evaluation, err := h.teamEvaluationService.Submit(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluation)
}

// UpdateTempEvaluation handles PUT /team-evaluations/:id/temp-evaluations/:empNo
// @Summary Save a downward draft
// @Description Save the manager's draft evaluation of one member and mark it completed
// @Tags team-evaluations
// @Accept json
// @Produce json
// @Param id path string true "Team evaluation ID (UUID)"
// @Param empNo path string true "Employee number"
// @Param draft body service.UpdateTempEvaluationRequest true "Draft"
// @Success 200 {object} service.TempEvaluationResponse "Saved"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team evaluation, employee or draft not found"
// @Failure 409 {object} ErrorResponse "Team evaluation already submitted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team-evaluations/{id}/temp-evaluations/{empNo} [put]
func (h *TeamEvaluationHandler) UpdateTempEvaluation(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team evaluation")
	if !ok {
		return
	}
	empNo := strings.TrimSpace(c.Param("empNo"))
	if empNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee number is required"})
		return
	}

	var req service.UpdateTempEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.tempEvaluationService.Update(c, id, empNo, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}
