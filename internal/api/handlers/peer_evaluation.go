package handlers

import (
	"net/http"

	"review-cycle-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PeerEvaluationHandler handles the evaluator's peer evaluation operations
type PeerEvaluationHandler struct {
	peerEvaluationService service.PeerEvaluationServiceInterface
}

// NewPeerEvaluationHandler creates a new peer evaluation handler
func NewPeerEvaluationHandler(peerEvaluationService service.PeerEvaluationServiceInterface) *PeerEvaluationHandler {
	return &PeerEvaluationHandler{
		peerEvaluationService: peerEvaluationService,
	}
}

// GetStatusList handles GET /peer-evaluations?emp_no=&period_id=
// @Summary List my peer evaluations
// @Description List the pairings an employee owes in a period
// @Tags peer-evaluations
// @Produce json
// @Param emp_no query string true "Evaluator employee number"
// @Param period_id query string true "Period ID (UUID)"
// @Success 200 {array} service.PeerEvaluationStatusResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid parameters"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /peer-evaluations [get]
func (h *PeerEvaluationHandler) GetStatusList(c *gin.Context) {
	empNo := c.Query("emp_no")
	if empNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "emp_no is required"})
		return
	}
	periodID, err := uuid.Parse(c.Query("period_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period ID"})
		return
	}

	list, err := h.peerEvaluationService.GetStatusList(empNo, periodID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetDetail handles GET /peer-evaluations/:id
// @Summary Get a peer evaluation
// @Description Get one pairing with the keywords chosen on submission
// @Tags peer-evaluations
// @Produce json
// @Param id path string true "Peer evaluation ID (UUID)"
// @Success 200 {object} service.PeerEvaluationDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Peer evaluation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /peer-evaluations/{id} [get]
func (h *PeerEvaluationHandler) GetDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "peer evaluation")
	if !ok {
		return
	}

	detail, err := h.peerEvaluationService.GetDetail(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Submit handles POST /peer-evaluations/:id/submit
// @Summary Submit a peer evaluation
// @Description Record weight and keywords for a pairing. A pairing can be submitted once.
// @Tags peer-evaluations
// @Accept json
// @Produce json
// @Param id path string true "Peer evaluation ID (UUID)"
// @Param submission body service.SubmitPeerEvaluationRequest true "Submission"
// @Success 204 "Submitted"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Peer evaluation or keyword not found"
// @Failure 409 {object} ErrorResponse "Already submitted or phase closed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /peer-evaluations/{id}/submit [post]
func (h *PeerEvaluationHandler) Submit(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "peer evaluation")
	if !ok {
		return
	}

	var req service.SubmitPeerEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.peerEvaluationService.Submit(c, id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSystemKeywords handles GET /peer-evaluations/keywords
// @Summary List system keywords
// @Tags peer-evaluations
// @Produce json
// @Success 200 {array} service.KeywordResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /peer-evaluations/keywords [get]
func (h *PeerEvaluationHandler) GetSystemKeywords(c *gin.Context) {
	keywords, err := h.peerEvaluationService.GetSystemKeywords()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, keywords)
}
