package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avis-project/avis_backend/internal/apperrors"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/avis-project/avis_backend/internal/dto"
	"github.com/avis-project/avis_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// resultsHandler handles HTTP requests for tallies and turnout reports.
type resultsHandler struct {
	tallyService portssvc.TallySvcFacade
}

// newResultsHandler creates a new resultsHandler.
func newResultsHandler(ts portssvc.TallySvcFacade) *resultsHandler {
	return &resultsHandler{
		tallyService: ts,
	}
}

// registerResultsRoutes registers all tally-related routes.
func registerResultsRoutes(rg *gin.RouterGroup, tallyService portssvc.TallySvcFacade) {
	h := newResultsHandler(tallyService)

	results := rg.Group("/results/:electionID")
	{
		results.GET("/candidates", h.getCandidateTally)
		results.GET("/parties", h.getPartyTally)
		results.GET("/turnout", h.getTurnout)
	}
}

// getCandidateTally godoc
// @Summary Per-candidate tally
// @Description Counts ballots per candidate for an election; recomputed on every call
// @Tags results
// @Produce  json
// @Param   electionID path string true "Election ID"
// @Success 200 {object} dto.CandidateTallyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Election not found"
// @Failure 500 {object} map[string]string "Failed to compute tally"
// @Security BearerAuth
// @Router /results/{electionID}/candidates [get]
func (h *resultsHandler) getCandidateTally(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	electionID := c.Param("electionID")

	counts, err := h.tallyService.CandidateTally(c.Request.Context(), electionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Election not found"})
			return
		}
		logger.Error("Failed to compute candidate tally", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute tally"})
		return
	}

	total := 0
	for _, count := range counts {
		total += count.Count
	}

	c.JSON(http.StatusOK, dto.CandidateTallyResponse{
		ElectionID: electionID,
		TotalVotes: total,
		Results:    counts,
	})
}

// getPartyTally godoc
// @Summary Per-party tally
// @Description Joins each ballot's candidate to its party and sums per party
// @Tags results
// @Produce  json
// @Param   electionID path string true "Election ID"
// @Success 200 {object} dto.PartyTallyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Election not found"
// @Failure 500 {object} map[string]string "Failed to compute tally"
// @Security BearerAuth
// @Router /results/{electionID}/parties [get]
func (h *resultsHandler) getPartyTally(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	electionID := c.Param("electionID")

	counts, err := h.tallyService.PartyTally(c.Request.Context(), electionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Election not found"})
			return
		}
		logger.Error("Failed to compute party tally", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute tally"})
		return
	}

	c.JSON(http.StatusOK, dto.PartyTallyResponse{
		ElectionID: electionID,
		Results:    counts,
	})
}

// getTurnout godoc
// @Summary Per-constituency turnout
// @Description Counts ballots per constituency and derives the turnout percentage
// @Tags results
// @Produce  json
// @Param   electionID path string true "Election ID"
// @Success 200 {object} dto.TurnoutResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Election not found"
// @Failure 500 {object} map[string]string "Failed to compute turnout"
// @Security BearerAuth
// @Router /results/{electionID}/turnout [get]
func (h *resultsHandler) getTurnout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	electionID := c.Param("electionID")

	rows, err := h.tallyService.ConstituencyTurnout(c.Request.Context(), electionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Election not found"})
			return
		}
		logger.Error("Failed to compute turnout", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute turnout"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTurnoutResponse(electionID, rows))
}
