package handlers

import (
	"net/http"

	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/avis-project/avis_backend/internal/dto"

	"github.com/gin-gonic/gin"
)

// advisoryHandler handles HTTP requests for advisory text generation.
// Responses always succeed: the service substitutes fallback text when
// the external collaborator is unreachable.
type advisoryHandler struct {
	advisoryService portssvc.AdvisorySvcFacade
}

// newAdvisoryHandler creates a new advisoryHandler.
func newAdvisoryHandler(as portssvc.AdvisorySvcFacade) *advisoryHandler {
	return &advisoryHandler{
		advisoryService: as,
	}
}

// registerAdvisoryRoutes registers the advisory text routes.
func registerAdvisoryRoutes(rg *gin.RouterGroup, advisoryService portssvc.AdvisorySvcFacade) {
	h := newAdvisoryHandler(advisoryService)

	advisory := rg.Group("/advisory")
	{
		advisory.POST("/summary", h.simpleSummary)
		advisory.POST("/manifesto", h.manifestoAnalysis)
	}
}

// simpleSummary godoc
// @Summary Summarize text
// @Description Produces a simplified summary of the given text
// @Tags advisory
// @Accept  json
// @Produce  json
// @Param   request body dto.SummaryRequest true "Text to summarize"
// @Success 200 {object} dto.AdvisoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /advisory/summary [post]
func (h *advisoryHandler) simpleSummary(c *gin.Context) {
	var req dto.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	text := h.advisoryService.SimpleSummary(c.Request.Context(), req.Text)
	c.JSON(http.StatusOK, dto.AdvisoryResponse{Text: text})
}

// manifestoAnalysis godoc
// @Summary Analyze a manifesto
// @Description Produces a short analysis of a candidate manifesto
// @Tags advisory
// @Accept  json
// @Produce  json
// @Param   request body dto.ManifestoAnalysisRequest true "Candidate manifesto"
// @Success 200 {object} dto.AdvisoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /advisory/manifesto [post]
func (h *advisoryHandler) manifestoAnalysis(c *gin.Context) {
	var req dto.ManifestoAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	text := h.advisoryService.ManifestoAnalysis(c.Request.Context(), req.CandidateName, req.Party, req.Manifesto)
	c.JSON(http.StatusOK, dto.AdvisoryResponse{Text: text})
}
