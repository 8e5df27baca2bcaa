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

// electionHandler handles HTTP requests related to the election catalog.
type electionHandler struct {
	electionService portssvc.ElectionSvcFacade
	rollService     portssvc.RollSvcFacade
}

// newElectionHandler creates a new electionHandler.
func newElectionHandler(es portssvc.ElectionSvcFacade, rs portssvc.RollSvcFacade) *electionHandler {
	return &electionHandler{
		electionService: es,
		rollService:     rs,
	}
}

// registerElectionRoutes registers all election-related routes.
func registerElectionRoutes(rg *gin.RouterGroup, electionService portssvc.ElectionSvcFacade, rollService portssvc.RollSvcFacade) {
	h := newElectionHandler(electionService, rollService)

	elections := rg.Group("/elections")
	{
		elections.GET("", h.listActiveElections)
		elections.GET("/:id", h.getElection)
		elections.POST("", h.createElection) // Officials only
	}
}

// listActiveElections godoc
// @Summary List active elections
// @Description Retrieves all elections currently open for voting
// @Tags elections
// @Produce  json
// @Success 200 {array} dto.ElectionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list elections"
// @Security BearerAuth
// @Router /elections [get]
func (h *electionHandler) listActiveElections(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	elections, err := h.electionService.ListActiveElections(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list active elections", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list elections"})
		return
	}

	c.JSON(http.StatusOK, dto.ToElectionResponses(elections))
}

// getElection godoc
// @Summary Get an election by ID
// @Description Retrieves one election with its candidate list
// @Tags elections
// @Produce  json
// @Param   id path string true "Election ID"
// @Success 200 {object} dto.ElectionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Election not found"
// @Failure 500 {object} map[string]string "Failed to retrieve election"
// @Security BearerAuth
// @Router /elections/{id} [get]
func (h *electionHandler) getElection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	electionID := c.Param("id")

	election, err := h.electionService.GetElectionByID(c.Request.Context(), electionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Election not found"})
		} else {
			logger.Error("Failed to get election from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve election"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToElectionResponse(election))
}

// createElection godoc
// @Summary Create a new election
// @Description Publishes an election with at least two candidates (officials only)
// @Tags elections
// @Accept  json
// @Produce  json
// @Param   election body dto.CreateElectionRequest true "Election definition"
// @Success 201 {object} dto.ElectionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to create election"
// @Security BearerAuth
// @Router /elections [post]
func (h *electionHandler) createElection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateElectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create election request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := requireOfficial(c, h.rollService)
	if actor == nil {
		return
	}

	logger = logger.With(slog.String("actor_user_id", actor.UserID))
	logger.Info("Received request to create election", slog.String("title", req.Title))

	election, err := h.electionService.CreateElection(c.Request.Context(), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create election in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create election"})
		return
	}

	logger.Info("Election created successfully", slog.String("election_id", election.ElectionID))
	c.JSON(http.StatusCreated, dto.ToElectionResponse(election))
}
