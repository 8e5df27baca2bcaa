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

// voteHandler handles HTTP requests related to the ballot ledger.
type voteHandler struct {
	ballotService portssvc.BallotSvcFacade
}

// newVoteHandler creates a new voteHandler.
func newVoteHandler(bs portssvc.BallotSvcFacade) *voteHandler {
	return &voteHandler{
		ballotService: bs,
	}
}

// RegisterVoteRoutes registers all ballot-related routes.
func RegisterVoteRoutes(rg *gin.RouterGroup, ballotService portssvc.BallotSvcFacade) {
	h := newVoteHandler(ballotService)

	votes := rg.Group("/votes")
	{
		votes.POST("", h.castVote)
		votes.GET("/:electionID", h.getVoteStatus)
	}
}

// castVote godoc
// @Summary Cast a ballot
// @Description Records exactly one vote for the authenticated voter in the given election
// @Tags votes
// @Accept  json
// @Produce  json
// @Param   vote body dto.CastVoteRequest true "Ballot"
// @Success 201 {object} dto.VoteReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown candidate"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Account not approved for voting"
// @Failure 404 {object} map[string]string "Election not found"
// @Failure 409 {object} map[string]string "Ballot already cast in this election"
// @Failure 500 {object} map[string]string "Failed to cast vote"
// @Security BearerAuth
// @Router /votes [post]
func (h *voteHandler) castVote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for cast vote request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	voterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Voter user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// Log the election only. The candidate choice stays between the
	// request body and the ledger row.
	logger = logger.With(slog.String("election_id", req.ElectionID))
	logger.Info("Received request to cast vote")

	vote, err := h.ballotService.CastVote(c.Request.Context(), req.ElectionID, voterUserID, req.CandidateID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyVoted):
			logger.Warn("Duplicate ballot rejected")
			c.JSON(http.StatusConflict, gin.H{"error": "You have already voted in this election"})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Unapproved account attempted to vote")
			c.JSON(http.StatusForbidden, gin.H{"error": "Your account is not approved for voting"})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Vote referenced unknown election or voter")
			c.JSON(http.StatusNotFound, gin.H{"error": "Election not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Vote referenced invalid candidate")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Candidate does not belong to this election"})
		default:
			logger.Error("Failed to cast vote in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cast vote"})
		}
		return
	}

	logger.Info("Vote recorded successfully", slog.String("vote_id", vote.VoteID))
	c.JSON(http.StatusCreated, dto.ToVoteReceiptResponse(vote))
}

// getVoteStatus godoc
// @Summary Check vote status
// @Description Reports whether the authenticated voter has already voted in an election
// @Tags votes
// @Produce  json
// @Param   electionID path string true "Election ID"
// @Success 200 {object} dto.VoteStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to check vote status"
// @Security BearerAuth
// @Router /votes/{electionID} [get]
func (h *voteHandler) getVoteStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	electionID := c.Param("electionID")

	voterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Voter user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voted, err := h.ballotService.HasVoted(c.Request.Context(), electionID, voterUserID)
	if err != nil {
		logger.Error("Failed to check vote status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check vote status"})
		return
	}

	c.JSON(http.StatusOK, dto.VoteStatusResponse{ElectionID: electionID, HasVoted: voted})
}
