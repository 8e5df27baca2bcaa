package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/avis-project/avis_backend/internal/dto"
	"github.com/avis-project/avis_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// rollHandler handles HTTP requests related to the electoral roll.
type rollHandler struct {
	rollService portssvc.RollSvcFacade
}

// newRollHandler creates a new rollHandler.
func newRollHandler(rs portssvc.RollSvcFacade) *rollHandler {
	return &rollHandler{
		rollService: rs,
	}
}

// registerRollRoutes registers all roll-related routes.
func registerRollRoutes(rg *gin.RouterGroup, rollService portssvc.RollSvcFacade) {
	h := newRollHandler(rollService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers) // Officials only
		users.GET("/me", h.getCurrentUser)
		users.PATCH("/:id/status", h.updateUserStatus) // Officials only
	}
	rg.GET("/constituencies", h.listConstituencies)
}

// currentUser loads the authenticated user from the roll. It writes the
// error response itself and returns nil when the request cannot proceed.
func currentUser(c *gin.Context, rollService portssvc.RollSvcFacade) *domain.User {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil
	}

	user, err := rollService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Authenticated user no longer on roll", slog.String("user_id", userID))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		} else {
			logger.Error("Failed to load authenticated user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		}
		return nil
	}
	return user
}

// requireOfficial loads the authenticated user and rejects non-officials.
func requireOfficial(c *gin.Context, rollService portssvc.RollSvcFacade) *domain.User {
	user := currentUser(c, rollService)
	if user == nil {
		return nil
	}
	if !user.IsOfficial() {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Non-official attempted restricted action", slog.String("user_id", user.UserID))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return nil
	}
	return user
}

// getCurrentUser godoc
// @Summary Get the authenticated user
// @Description Retrieves the roll record of the logged-in user
// @Tags users
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve user"
// @Security BearerAuth
// @Router /users/me [get]
func (h *rollHandler) getCurrentUser(c *gin.Context) {
	user := currentUser(c, h.rollService)
	if user == nil {
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Description Retrieves the full electoral roll (officials only)
// @Tags users
// @Produce  json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list users"
// @Security BearerAuth
// @Router /users [get]
func (h *rollHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if requireOfficial(c, h.rollService) == nil {
		return
	}

	users, err := h.rollService.ListUsers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list users from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	logger.Info("Users listed successfully", slog.Int("count", len(users)))
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// updateUserStatus godoc
// @Summary Approve or reject a pending user
// @Description Moves a PENDING account to APPROVED or REJECTED (officials only)
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   status body dto.UpdateUserStatusRequest true "New status"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input or non-pending account"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Security BearerAuth
// @Router /users/{id}/status [patch]
func (h *rollHandler) updateUserStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetUserID := c.Param("id")

	var req dto.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for status update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := requireOfficial(c, h.rollService)
	if actor == nil {
		return
	}

	logger = logger.With(slog.String("target_user_id", targetUserID), slog.String("actor_user_id", actor.UserID))
	logger.Info("Received request to update user status", slog.String("status", req.Status))

	updatedUser, err := h.rollService.SetUserStatus(c.Request.Context(), targetUserID, domain.AccountStatus(req.Status), actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("User not found for status update")
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid status transition", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update user status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user status"})
		}
		return
	}

	logger.Info("User status updated successfully")
	c.JSON(http.StatusOK, dto.ToUserResponse(updatedUser))
}

// listConstituencies godoc
// @Summary List constituencies
// @Description Retrieves the constituency reference data
// @Tags users
// @Produce  json
// @Success 200 {array} dto.ConstituencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list constituencies"
// @Security BearerAuth
// @Router /constituencies [get]
func (h *rollHandler) listConstituencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	constituencies, err := h.rollService.ListConstituencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list constituencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list constituencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToConstituencyResponses(constituencies))
}
