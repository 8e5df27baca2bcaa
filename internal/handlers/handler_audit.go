package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/avis-project/avis_backend/internal/dto"
	"github.com/avis-project/avis_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// auditHandler handles HTTP requests for the audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
	rollService  portssvc.RollSvcFacade
}

// newAuditHandler creates a new auditHandler.
func newAuditHandler(as portssvc.AuditSvcFacade, rs portssvc.RollSvcFacade) *auditHandler {
	return &auditHandler{
		auditService: as,
		rollService:  rs,
	}
}

// registerAuditRoutes registers the audit trail routes.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade, rollService portssvc.RollSvcFacade) {
	h := newAuditHandler(auditService, rollService)

	rg.GET("/audit", h.listAuditEntries) // Officials only
}

// listAuditEntries godoc
// @Summary List audit entries
// @Description Retrieves the full audit trail, newest first (officials only)
// @Tags audit
// @Produce  json
// @Success 200 {object} dto.ListAuditEntriesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list audit entries"
// @Security BearerAuth
// @Router /audit [get]
func (h *auditHandler) listAuditEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if requireOfficial(c, h.rollService) == nil {
		return
	}

	entries, err := h.auditService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list audit entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAuditEntriesResponse(entries))
}
