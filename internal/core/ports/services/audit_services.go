package services

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// AuditSvcFacade appends to and reads the immutable audit trail.
type AuditSvcFacade interface {
	// Record appends one entry. Components call this immediately after
	// their own state mutation commits and before returning success.
	Record(ctx context.Context, action domain.AuditAction, actor *domain.User, details string, ipAddress string) (*domain.AuditEntry, error)

	// ListEntries returns the full trail, newest first.
	ListEntries(ctx context.Context) ([]domain.AuditEntry, error)
}
