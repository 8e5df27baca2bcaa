package services

import (
	"context"
	"fmt"
	"time"

	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// auditService appends to and reads the immutable audit trail. It is a
// thin layer over the repository: the secret-ballot contract on VOTE_CAST
// details belongs to the callers, not here.
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditRepository
}

// NewAuditService creates the audit trail service.
func NewAuditService(auditRepo portsrepo.AuditRepository) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) Record(ctx context.Context, action domain.AuditAction, actor *domain.User, details string, ipAddress string) (*domain.AuditEntry, error) {
	entry := domain.AuditEntry{
		EntryID:   uuid.NewString(),
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
		IPAddress: ipAddress,
	}
	if actor != nil {
		entry.ActorID = actor.UserID
		entry.ActorName = actor.Name
	}

	if err := s.auditRepo.SaveAuditEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append audit entry: %w", err)
	}
	return &entry, nil
}

func (s *auditService) ListEntries(ctx context.Context) ([]domain.AuditEntry, error) {
	entries, err := s.auditRepo.ListAuditEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
