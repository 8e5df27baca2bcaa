package repositories

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// AuditRepository is a dumb append-only sink for audit entries. The
// secret-ballot contract on VOTE_CAST details is enforced by callers,
// not here.
type AuditRepository interface {
	SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error
	// ListAuditEntries returns entries ordered newest-first.
	ListAuditEntries(ctx context.Context) ([]domain.AuditEntry, error)
}
