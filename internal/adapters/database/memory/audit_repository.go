package memory

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
)

type auditRepository struct {
	store *Store
}

var _ portsrepo.AuditRepository = (*auditRepository)(nil)

func (r *auditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.auditTrail = append(r.store.auditTrail, entry)
	return nil
}

// ListAuditEntries returns the trail newest-first.
func (r *auditRepository) ListAuditEntries(ctx context.Context) ([]domain.AuditEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.AuditEntry, len(r.store.auditTrail))
	for i, entry := range r.store.auditTrail {
		out[len(r.store.auditTrail)-1-i] = entry
	}
	return out, nil
}
