package memory

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
)

type constituencyRepository struct {
	store *Store
}

var _ portsrepo.ConstituencyRepository = (*constituencyRepository)(nil)

func (r *constituencyRepository) SaveConstituency(ctx context.Context, constituency domain.Constituency) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.constituencies = append(r.store.constituencies, constituency)
	return nil
}

func (r *constituencyRepository) ListConstituencies(ctx context.Context) ([]domain.Constituency, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Constituency, len(r.store.constituencies))
	copy(out, r.store.constituencies)
	return out, nil
}
