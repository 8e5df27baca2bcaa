package memory

import (
	"context"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
)

type electionRepository struct {
	store *Store
}

var _ portsrepo.ElectionRepository = (*electionRepository)(nil)

func (r *electionRepository) SaveElection(ctx context.Context, election domain.Election) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.elections[election.ElectionID]; !exists {
		r.store.electionOrder = append(r.store.electionOrder, election.ElectionID)
	}
	r.store.elections[election.ElectionID] = election
	return nil
}

func (r *electionRepository) FindElectionByID(ctx context.Context, electionID string) (*domain.Election, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	election, ok := r.store.elections[electionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &election, nil
}

func (r *electionRepository) ListActiveElections(ctx context.Context) ([]domain.Election, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	elections := make([]domain.Election, 0, len(r.store.electionOrder))
	for _, id := range r.store.electionOrder {
		election := r.store.elections[id]
		if election.IsActive {
			elections = append(elections, election)
		}
	}
	return elections, nil
}
