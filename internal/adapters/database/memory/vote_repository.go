package memory

import (
	"context"
	"fmt"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
)

type voteRepository struct {
	store *Store
}

var _ portsrepo.VoteRepository = (*voteRepository)(nil)

// SaveVote performs the check-and-insert for the (election, voter) pair
// under the store's write lock, so concurrent casts for the same pair
// cannot both succeed.
func (r *voteRepository) SaveVote(ctx context.Context, vote domain.Vote) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := pairKey(vote.ElectionID, vote.VoterID)
	if _, exists := r.store.voteByPair[key]; exists {
		return fmt.Errorf("duplicate ballot for election %s: %w", vote.ElectionID, apperrors.ErrAlreadyVoted)
	}

	r.store.votes = append(r.store.votes, vote)
	r.store.voteByPair[key] = struct{}{}
	return nil
}

func (r *voteRepository) HasVoted(ctx context.Context, electionID, voterID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, exists := r.store.voteByPair[pairKey(electionID, voterID)]
	return exists, nil
}

func (r *voteRepository) FindVotesByElection(ctx context.Context, electionID string) ([]domain.Vote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	votes := make([]domain.Vote, 0)
	for _, vote := range r.store.votes {
		if vote.ElectionID == electionID {
			votes = append(votes, vote)
		}
	}
	return votes, nil
}
