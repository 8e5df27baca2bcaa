package repositories

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// VoteRepository is the append-only ballot ledger. SaveVote is the atomic
// commit point for the one-vote-per-voter-per-election invariant: the
// adapter must reject a second vote for the same (election, voter) pair
// with apperrors.ErrAlreadyVoted, indivisibly with respect to concurrent
// callers for that pair.
type VoteRepository interface {
	SaveVote(ctx context.Context, vote domain.Vote) error
	HasVoted(ctx context.Context, electionID, voterID string) (bool, error)
	FindVotesByElection(ctx context.Context, electionID string) ([]domain.Vote, error)
}
