package services

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// TallySvcFacade is the stateless read side over the ballot ledger.
// Every call recomputes from the current ledger snapshot; nothing is
// cached and nothing is mutated, so callers may poll arbitrarily often.
type TallySvcFacade interface {
	// CandidateTally counts votes per candidate. Candidates with zero
	// votes are omitted.
	CandidateTally(ctx context.Context, electionID string) ([]domain.CandidateCount, error)

	// PartyTally joins each vote's candidate to its party and sums.
	PartyTally(ctx context.Context, electionID string) ([]domain.PartyCount, error)

	// ConstituencyTurnout counts votes per constituency name; votes whose
	// constituency cannot be resolved land in the "Unknown" bucket.
	ConstituencyTurnout(ctx context.Context, electionID string) ([]domain.ConstituencyTurnout, error)
}
