package services

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// BallotSvcFacade is the ballot ledger write side.
type BallotSvcFacade interface {
	// CastVote records exactly one vote per voter per election. The voter
	// must be an approved voter (apperrors.ErrNotFound / ErrForbidden) and
	// the candidate must belong to the election (apperrors.ErrValidation).
	// A duplicate cast fails with apperrors.ErrAlreadyVoted and writes
	// nothing. On success a VOTE_CAST audit entry is recorded that names
	// the election and constituency but never the candidate.
	CastVote(ctx context.Context, electionID, voterUserID, candidateID string) (*domain.Vote, error)

	HasVoted(ctx context.Context, electionID, voterUserID string) (bool, error)
}
