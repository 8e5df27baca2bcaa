package dto

import (
	"time"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// CastVoteRequest casts a ballot in an election.
type CastVoteRequest struct {
	ElectionID  string `json:"electionID" binding:"required"`
	CandidateID string `json:"candidateID" binding:"required"`
}

// VoteReceiptResponse confirms a recorded ballot. It deliberately omits
// the candidate: the voter made the choice and the response travels over
// the same channels as everything else.
type VoteReceiptResponse struct {
	VoteID         string    `json:"voteID"`
	ElectionID     string    `json:"electionID"`
	ConstituencyID string    `json:"constituencyID"`
	CastAt         time.Time `json:"castAt"`
}

// ToVoteReceiptResponse converts a stored vote into a receipt.
func ToVoteReceiptResponse(vote *domain.Vote) VoteReceiptResponse {
	return VoteReceiptResponse{
		VoteID:         vote.VoteID,
		ElectionID:     vote.ElectionID,
		ConstituencyID: vote.ConstituencyID,
		CastAt:         vote.CastAt,
	}
}

// VoteStatusResponse answers "has this voter already voted here".
type VoteStatusResponse struct {
	ElectionID string `json:"electionID"`
	HasVoted   bool   `json:"hasVoted"`
}
