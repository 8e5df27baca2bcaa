package domain

import "time"

// Vote is an append-only ledger entry. At most one Vote may exist for a
// given (ElectionID, VoterID) pair; it is never mutated or deleted.
type Vote struct {
	VoteID         string    `json:"voteID"`
	ElectionID     string    `json:"electionID"`
	VoterID        string    `json:"voterID"`
	CandidateID    string    `json:"candidateID"`
	ConstituencyID string    `json:"constituencyID"` // Copied from the voter at cast time
	CastAt         time.Time `json:"castAt"`
}
