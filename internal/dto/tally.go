package dto

import (
	"github.com/avis-project/avis_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CandidateTallyResponse wraps the per-candidate counts of one election.
type CandidateTallyResponse struct {
	ElectionID string                  `json:"electionID"`
	TotalVotes int                     `json:"totalVotes"`
	Results    []domain.CandidateCount `json:"results"`
}

// PartyTallyResponse wraps the per-party counts of one election.
type PartyTallyResponse struct {
	ElectionID string              `json:"electionID"`
	Results    []domain.PartyCount `json:"results"`
}

// TurnoutRow is one constituency row of a turnout report.
type TurnoutRow struct {
	ConstituencyName string          `json:"constituencyName"`
	Votes            int             `json:"votes"`
	TotalRegistered  int             `json:"totalRegistered"`
	TurnoutPercent   decimal.Decimal `json:"turnoutPercent"`
}

// TurnoutResponse wraps the per-constituency turnout of one election.
type TurnoutResponse struct {
	ElectionID string       `json:"electionID"`
	Results    []TurnoutRow `json:"results"`
}

// ToTurnoutResponse converts domain turnout rows into the response DTO.
func ToTurnoutResponse(electionID string, rows []domain.ConstituencyTurnout) TurnoutResponse {
	out := make([]TurnoutRow, len(rows))
	for i, r := range rows {
		out[i] = TurnoutRow{
			ConstituencyName: r.ConstituencyName,
			Votes:            r.Votes,
			TotalRegistered:  r.TotalRegistered,
			TurnoutPercent:   r.TurnoutPercent,
		}
	}
	return TurnoutResponse{ElectionID: electionID, Results: out}
}
