package domain

import "github.com/shopspring/decimal"

// CandidateCount is one row of a per-candidate tally.
type CandidateCount struct {
	CandidateID   string `json:"candidateID"`
	CandidateName string `json:"candidateName"`
	Party         string `json:"party"`
	Count         int    `json:"count"`
}

// PartyCount is one row of a per-party tally.
type PartyCount struct {
	Party string `json:"party"`
	Count int    `json:"count"`
}

// ConstituencyTurnout is one row of a per-constituency turnout report.
// TurnoutPercent is zero when the constituency is unknown or has no
// registered-voter figure.
type ConstituencyTurnout struct {
	ConstituencyName string          `json:"constituencyName"`
	Votes            int             `json:"votes"`
	TotalRegistered  int             `json:"totalRegistered"`
	TurnoutPercent   decimal.Decimal `json:"turnoutPercent"`
}
