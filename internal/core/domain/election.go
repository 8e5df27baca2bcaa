package domain

import "time"

// Candidate is owned by the election that declares it and is never
// referenced outside that election.
type Candidate struct {
	CandidateID string `json:"candidateID"`
	Name        string `json:"name"`
	Party       string `json:"party"`
	Manifesto   string `json:"manifesto"`
	ImageURL    string `json:"imageURL,omitempty"`
}

// Election is immutable once created; amendments require a new election.
// IsActive is a static flag set at creation, not derived from EndDate.
type Election struct {
	ElectionID  string      `json:"electionID"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	Candidates  []Candidate `json:"candidates"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	CreatedBy   string      `json:"createdBy"`
}

// FindCandidate returns the candidate with the given ID, or nil when the
// election does not declare it.
func (e *Election) FindCandidate(candidateID string) *Candidate {
	for i := range e.Candidates {
		if e.Candidates[i].CandidateID == candidateID {
			return &e.Candidates[i]
		}
	}
	return nil
}
