package dto

import (
	"time"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// CandidateInput is one candidate in an election definition.
type CandidateInput struct {
	Name      string `json:"name" binding:"required"`
	Party     string `json:"party" binding:"required"`
	Manifesto string `json:"manifesto"`
	ImageURL  string `json:"imageURL"`
}

// CreateElectionRequest defines a new election. At least two candidates
// are required for the definition to be publishable.
type CreateElectionRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Candidates  []CandidateInput `json:"candidates" binding:"required,min=2,dive"`
}

// CandidateResponse is the outward representation of a candidate.
type CandidateResponse struct {
	CandidateID string `json:"candidateID"`
	Name        string `json:"name"`
	Party       string `json:"party"`
	Manifesto   string `json:"manifesto"`
	ImageURL    string `json:"imageURL,omitempty"`
}

// ElectionResponse is the outward representation of an election.
type ElectionResponse struct {
	ElectionID  string              `json:"electionID"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	StartDate   time.Time           `json:"startDate"`
	EndDate     time.Time           `json:"endDate"`
	IsActive    bool                `json:"isActive"`
	Candidates  []CandidateResponse `json:"candidates"`
}

// ToElectionResponse converts a domain.Election to its response DTO.
func ToElectionResponse(election *domain.Election) ElectionResponse {
	candidates := make([]CandidateResponse, len(election.Candidates))
	for i, c := range election.Candidates {
		candidates[i] = CandidateResponse{
			CandidateID: c.CandidateID,
			Name:        c.Name,
			Party:       c.Party,
			Manifesto:   c.Manifesto,
			ImageURL:    c.ImageURL,
		}
	}
	return ElectionResponse{
		ElectionID:  election.ElectionID,
		Title:       election.Title,
		Description: election.Description,
		StartDate:   election.StartDate,
		EndDate:     election.EndDate,
		IsActive:    election.IsActive,
		Candidates:  candidates,
	}
}

// ToElectionResponses converts a slice of elections for listing.
func ToElectionResponses(elections []domain.Election) []ElectionResponse {
	out := make([]ElectionResponse, len(elections))
	for i := range elections {
		out[i] = ToElectionResponse(&elections[i])
	}
	return out
}
