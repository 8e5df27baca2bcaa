package services

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
	"github.com/avis-project/avis_backend/internal/dto"
)

// ElectionSvcFacade manages the election catalog. Elections are immutable
// once created; there is no update or delete operation.
type ElectionSvcFacade interface {
	// CreateElection validates the definition (at least two candidates),
	// assigns identifiers and the voting window, and records an
	// ELECTION_CREATED audit entry.
	CreateElection(ctx context.Context, req dto.CreateElectionRequest, actor *domain.User) (*domain.Election, error)

	ListActiveElections(ctx context.Context) ([]domain.Election, error)
	GetElectionByID(ctx context.Context, electionID string) (*domain.Election, error)
	GetCandidate(ctx context.Context, electionID, candidateID string) (*domain.Candidate, error)
}
