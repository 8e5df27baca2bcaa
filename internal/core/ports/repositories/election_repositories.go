package repositories

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// ElectionRepository defines persistence operations for elections and
// their candidates. Saving an election implies saving its candidate list
// atomically; elections are never updated or deleted afterwards.
type ElectionRepository interface {
	SaveElection(ctx context.Context, election domain.Election) error
	FindElectionByID(ctx context.Context, electionID string) (*domain.Election, error)
	ListActiveElections(ctx context.Context) ([]domain.Election, error)
}
