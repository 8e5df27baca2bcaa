package repositories

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// ConstituencyRepository defines persistence operations for constituencies.
// Constituencies are provisioned once and read-only afterwards.
type ConstituencyRepository interface {
	SaveConstituency(ctx context.Context, constituency domain.Constituency) error
	ListConstituencies(ctx context.Context) ([]domain.Constituency, error)
}
