package pgsql

import (
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		ConstituencyRepo: newPgxConstituencyRepository(dbPool),
		ElectionRepo:     newPgxElectionRepository(dbPool),
		VoteRepo:         newPgxVoteRepository(dbPool),
		AuditRepo:        newPgxAuditRepository(dbPool),
	}
}
