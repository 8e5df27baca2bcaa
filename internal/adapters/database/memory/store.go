// Package memory provides in-memory repository implementations guarded by
// a single read/write lock. It backs the demo mode (no database
// configured) and the service tests; the locking gives the same
// atomic check-and-insert guarantee on votes that the pgsql adapter gets
// from its unique constraint.
package memory

import (
	"sync"

	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
)

// Store is the shared state behind all memory repositories.
type Store struct {
	mu sync.RWMutex

	users        map[string]domain.User
	userIDByMail map[string]string

	constituencies []domain.Constituency

	elections     map[string]domain.Election
	electionOrder []string

	votes      []domain.Vote
	voteByPair map[string]struct{}
	auditTrail []domain.AuditEntry
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]domain.User),
		userIDByMail: make(map[string]string),
		elections:    make(map[string]domain.Election),
		voteByPair:   make(map[string]struct{}),
	}
}

// NewRepositoryProvider wires all memory repositories over one shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         &userRepository{store: store},
		ConstituencyRepo: &constituencyRepository{store: store},
		ElectionRepo:     &electionRepository{store: store},
		VoteRepo:         &voteRepository{store: store},
		AuditRepo:        &auditRepository{store: store},
	}
}

func pairKey(electionID, voterID string) string {
	return electionID + "|" + voterID
}
