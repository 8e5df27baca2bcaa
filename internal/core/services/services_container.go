package services

import (
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/avis-project/avis_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The audit trail comes first: every other stateful service records
	// its own entries through it.
	container.Audit = NewAuditService(repos.AuditRepo)

	container.Roll = NewRollService(repos.UserRepo, repos.ConstituencyRepo, container.Audit)
	container.Election = NewElectionService(repos.ElectionRepo, container.Audit, cfg.ElectionWindowDuration)
	container.Ballot = NewBallotService(repos.VoteRepo, repos.UserRepo, repos.ElectionRepo, container.Audit)
	container.Tally = NewTallyService(repos.VoteRepo, repos.ElectionRepo, repos.ConstituencyRepo)
	container.Advisory = NewAdvisoryService(cfg.AdvisoryBaseURL, cfg.AdvisoryAPIKey, cfg.AdvisoryTimeout)

	return container
}
