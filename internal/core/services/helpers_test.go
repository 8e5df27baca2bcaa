package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/avis-project/avis_backend/internal/adapters/database/memory"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/avis-project/avis_backend/internal/core/services"
	"github.com/avis-project/avis_backend/pkg/config"
)

// newSeededEnv wires a full service container over a freshly seeded
// in-memory store. The seed provides three constituencies, the "admin-1"
// official, the approved "user-demo-1" voter and the running "elec-1"
// election with candidates cand-1, cand-2 and cand-3.
func newSeededEnv(t *testing.T) (*portssvc.ServiceContainer, portsrepo.RepositoryProvider) {
	t.Helper()

	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	if err := memory.Seed(context.Background(), repos); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	cfg := &config.Config{
		ElectionWindowDuration: 120 * time.Hour,
	}
	return services.NewServiceContainer(cfg, repos), repos
}
