package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	"github.com/avis-project/avis_backend/internal/utils"
	"github.com/google/uuid"
)

// Seed provisions the demo fixtures: three constituencies, the initial
// official, one approved demo voter and a running election, and records
// the SYSTEM_INIT audit entry. Only used in demo mode and tests.
func Seed(ctx context.Context, repos portsrepo.RepositoryProvider) error {
	now := time.Now()

	constituencies := []domain.Constituency{
		{ConstituencyID: "con-1", Name: "Downtown Metro", Region: "Urban Central", TotalRegistered: 1500},
		{ConstituencyID: "con-2", Name: "Westside Suburbs", Region: "Western District", TotalRegistered: 800},
		{ConstituencyID: "con-3", Name: "North Hills", Region: "Northern Highlands", TotalRegistered: 450},
	}
	for _, c := range constituencies {
		if err := repos.ConstituencyRepo.SaveConstituency(ctx, c); err != nil {
			return fmt.Errorf("failed to seed constituency %s: %w", c.ConstituencyID, err)
		}
	}

	adminHash, err := utils.HashPassword("Admin@1234")
	if err != nil {
		return fmt.Errorf("failed to hash seed official password: %w", err)
	}
	official := domain.User{
		UserID:       "admin-1",
		Name:         "System Administrator",
		Email:        "admin@vote.com",
		Role:         domain.RoleOfficial,
		Status:       domain.StatusApproved,
		PasswordHash: adminHash,
		CreatedAt:    now,
	}
	if err := repos.UserRepo.SaveUser(ctx, official); err != nil {
		return fmt.Errorf("failed to seed official: %w", err)
	}

	voterHash, err := utils.HashPassword("User@1234")
	if err != nil {
		return fmt.Errorf("failed to hash seed voter password: %w", err)
	}
	voter := domain.User{
		UserID:         "user-demo-1",
		VoterID:        "VOT-2025-8842",
		Name:           "Jane Citizen",
		Email:          "jane@demo.com",
		Role:           domain.RoleVoter,
		Status:         domain.StatusApproved,
		ConstituencyID: "con-1",
		PasswordHash:   voterHash,
		CreatedAt:      now,
	}
	if err := repos.UserRepo.SaveUser(ctx, voter); err != nil {
		return fmt.Errorf("failed to seed demo voter: %w", err)
	}

	election := domain.Election{
		ElectionID:  "elec-1",
		Title:       "National Council Representative 2025",
		Description: "Electing the representative for the National Council to oversee urban development.",
		StartDate:   now.Add(-24 * time.Hour),
		EndDate:     now.Add(5 * 24 * time.Hour),
		IsActive:    true,
		CreatedAt:   now,
		CreatedBy:   official.UserID,
		Candidates: []domain.Candidate{
			{CandidateID: "cand-1", Name: "Sarah Jenkins", Party: "Progressive Alliance", Manifesto: "Focusing on green energy and accessible public transport for all citizens."},
			{CandidateID: "cand-2", Name: "Marcus Thorne", Party: "Traditional Union", Manifesto: "Strengthening economic policies and traditional educational values."},
			{CandidateID: "cand-3", Name: "Elena Rodriguez", Party: "Community First", Manifesto: "Grassroots movements, local parks, and increased funding for community arts."},
		},
	}
	if err := repos.ElectionRepo.SaveElection(ctx, election); err != nil {
		return fmt.Errorf("failed to seed election: %w", err)
	}

	entry := domain.AuditEntry{
		EntryID:   uuid.NewString(),
		Action:    domain.AuditSystemInit,
		ActorID:   official.UserID,
		ActorName: official.Name,
		Details:   "In-memory store initialized with demo fixtures",
		Timestamp: now,
	}
	if err := repos.AuditRepo.SaveAuditEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to seed audit entry: %w", err)
	}

	return nil
}
