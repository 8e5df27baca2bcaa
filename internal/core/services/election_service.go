package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/avis-project/avis_backend/internal/dto"
	"github.com/google/uuid"
)

// electionService manages the election catalog. Elections are write-once:
// no update or delete exists, amendments require a new election.
type electionService struct {
	BaseService
	electionRepo portsrepo.ElectionRepository
	auditService portssvc.AuditSvcFacade
	votingWindow time.Duration
}

// NewElectionService creates the election catalog service. votingWindow is
// the default duration between an election's start and end dates.
func NewElectionService(electionRepo portsrepo.ElectionRepository, auditService portssvc.AuditSvcFacade, votingWindow time.Duration) portssvc.ElectionSvcFacade {
	return &electionService{
		electionRepo: electionRepo,
		auditService: auditService,
		votingWindow: votingWindow,
	}
}

var _ portssvc.ElectionSvcFacade = (*electionService)(nil)

func (s *electionService) CreateElection(ctx context.Context, req dto.CreateElectionRequest, actor *domain.User) (*domain.Election, error) {
	if len(req.Candidates) < 2 {
		return nil, fmt.Errorf("an election requires at least two candidates, got %d: %w", len(req.Candidates), apperrors.ErrValidation)
	}

	now := time.Now()
	candidates := make([]domain.Candidate, len(req.Candidates))
	for i, c := range req.Candidates {
		candidates[i] = domain.Candidate{
			CandidateID: uuid.NewString(),
			Name:        c.Name,
			Party:       c.Party,
			Manifesto:   c.Manifesto,
			ImageURL:    c.ImageURL,
		}
	}

	election := domain.Election{
		ElectionID:  uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   now,
		EndDate:     now.Add(s.votingWindow),
		Candidates:  candidates,
		IsActive:    true,
		CreatedAt:   now,
	}
	if actor != nil {
		election.CreatedBy = actor.UserID
	}

	if err := s.electionRepo.SaveElection(ctx, election); err != nil {
		return nil, fmt.Errorf("failed to save election: %w", err)
	}

	if _, err := s.auditService.Record(ctx, domain.AuditElectionCreated, actor, fmt.Sprintf("Created election: %s", election.Title), ""); err != nil {
		s.LogError(ctx, err, "Failed to record election-created audit entry", slog.String("election_id", election.ElectionID))
	}

	s.LogInfo(ctx, "Election created",
		slog.String("election_id", election.ElectionID),
		slog.Int("candidates", len(candidates)))
	return &election, nil
}

func (s *electionService) ListActiveElections(ctx context.Context) ([]domain.Election, error) {
	elections, err := s.electionRepo.ListActiveElections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active elections: %w", err)
	}
	return elections, nil
}

func (s *electionService) GetElectionByID(ctx context.Context, electionID string) (*domain.Election, error) {
	election, err := s.electionRepo.FindElectionByID(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get election %s: %w", electionID, err)
	}
	return election, nil
}

func (s *electionService) GetCandidate(ctx context.Context, electionID, candidateID string) (*domain.Candidate, error) {
	election, err := s.electionRepo.FindElectionByID(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get election %s: %w", electionID, err)
	}
	candidate := election.FindCandidate(candidateID)
	if candidate == nil {
		return nil, fmt.Errorf("candidate %s does not belong to election %s: %w", candidateID, electionID, apperrors.ErrNotFound)
	}
	return candidate, nil
}
