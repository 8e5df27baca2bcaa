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
	"github.com/google/uuid"
)

// ballotService owns vote insertion. The atomic commit point for the
// one-vote-per-voter-per-election invariant is VoteRepository.SaveVote;
// the service validates eligibility and candidate membership around it
// and records the audit entry after the write commits.
type ballotService struct {
	BaseService
	voteRepo     portsrepo.VoteRepository
	userRepo     portsrepo.UserRepository
	electionRepo portsrepo.ElectionRepository
	auditService portssvc.AuditSvcFacade
}

// NewBallotService creates the ballot ledger service.
func NewBallotService(voteRepo portsrepo.VoteRepository, userRepo portsrepo.UserRepository, electionRepo portsrepo.ElectionRepository, auditService portssvc.AuditSvcFacade) portssvc.BallotSvcFacade {
	return &ballotService{
		voteRepo:     voteRepo,
		userRepo:     userRepo,
		electionRepo: electionRepo,
		auditService: auditService,
	}
}

var _ portssvc.BallotSvcFacade = (*ballotService)(nil)

func (s *ballotService) CastVote(ctx context.Context, electionID, voterUserID, candidateID string) (*domain.Vote, error) {
	voter, err := s.userRepo.FindUserByID(ctx, voterUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find voter %s: %w", voterUserID, err)
	}

	if !voter.CanVote() {
		return nil, fmt.Errorf("user %s is not an approved voter: %w", voterUserID, apperrors.ErrForbidden)
	}

	election, err := s.electionRepo.FindElectionByID(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find election %s: %w", electionID, err)
	}

	if election.FindCandidate(candidateID) == nil {
		return nil, fmt.Errorf("candidate %s does not belong to election %s: %w", candidateID, electionID, apperrors.ErrValidation)
	}

	constituencyID := voter.ConstituencyID
	if constituencyID == "" {
		constituencyID = "unknown"
	}

	vote := domain.Vote{
		VoteID:         uuid.NewString(),
		ElectionID:     electionID,
		VoterID:        voterUserID,
		CandidateID:    candidateID,
		ConstituencyID: constituencyID,
		CastAt:         time.Now(),
	}

	// SaveVote rejects a second vote for the same (election, voter) pair
	// with ErrAlreadyVoted; that failure is surfaced unchanged.
	if err := s.voteRepo.SaveVote(ctx, vote); err != nil {
		return nil, fmt.Errorf("failed to record vote in election %s: %w", electionID, err)
	}

	// Secret ballot: the audit entry names the election and constituency,
	// never the candidate.
	details := fmt.Sprintf("Voter cast a ballot in election %s from constituency %s", electionID, constituencyID)
	if _, err := s.auditService.Record(ctx, domain.AuditVoteCast, voter, details, ""); err != nil {
		s.LogError(ctx, err, "Failed to record vote-cast audit entry", slog.String("election_id", electionID))
	}

	s.LogInfo(ctx, "Vote recorded",
		slog.String("election_id", electionID),
		slog.String("constituency_id", constituencyID))
	return &vote, nil
}

func (s *ballotService) HasVoted(ctx context.Context, electionID, voterUserID string) (bool, error) {
	voted, err := s.voteRepo.HasVoted(ctx, electionID, voterUserID)
	if err != nil {
		return false, fmt.Errorf("failed to check vote status: %w", err)
	}
	return voted, nil
}
