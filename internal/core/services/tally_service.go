package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// unknownConstituency is the bucket for votes whose stored constituency
// reference no longer resolves.
const unknownConstituency = "Unknown"

// tallyService recomputes aggregates from the current ledger snapshot on
// every call. It holds no state and mutates nothing, so callers may poll
// it as often as they like.
type tallyService struct {
	BaseService
	voteRepo         portsrepo.VoteRepository
	electionRepo     portsrepo.ElectionRepository
	constituencyRepo portsrepo.ConstituencyRepository
}

// NewTallyService creates the read-side tally service.
func NewTallyService(voteRepo portsrepo.VoteRepository, electionRepo portsrepo.ElectionRepository, constituencyRepo portsrepo.ConstituencyRepository) portssvc.TallySvcFacade {
	return &tallyService{
		voteRepo:         voteRepo,
		electionRepo:     electionRepo,
		constituencyRepo: constituencyRepo,
	}
}

var _ portssvc.TallySvcFacade = (*tallyService)(nil)

func (s *tallyService) CandidateTally(ctx context.Context, electionID string) ([]domain.CandidateCount, error) {
	votes, err := s.voteRepo.FindVotesByElection(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load votes for election %s: %w", electionID, err)
	}

	election, err := s.electionRepo.FindElectionByID(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load election %s: %w", electionID, err)
	}

	counts := make(map[string]int)
	for _, vote := range votes {
		counts[vote.CandidateID]++
	}

	// Candidates with zero votes are omitted.
	results := make([]domain.CandidateCount, 0, len(counts))
	for candidateID, count := range counts {
		row := domain.CandidateCount{CandidateID: candidateID, Count: count}
		if candidate := election.FindCandidate(candidateID); candidate != nil {
			row.CandidateName = candidate.Name
			row.Party = candidate.Party
		}
		results = append(results, row)
	}

	sortCandidateCounts(results)
	return results, nil
}

func (s *tallyService) PartyTally(ctx context.Context, electionID string) ([]domain.PartyCount, error) {
	votes, err := s.voteRepo.FindVotesByElection(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load votes for election %s: %w", electionID, err)
	}

	election, err := s.electionRepo.FindElectionByID(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load election %s: %w", electionID, err)
	}

	counts := make(map[string]int)
	for _, vote := range votes {
		candidate := election.FindCandidate(vote.CandidateID)
		if candidate == nil {
			// A vote for a candidate the election does not declare cannot
			// be attributed to a party; skip it.
			continue
		}
		counts[candidate.Party]++
	}

	results := make([]domain.PartyCount, 0, len(counts))
	for party, count := range counts {
		results = append(results, domain.PartyCount{Party: party, Count: count})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Party < results[j].Party
	})
	return results, nil
}

func (s *tallyService) ConstituencyTurnout(ctx context.Context, electionID string) ([]domain.ConstituencyTurnout, error) {
	votes, err := s.voteRepo.FindVotesByElection(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load votes for election %s: %w", electionID, err)
	}

	constituencies, err := s.constituencyRepo.ListConstituencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load constituencies: %w", err)
	}

	byID := make(map[string]domain.Constituency, len(constituencies))
	for _, c := range constituencies {
		byID[c.ConstituencyID] = c
	}

	counts := make(map[string]int)
	registered := make(map[string]int)
	for _, vote := range votes {
		name := unknownConstituency
		if c, ok := byID[vote.ConstituencyID]; ok {
			name = c.Name
			registered[name] = c.TotalRegistered
		}
		counts[name]++
	}

	results := make([]domain.ConstituencyTurnout, 0, len(counts))
	for name, count := range counts {
		row := domain.ConstituencyTurnout{
			ConstituencyName: name,
			Votes:            count,
			TotalRegistered:  registered[name],
		}
		if row.TotalRegistered > 0 {
			row.TurnoutPercent = decimal.NewFromInt(int64(count)).
				Div(decimal.NewFromInt(int64(row.TotalRegistered))).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}
		results = append(results, row)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ConstituencyName < results[j].ConstituencyName
	})
	return results, nil
}

func sortCandidateCounts(results []domain.CandidateCount) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].CandidateID < results[j].CandidateID
	})
}
