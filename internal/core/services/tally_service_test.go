package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TallyServiceTestSuite struct {
	suite.Suite
	services *portssvc.ServiceContainer
	repos    portsrepo.RepositoryProvider
}

func (suite *TallyServiceTestSuite) SetupTest() {
	suite.services, suite.repos = newSeededEnv(suite.T())
}

// castBallot provisions an approved voter in the given constituency and
// casts their ballot in elec-1.
func (suite *TallyServiceTestSuite) castBallot(constituencyID, candidateID string) {
	ctx := context.Background()
	voter := domain.User{
		UserID:         uuid.NewString(),
		VoterID:        "VOT-2025-0001",
		Name:           "Tally Voter",
		Email:          uuid.NewString() + "@example.com",
		Role:           domain.RoleVoter,
		Status:         domain.StatusApproved,
		ConstituencyID: constituencyID,
		PasswordHash:   "irrelevant",
		CreatedAt:      time.Now(),
	}
	suite.Require().NoError(suite.repos.UserRepo.SaveUser(ctx, voter))

	_, err := suite.services.Ballot.CastVote(ctx, "elec-1", voter.UserID, candidateID)
	suite.Require().NoError(err)
}

// castKnownDistribution casts five ballots: three for cand-1, two for
// cand-2, none for cand-3.
func (suite *TallyServiceTestSuite) castKnownDistribution() {
	suite.castBallot("con-1", "cand-1")
	suite.castBallot("con-1", "cand-1")
	suite.castBallot("con-1", "cand-2")
	suite.castBallot("con-2", "cand-1")
	suite.castBallot("con-2", "cand-2")
}

// --- CandidateTally Tests ---

func (suite *TallyServiceTestSuite) TestCandidateTally_KnownDistribution() {
	ctx := context.Background()
	suite.castKnownDistribution()

	results, err := suite.services.Tally.CandidateTally(ctx, "elec-1")

	suite.Require().NoError(err)
	// cand-3 has zero votes and is omitted; rows come sorted by count.
	suite.Require().Len(results, 2)
	suite.Equal("cand-1", results[0].CandidateID)
	suite.Equal(3, results[0].Count)
	suite.Equal("Sarah Jenkins", results[0].CandidateName)
	suite.Equal("Progressive Alliance", results[0].Party)
	suite.Equal("cand-2", results[1].CandidateID)
	suite.Equal(2, results[1].Count)
}

func (suite *TallyServiceTestSuite) TestCandidateTally_EmptyLedger() {
	ctx := context.Background()

	results, err := suite.services.Tally.CandidateTally(ctx, "elec-1")

	suite.Require().NoError(err)
	suite.Empty(results)
}

func (suite *TallyServiceTestSuite) TestCandidateTally_UnknownElection() {
	ctx := context.Background()

	results, err := suite.services.Tally.CandidateTally(ctx, "elec-missing")

	suite.Require().Error(err)
	suite.Nil(results)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TallyServiceTestSuite) TestCandidateTally_RereadsLedgerEveryCall() {
	ctx := context.Background()
	suite.castBallot("con-1", "cand-1")

	first, err := suite.services.Tally.CandidateTally(ctx, "elec-1")
	suite.Require().NoError(err)
	suite.Require().Len(first, 1)
	suite.Equal(1, first[0].Count)

	suite.castBallot("con-2", "cand-1")

	second, err := suite.services.Tally.CandidateTally(ctx, "elec-1")
	suite.Require().NoError(err)
	suite.Require().Len(second, 1)
	suite.Equal(2, second[0].Count)
}

func (suite *TallyServiceTestSuite) TestCandidateTally_ConcurrentCastsSumExactly() {
	ctx := context.Background()

	// 50 distinct approved voters with a fixed candidate split:
	// 20 for cand-1, 20 for cand-2, 10 for cand-3.
	assignments := make([]string, 0, 50)
	for i := 0; i < 20; i++ {
		assignments = append(assignments, "cand-1")
	}
	for i := 0; i < 20; i++ {
		assignments = append(assignments, "cand-2")
	}
	for i := 0; i < 10; i++ {
		assignments = append(assignments, "cand-3")
	}

	voterIDs := make([]string, len(assignments))
	for i := range assignments {
		voter := domain.User{
			UserID:         uuid.NewString(),
			VoterID:        fmt.Sprintf("VOT-2025-%04d", i),
			Name:           fmt.Sprintf("Concurrent Voter %d", i),
			Email:          uuid.NewString() + "@example.com",
			Role:           domain.RoleVoter,
			Status:         domain.StatusApproved,
			ConstituencyID: "con-1",
			PasswordHash:   "irrelevant",
			CreatedAt:      time.Now(),
		}
		suite.Require().NoError(suite.repos.UserRepo.SaveUser(ctx, voter))
		voterIDs[i] = voter.UserID
	}

	var wg sync.WaitGroup
	errs := make([]error, len(assignments))
	for i := range assignments {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = suite.services.Ballot.CastVote(ctx, "elec-1", voterIDs[i], assignments[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		suite.Require().NoError(err, "cast %d failed", i)
	}

	results, err := suite.services.Tally.CandidateTally(ctx, "elec-1")

	suite.Require().NoError(err)
	suite.Require().Len(results, 3)

	total := 0
	byCandidate := make(map[string]int, len(results))
	for _, row := range results {
		byCandidate[row.CandidateID] = row.Count
		total += row.Count
	}
	suite.Equal(50, total)
	suite.Equal(20, byCandidate["cand-1"])
	suite.Equal(20, byCandidate["cand-2"])
	suite.Equal(10, byCandidate["cand-3"])
}

// --- PartyTally Tests ---

func (suite *TallyServiceTestSuite) TestPartyTally_JoinsCandidateToParty() {
	ctx := context.Background()
	suite.castKnownDistribution()

	results, err := suite.services.Tally.PartyTally(ctx, "elec-1")

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.Equal("Progressive Alliance", results[0].Party)
	suite.Equal(3, results[0].Count)
	suite.Equal("Traditional Union", results[1].Party)
	suite.Equal(2, results[1].Count)
}

// --- ConstituencyTurnout Tests ---

func (suite *TallyServiceTestSuite) TestConstituencyTurnout_PercentFromRegistered() {
	ctx := context.Background()
	suite.castKnownDistribution()

	results, err := suite.services.Tally.ConstituencyTurnout(ctx, "elec-1")

	suite.Require().NoError(err)
	// Rows are sorted by constituency name.
	suite.Require().Len(results, 2)

	downtown := results[0]
	suite.Equal("Downtown Metro", downtown.ConstituencyName)
	suite.Equal(3, downtown.Votes)
	suite.Equal(1500, downtown.TotalRegistered)
	suite.True(downtown.TurnoutPercent.Equal(decimal.RequireFromString("0.2")),
		fmt.Sprintf("unexpected turnout percent %s", downtown.TurnoutPercent))

	westside := results[1]
	suite.Equal("Westside Suburbs", westside.ConstituencyName)
	suite.Equal(2, westside.Votes)
	suite.Equal(800, westside.TotalRegistered)
	suite.True(westside.TurnoutPercent.Equal(decimal.RequireFromString("0.25")),
		fmt.Sprintf("unexpected turnout percent %s", westside.TurnoutPercent))
}

func (suite *TallyServiceTestSuite) TestConstituencyTurnout_UnresolvableBucket() {
	ctx := context.Background()
	suite.castBallot("con-1", "cand-1")
	// This voter references a constituency that no longer exists.
	suite.castBallot("con-gone", "cand-2")

	results, err := suite.services.Tally.ConstituencyTurnout(ctx, "elec-1")

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)

	suite.Equal("Downtown Metro", results[0].ConstituencyName)
	suite.Equal(1, results[0].Votes)

	unknown := results[1]
	suite.Equal("Unknown", unknown.ConstituencyName)
	suite.Equal(1, unknown.Votes)
	suite.Equal(0, unknown.TotalRegistered)
	suite.True(unknown.TurnoutPercent.IsZero())
}

// --- Run Test Suite ---
func TestTallyService(t *testing.T) {
	suite.Run(t, new(TallyServiceTestSuite))
}
