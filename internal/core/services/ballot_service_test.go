package services_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type BallotServiceTestSuite struct {
	suite.Suite
	services *portssvc.ServiceContainer
	repos    portsrepo.RepositoryProvider
}

func (suite *BallotServiceTestSuite) SetupTest() {
	suite.services, suite.repos = newSeededEnv(suite.T())
}

// addApprovedVoter inserts an approved voter directly into the store.
func (suite *BallotServiceTestSuite) addApprovedVoter(constituencyID string) domain.User {
	voter := domain.User{
		UserID:         uuid.NewString(),
		VoterID:        "VOT-2025-0001",
		Name:           "Test Voter",
		Email:          uuid.NewString() + "@example.com",
		Role:           domain.RoleVoter,
		Status:         domain.StatusApproved,
		ConstituencyID: constituencyID,
		PasswordHash:   "irrelevant",
		CreatedAt:      time.Now(),
	}
	err := suite.repos.UserRepo.SaveUser(context.Background(), voter)
	suite.Require().NoError(err)
	return voter
}

// --- CastVote Tests ---

func (suite *BallotServiceTestSuite) TestCastVote_Success() {
	ctx := context.Background()

	vote, err := suite.services.Ballot.CastVote(ctx, "elec-1", "user-demo-1", "cand-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(vote)
	suite.NotEmpty(vote.VoteID)
	suite.Equal("elec-1", vote.ElectionID)
	suite.Equal("user-demo-1", vote.VoterID)
	suite.Equal("cand-1", vote.CandidateID)
	// The constituency is copied from the voter at cast time.
	suite.Equal("con-1", vote.ConstituencyID)
	suite.False(vote.CastAt.IsZero())

	voted, err := suite.services.Ballot.HasVoted(ctx, "elec-1", "user-demo-1")
	suite.Require().NoError(err)
	suite.True(voted)
}

func (suite *BallotServiceTestSuite) TestCastVote_SecondCastRejected() {
	ctx := context.Background()

	_, err := suite.services.Ballot.CastVote(ctx, "elec-1", "user-demo-1", "cand-1")
	suite.Require().NoError(err)

	// A second cast fails regardless of the candidate chosen.
	vote, err := suite.services.Ballot.CastVote(ctx, "elec-1", "user-demo-1", "cand-2")

	suite.Require().Error(err)
	suite.Nil(vote)
	suite.ErrorIs(err, apperrors.ErrAlreadyVoted)

	votes, err := suite.repos.VoteRepo.FindVotesByElection(ctx, "elec-1")
	suite.Require().NoError(err)
	suite.Len(votes, 1)
	suite.Equal("cand-1", votes[0].CandidateID)
}

func (suite *BallotServiceTestSuite) TestCastVote_ConcurrentCastsExactlyOneWins() {
	ctx := context.Background()
	const attempts = 25

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = suite.services.Ballot.CastVote(ctx, "elec-1", "user-demo-1", "cand-2")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		suite.ErrorIs(err, apperrors.ErrAlreadyVoted)
	}
	suite.Equal(1, successes)

	votes, err := suite.repos.VoteRepo.FindVotesByElection(ctx, "elec-1")
	suite.Require().NoError(err)
	suite.Len(votes, 1)
}

func (suite *BallotServiceTestSuite) TestCastVote_PendingVoterForbidden() {
	ctx := context.Background()
	pending := domain.User{
		UserID:       uuid.NewString(),
		VoterID:      "VOT-2025-0002",
		Name:         "Pending Voter",
		Email:        "pending@example.com",
		Role:         domain.RoleVoter,
		Status:       domain.StatusPending,
		PasswordHash: "irrelevant",
		CreatedAt:    time.Now(),
	}
	suite.Require().NoError(suite.repos.UserRepo.SaveUser(ctx, pending))

	vote, err := suite.services.Ballot.CastVote(ctx, "elec-1", pending.UserID, "cand-1")

	suite.Require().Error(err)
	suite.Nil(vote)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BallotServiceTestSuite) TestCastVote_OfficialForbidden() {
	ctx := context.Background()

	vote, err := suite.services.Ballot.CastVote(ctx, "elec-1", "admin-1", "cand-1")

	suite.Require().Error(err)
	suite.Nil(vote)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BallotServiceTestSuite) TestCastVote_UnknownVoter() {
	ctx := context.Background()

	vote, err := suite.services.Ballot.CastVote(ctx, "elec-1", uuid.NewString(), "cand-1")

	suite.Require().Error(err)
	suite.Nil(vote)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BallotServiceTestSuite) TestCastVote_UnknownElection() {
	ctx := context.Background()

	vote, err := suite.services.Ballot.CastVote(ctx, uuid.NewString(), "user-demo-1", "cand-1")

	suite.Require().Error(err)
	suite.Nil(vote)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BallotServiceTestSuite) TestCastVote_CandidateFromAnotherElection() {
	ctx := context.Background()

	vote, err := suite.services.Ballot.CastVote(ctx, "elec-1", "user-demo-1", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(vote)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// Nothing was written.
	voted, err := suite.services.Ballot.HasVoted(ctx, "elec-1", "user-demo-1")
	suite.Require().NoError(err)
	suite.False(voted)
}

func (suite *BallotServiceTestSuite) TestCastVote_AuditEntryNeverNamesCandidate() {
	ctx := context.Background()

	_, err := suite.services.Ballot.CastVote(ctx, "elec-1", "user-demo-1", "cand-1")
	suite.Require().NoError(err)

	entries, err := suite.services.Audit.ListEntries(ctx)
	suite.Require().NoError(err)

	var voteEntries []domain.AuditEntry
	for _, entry := range entries {
		if entry.Action == domain.AuditVoteCast {
			voteEntries = append(voteEntries, entry)
		}
	}
	suite.Require().Len(voteEntries, 1)

	entry := voteEntries[0]
	suite.Contains(entry.Details, "elec-1")
	suite.Contains(entry.Details, "con-1")
	for _, secret := range []string{"cand-1", "cand-2", "cand-3", "Sarah Jenkins", "Marcus Thorne", "Elena Rodriguez"} {
		suite.NotContains(entry.Details, secret, fmt.Sprintf("audit details leaked %q", secret))
	}
}

func (suite *BallotServiceTestSuite) TestCastVote_MissingConstituencyFallsBack() {
	ctx := context.Background()
	voter := suite.addApprovedVoter("")

	vote, err := suite.services.Ballot.CastVote(ctx, "elec-1", voter.UserID, "cand-3")

	suite.Require().NoError(err)
	suite.Equal("unknown", strings.ToLower(vote.ConstituencyID))
}

// --- HasVoted Tests ---

func (suite *BallotServiceTestSuite) TestHasVoted_FreshVoter() {
	ctx := context.Background()

	voted, err := suite.services.Ballot.HasVoted(ctx, "elec-1", "user-demo-1")

	suite.Require().NoError(err)
	suite.False(voted)
}

// --- Run Test Suite ---
func TestBallotService(t *testing.T) {
	suite.Run(t, new(BallotServiceTestSuite))
}
