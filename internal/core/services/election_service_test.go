package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/avis-project/avis_backend/internal/dto"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ElectionServiceTestSuite struct {
	suite.Suite
	services *portssvc.ServiceContainer
	repos    portsrepo.RepositoryProvider
	official *domain.User
}

func (suite *ElectionServiceTestSuite) SetupTest() {
	suite.services, suite.repos = newSeededEnv(suite.T())

	official, err := suite.services.Roll.GetUserByID(context.Background(), "admin-1")
	suite.Require().NoError(err)
	suite.official = official
}

// --- CreateElection Tests ---

func (suite *ElectionServiceTestSuite) TestCreateElection_Success() {
	ctx := context.Background()
	req := dto.CreateElectionRequest{
		Title:       "City Referendum 2026",
		Description: "Deciding the future of the tram network.",
		Candidates: []dto.CandidateInput{
			{Name: "Alice Stone", Party: "Greens"},
			{Name: "Bob Flint", Party: "Liberals"},
		},
	}

	election, err := suite.services.Election.CreateElection(ctx, req, suite.official)

	suite.Require().NoError(err)
	suite.Require().NotNil(election)
	suite.NotEmpty(election.ElectionID)
	suite.True(election.IsActive)
	suite.Equal(suite.official.UserID, election.CreatedBy)
	suite.Len(election.Candidates, 2)
	for _, candidate := range election.Candidates {
		suite.NotEmpty(candidate.CandidateID)
	}
	// The voting window is applied from the configured duration.
	suite.Equal(120*time.Hour, election.EndDate.Sub(election.StartDate))

	// The catalog now lists both the seeded and the new election.
	active, err := suite.services.Election.ListActiveElections(ctx)
	suite.Require().NoError(err)
	suite.Len(active, 2)
}

func (suite *ElectionServiceTestSuite) TestCreateElection_RecordsAuditEntry() {
	ctx := context.Background()
	req := dto.CreateElectionRequest{
		Title: "School Board Election",
		Candidates: []dto.CandidateInput{
			{Name: "Alice Stone", Party: "Greens"},
			{Name: "Bob Flint", Party: "Liberals"},
		},
	}

	_, err := suite.services.Election.CreateElection(ctx, req, suite.official)
	suite.Require().NoError(err)

	entries, err := suite.services.Audit.ListEntries(ctx)
	suite.Require().NoError(err)

	// Entries come back newest-first.
	suite.Require().NotEmpty(entries)
	suite.Equal(domain.AuditElectionCreated, entries[0].Action)
	suite.Equal(suite.official.UserID, entries[0].ActorID)
	suite.Contains(entries[0].Details, "School Board Election")
}

func (suite *ElectionServiceTestSuite) TestCreateElection_RequiresTwoCandidates() {
	ctx := context.Background()
	req := dto.CreateElectionRequest{
		Title: "One Horse Race",
		Candidates: []dto.CandidateInput{
			{Name: "Sole Runner", Party: "Solo"},
		},
	}

	election, err := suite.services.Election.CreateElection(ctx, req, suite.official)

	suite.Require().Error(err)
	suite.Nil(election)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// Nothing was added to the catalog.
	active, err := suite.services.Election.ListActiveElections(ctx)
	suite.Require().NoError(err)
	suite.Len(active, 1)
}

// --- Lookup Tests ---

func (suite *ElectionServiceTestSuite) TestGetElectionByID_Seeded() {
	ctx := context.Background()

	election, err := suite.services.Election.GetElectionByID(ctx, "elec-1")

	suite.Require().NoError(err)
	suite.Equal("National Council Representative 2025", election.Title)
	suite.Len(election.Candidates, 3)
}

func (suite *ElectionServiceTestSuite) TestGetElectionByID_Unknown() {
	ctx := context.Background()

	election, err := suite.services.Election.GetElectionByID(ctx, "elec-missing")

	suite.Require().Error(err)
	suite.Nil(election)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ElectionServiceTestSuite) TestGetCandidate() {
	ctx := context.Background()

	candidate, err := suite.services.Election.GetCandidate(ctx, "elec-1", "cand-2")

	suite.Require().NoError(err)
	suite.Equal("Marcus Thorne", candidate.Name)
	suite.Equal("Traditional Union", candidate.Party)
}

func (suite *ElectionServiceTestSuite) TestGetCandidate_WrongElection() {
	ctx := context.Background()

	candidate, err := suite.services.Election.GetCandidate(ctx, "elec-1", "cand-nope")

	suite.Require().Error(err)
	suite.Nil(candidate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Test Suite ---
func TestElectionService(t *testing.T) {
	suite.Run(t, new(ElectionServiceTestSuite))
}
