package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/avis-project/avis_backend/internal/dto"
	"github.com/avis-project/avis_backend/internal/handlers"
	"github.com/avis-project/avis_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BallotService ---
type MockBallotService struct {
	mock.Mock
}

func (m *MockBallotService) CastVote(ctx context.Context, electionID, voterUserID, candidateID string) (*domain.Vote, error) {
	args := m.Called(ctx, electionID, voterUserID, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vote), args.Error(1)
}

func (m *MockBallotService) HasVoted(ctx context.Context, electionID, voterUserID string) (bool, error) {
	args := m.Called(ctx, electionID, voterUserID)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BallotSvcFacade = (*MockBallotService)(nil)

// --- Test Suite ---
type VoteHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	jwtSecret         string
	mockBallotService *MockBallotService
}

// generateTestToken creates a dummy JWT for testing.
func (suite *VoteHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "avis-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *VoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockBallotService = new(MockBallotService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterVoteRoutes(v1, suite.mockBallotService)
}

func (suite *VoteHandlerTestSuite) postVote(token string, body dto.CastVoteRequest) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/votes", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *VoteHandlerTestSuite) TestCastVote_Success() {
	voterUserID := uuid.NewString()
	castReq := dto.CastVoteRequest{ElectionID: "elec-1", CandidateID: "cand-1"}
	expectedVote := &domain.Vote{
		VoteID:         uuid.NewString(),
		ElectionID:     castReq.ElectionID,
		VoterID:        voterUserID,
		CandidateID:    castReq.CandidateID,
		ConstituencyID: "con-1",
		CastAt:         time.Now(),
	}

	suite.mockBallotService.On("CastVote",
		mock.AnythingOfType("*context.valueCtx"),
		castReq.ElectionID,
		voterUserID,
		castReq.CandidateID,
	).Return(expectedVote, nil).Once()

	w := suite.postVote(suite.generateTestToken(voterUserID), castReq)

	suite.Equal(http.StatusCreated, w.Code)

	var receipt dto.VoteReceiptResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &receipt))
	suite.Equal(expectedVote.VoteID, receipt.VoteID)
	suite.Equal(expectedVote.ElectionID, receipt.ElectionID)
	// The receipt never echoes the candidate back.
	suite.NotContains(w.Body.String(), castReq.CandidateID)

	suite.mockBallotService.AssertExpectations(suite.T())
}

func (suite *VoteHandlerTestSuite) TestCastVote_DuplicateReturnsConflict() {
	voterUserID := uuid.NewString()
	castReq := dto.CastVoteRequest{ElectionID: "elec-1", CandidateID: "cand-1"}

	suite.mockBallotService.On("CastVote",
		mock.AnythingOfType("*context.valueCtx"),
		castReq.ElectionID,
		voterUserID,
		castReq.CandidateID,
	).Return(nil, apperrors.ErrAlreadyVoted).Once()

	w := suite.postVote(suite.generateTestToken(voterUserID), castReq)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockBallotService.AssertExpectations(suite.T())
}

func (suite *VoteHandlerTestSuite) TestCastVote_UnapprovedReturnsForbidden() {
	voterUserID := uuid.NewString()
	castReq := dto.CastVoteRequest{ElectionID: "elec-1", CandidateID: "cand-1"}

	suite.mockBallotService.On("CastVote",
		mock.AnythingOfType("*context.valueCtx"),
		castReq.ElectionID,
		voterUserID,
		castReq.CandidateID,
	).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.postVote(suite.generateTestToken(voterUserID), castReq)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockBallotService.AssertExpectations(suite.T())
}

func (suite *VoteHandlerTestSuite) TestCastVote_MissingTokenRejected() {
	payload, _ := json.Marshal(dto.CastVoteRequest{ElectionID: "elec-1", CandidateID: "cand-1"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/votes", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBallotService.AssertNotCalled(suite.T(), "CastVote")
}

func (suite *VoteHandlerTestSuite) TestGetVoteStatus() {
	voterUserID := uuid.NewString()

	suite.mockBallotService.On("HasVoted",
		mock.AnythingOfType("*context.valueCtx"),
		"elec-1",
		voterUserID,
	).Return(true, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/votes/elec-1", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(voterUserID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var status dto.VoteStatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &status))
	suite.Equal("elec-1", status.ElectionID)
	suite.True(status.HasVoted)

	suite.mockBallotService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestVoteHandler(t *testing.T) {
	suite.Run(t, new(VoteHandlerTestSuite))
}
