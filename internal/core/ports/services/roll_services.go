package services

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
	"github.com/avis-project/avis_backend/internal/dto"
)

// RollSvcFacade manages the electoral roll: registration, authentication,
// approval state and constituency reference data.
type RollSvcFacade interface {
	// Register creates a new user. Voters start PENDING with a freshly
	// assigned voter ID and constituency; officials start APPROVED.
	// Returns apperrors.ErrDuplicate when the email is taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies email + password. It fails closed with
	// apperrors.ErrUnauthorized on any mismatch, without revealing whether
	// the email exists.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// SetUserStatus performs the PENDING -> APPROVED/REJECTED transition and
	// records the corresponding audit entry. Any other transition fails with
	// apperrors.ErrValidation.
	SetUserStatus(ctx context.Context, userID string, status domain.AccountStatus, actor *domain.User) (*domain.User, error)

	// ResetPassword replaces the credential of an existing user.
	ResetPassword(ctx context.Context, email, newPassword string) error

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListConstituencies(ctx context.Context) ([]domain.Constituency, error)
}
