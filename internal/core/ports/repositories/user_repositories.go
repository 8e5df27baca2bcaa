package repositories

import (
	"context"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// UserRepository defines persistence operations for the electoral roll.
type UserRepository interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// UpdateUserStatus moves a user to a new approval status. It does not
	// enforce the transition rules; the roll service owns those.
	UpdateUserStatus(ctx context.Context, userID string, status domain.AccountStatus) error
	UpdatePasswordHash(ctx context.Context, email string, passwordHash string) error
}
