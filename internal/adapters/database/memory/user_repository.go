package memory

import (
	"context"
	"fmt"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
)

type userRepository struct {
	store *Store
}

var _ portsrepo.UserRepository = (*userRepository)(nil)

func (r *userRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.userIDByMail[user.Email]; exists {
		return fmt.Errorf("email %s taken: %w", user.Email, apperrors.ErrDuplicate)
	}
	r.store.users[user.UserID] = user
	r.store.userIDByMail[user.Email] = user.UserID
	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	userID, ok := r.store.userIDByMail[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user := r.store.users[userID]
	return &user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]domain.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *userRepository) UpdateUserStatus(ctx context.Context, userID string, status domain.AccountStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.Status = status
	r.store.users[userID] = user
	return nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, email string, passwordHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	userID, ok := r.store.userIDByMail[email]
	if !ok {
		return apperrors.ErrNotFound
	}
	user := r.store.users[userID]
	user.PasswordHash = passwordHash
	r.store.users[userID] = user
	return nil
}
