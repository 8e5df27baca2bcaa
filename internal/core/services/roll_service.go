package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
	"github.com/avis-project/avis_backend/internal/dto"
	"github.com/avis-project/avis_backend/internal/utils"
	"github.com/google/uuid"
)

// rollService owns identity and approval-status mutation for the
// electoral roll. Constituencies are read-only reference data here.
type rollService struct {
	BaseService
	userRepo         portsrepo.UserRepository
	constituencyRepo portsrepo.ConstituencyRepository
	auditService     portssvc.AuditSvcFacade
}

// NewRollService creates the electoral roll service.
func NewRollService(userRepo portsrepo.UserRepository, constituencyRepo portsrepo.ConstituencyRepository, auditService portssvc.AuditSvcFacade) portssvc.RollSvcFacade {
	return &rollService{
		userRepo:         userRepo,
		constituencyRepo: constituencyRepo,
		auditService:     auditService,
	}
}

var _ portssvc.RollSvcFacade = (*rollService)(nil)

func (s *rollService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s is already registered: %w", req.Email, apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	role := domain.UserRole(req.Role)

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}

	if role == domain.RoleOfficial {
		// Officials are trusted actors and never sit in the approval queue.
		user.Status = domain.StatusApproved
	} else {
		user.Status = domain.StatusPending

		voterID, err := utils.GenerateVoterID(now)
		if err != nil {
			return nil, err
		}
		user.VoterID = voterID

		constituencyID, err := s.assignConstituency(ctx)
		if err != nil {
			return nil, err
		}
		user.ConstituencyID = constituencyID
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)),
		slog.String("status", string(user.Status)))
	return &user, nil
}

// assignConstituency picks one of the provisioned constituencies at
// random. Any policy over the existing constituencies would do; random
// keeps the demo roll evenly spread.
func (s *rollService) assignConstituency(ctx context.Context) (string, error) {
	constituencies, err := s.constituencyRepo.ListConstituencies(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list constituencies: %w", err)
	}
	if len(constituencies) == 0 {
		return "", nil
	}
	idx, err := utils.SecureRandomInt(len(constituencies))
	if err != nil {
		return "", err
	}
	return constituencies[idx].ConstituencyID, nil
}

func (s *rollService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Uniform response: unknown email and wrong password are
			// indistinguishable to the caller.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (s *rollService) SetUserStatus(ctx context.Context, userID string, status domain.AccountStatus, actor *domain.User) (*domain.User, error) {
	if status != domain.StatusApproved && status != domain.StatusRejected {
		return nil, fmt.Errorf("status %q is not a legal target: %w", status, apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}

	if user.Status != domain.StatusPending {
		return nil, fmt.Errorf("user %s is already %s: %w", userID, user.Status, apperrors.ErrValidation)
	}

	if err := s.userRepo.UpdateUserStatus(ctx, userID, status); err != nil {
		return nil, fmt.Errorf("failed to update status of user %s: %w", userID, err)
	}
	user.Status = status

	action := domain.AuditUserApproved
	if status == domain.StatusRejected {
		action = domain.AuditUserRejected
	}
	details := fmt.Sprintf("Updated status of user %s (%s) to %s", user.Email, user.VoterID, status)
	if _, err := s.auditService.Record(ctx, action, actor, details, ""); err != nil {
		s.LogError(ctx, err, "Failed to record status-change audit entry", slog.String("user_id", userID))
	}

	s.LogInfo(ctx, "User status updated",
		slog.String("user_id", userID),
		slog.String("status", string(status)))
	return user, nil
}

func (s *rollService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err != nil {
		return fmt.Errorf("failed to find user for password reset: %w", err)
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, email, passwordHash); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}

func (s *rollService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *rollService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *rollService) ListConstituencies(ctx context.Context) ([]domain.Constituency, error) {
	constituencies, err := s.constituencyRepo.ListConstituencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list constituencies: %w", err)
	}
	return constituencies, nil
}
