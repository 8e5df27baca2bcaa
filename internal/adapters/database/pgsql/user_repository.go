package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches.
const uniqueViolation = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, voter_id, name, email, role, status, constituency_id, password_hash, created_at)
        VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, NULLIF($7, ''), $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.VoterID,
		user.Name,
		user.Email,
		user.Role,
		user.Status,
		user.ConstituencyID,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("email %s taken: %w", user.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, "user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, "email = $1", email)
}

func (r *PgxUserRepository) findUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT user_id, COALESCE(voter_id, ''), name, email, role, status, COALESCE(constituency_id, ''), password_hash, created_at
		FROM users
		WHERE ` + where + `;
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.UserID,
		&user.VoterID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.Status,
		&user.ConstituencyID,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT user_id, COALESCE(voter_id, ''), name, email, role, status, COALESCE(constituency_id, ''), password_hash, created_at
        FROM users
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.UserID,
			&user.VoterID,
			&user.Name,
			&user.Email,
			&user.Role,
			&user.Status,
			&user.ConstituencyID,
			&user.PasswordHash,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateUserStatus(ctx context.Context, userID string, status domain.AccountStatus) error {
	query := `
        UPDATE users
        SET status = $1
        WHERE user_id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, status, userID)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, email string, passwordHash string) error {
	query := `
        UPDATE users
        SET password_hash = $1
        WHERE email = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, passwordHash, email)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("no user with email %s: %w", email, apperrors.ErrNotFound)
	}
	return nil
}
