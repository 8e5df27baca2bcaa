package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVoteRepository struct {
	db *pgxpool.Pool
}

func newPgxVoteRepository(db *pgxpool.Pool) portsrepo.VoteRepository {
	return &PgxVoteRepository{db: db}
}

var _ portsrepo.VoteRepository = (*PgxVoteRepository)(nil)

// SaveVote inserts a ballot. The UNIQUE (election_id, voter_id) constraint
// makes the check-and-insert atomic: a concurrent duplicate loses the
// race inside the database and surfaces here as ErrAlreadyVoted.
func (r *PgxVoteRepository) SaveVote(ctx context.Context, vote domain.Vote) error {
	query := `
        INSERT INTO votes (vote_id, election_id, voter_id, candidate_id, constituency_id, cast_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		vote.VoteID,
		vote.ElectionID,
		vote.VoterID,
		vote.CandidateID,
		vote.ConstituencyID,
		vote.CastAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("duplicate ballot for election %s: %w", vote.ElectionID, apperrors.ErrAlreadyVoted)
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *PgxVoteRepository) HasVoted(ctx context.Context, electionID, voterID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM votes WHERE election_id = $1 AND voter_id = $2
		);
	`
	var voted bool
	if err := r.db.QueryRow(ctx, query, electionID, voterID).Scan(&voted); err != nil {
		return false, fmt.Errorf("failed to check vote existence: %w", err)
	}
	return voted, nil
}

func (r *PgxVoteRepository) FindVotesByElection(ctx context.Context, electionID string) ([]domain.Vote, error) {
	query := `
        SELECT vote_id, election_id, voter_id, candidate_id, constituency_id, cast_at
        FROM votes
        WHERE election_id = $1
        ORDER BY cast_at;
    `
	rows, err := r.db.Query(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []domain.Vote{}
	for rows.Next() {
		var vote domain.Vote
		err := rows.Scan(
			&vote.VoteID,
			&vote.ElectionID,
			&vote.VoterID,
			&vote.CandidateID,
			&vote.ConstituencyID,
			&vote.CastAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote row: %w", err)
		}
		votes = append(votes, vote)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating vote rows: %w", rows.Err())
	}
	return votes, nil
}
