package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/avis-project/avis_backend/internal/apperrors"
	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxElectionRepository struct {
	db *pgxpool.Pool
}

func newPgxElectionRepository(db *pgxpool.Pool) portsrepo.ElectionRepository {
	return &PgxElectionRepository{db: db}
}

var _ portsrepo.ElectionRepository = (*PgxElectionRepository)(nil)

// SaveElection saves an election and its candidate list within a DB transaction.
func (r *PgxElectionRepository) SaveElection(ctx context.Context, election domain.Election) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	electionQuery := `
		INSERT INTO elections (election_id, title, description, start_date, end_date, is_active, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''));
	`
	_, err = tx.Exec(ctx, electionQuery,
		election.ElectionID,
		election.Title,
		election.Description,
		election.StartDate,
		election.EndDate,
		election.IsActive,
		election.CreatedAt,
		election.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert election %s: %w", election.ElectionID, err)
	}

	batch := &pgx.Batch{}
	candidateQuery := `
		INSERT INTO candidates (candidate_id, election_id, name, party, manifesto, image_url, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for i, candidate := range election.Candidates {
		batch.Queue(candidateQuery,
			candidate.CandidateID,
			election.ElectionID,
			candidate.Name,
			candidate.Party,
			candidate.Manifesto,
			candidate.ImageURL,
			i,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range election.Candidates {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to insert candidate for election %s: %w", election.ElectionID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close candidate batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit election %s: %w", election.ElectionID, err)
	}
	return nil
}

func (r *PgxElectionRepository) FindElectionByID(ctx context.Context, electionID string) (*domain.Election, error) {
	query := `
		SELECT election_id, title, description, start_date, end_date, is_active, created_at, COALESCE(created_by, '')
		FROM elections
		WHERE election_id = $1;
	`
	var election domain.Election
	err := r.db.QueryRow(ctx, query, electionID).Scan(
		&election.ElectionID,
		&election.Title,
		&election.Description,
		&election.StartDate,
		&election.EndDate,
		&election.IsActive,
		&election.CreatedAt,
		&election.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find election %s: %w", electionID, err)
	}

	candidates, err := r.findCandidates(ctx, electionID)
	if err != nil {
		return nil, err
	}
	election.Candidates = candidates
	return &election, nil
}

func (r *PgxElectionRepository) ListActiveElections(ctx context.Context) ([]domain.Election, error) {
	query := `
		SELECT election_id, title, description, start_date, end_date, is_active, created_at, COALESCE(created_by, '')
		FROM elections
		WHERE is_active = TRUE
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active elections: %w", err)
	}
	defer rows.Close()

	elections := []domain.Election{}
	for rows.Next() {
		var election domain.Election
		err := rows.Scan(
			&election.ElectionID,
			&election.Title,
			&election.Description,
			&election.StartDate,
			&election.EndDate,
			&election.IsActive,
			&election.CreatedAt,
			&election.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan election row: %w", err)
		}
		elections = append(elections, election)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating election rows: %w", rows.Err())
	}

	for i := range elections {
		candidates, err := r.findCandidates(ctx, elections[i].ElectionID)
		if err != nil {
			return nil, err
		}
		elections[i].Candidates = candidates
	}
	return elections, nil
}

func (r *PgxElectionRepository) findCandidates(ctx context.Context, electionID string) ([]domain.Candidate, error) {
	query := `
		SELECT candidate_id, name, party, manifesto, image_url
		FROM candidates
		WHERE election_id = $1
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates for election %s: %w", electionID, err)
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		var candidate domain.Candidate
		err := rows.Scan(
			&candidate.CandidateID,
			&candidate.Name,
			&candidate.Party,
			&candidate.Manifesto,
			&candidate.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating candidate rows: %w", rows.Err())
	}
	return candidates, nil
}
