package pgsql

import (
	"context"
	"fmt"

	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxConstituencyRepository struct {
	db *pgxpool.Pool
}

func newPgxConstituencyRepository(db *pgxpool.Pool) portsrepo.ConstituencyRepository {
	return &PgxConstituencyRepository{db: db}
}

var _ portsrepo.ConstituencyRepository = (*PgxConstituencyRepository)(nil)

func (r *PgxConstituencyRepository) SaveConstituency(ctx context.Context, constituency domain.Constituency) error {
	query := `
        INSERT INTO constituencies (constituency_id, name, region, total_registered)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (constituency_id) DO NOTHING;
    `
	_, err := r.db.Exec(ctx, query,
		constituency.ConstituencyID,
		constituency.Name,
		constituency.Region,
		constituency.TotalRegistered,
	)
	if err != nil {
		return fmt.Errorf("failed to save constituency: %w", err)
	}
	return nil
}

func (r *PgxConstituencyRepository) ListConstituencies(ctx context.Context) ([]domain.Constituency, error) {
	query := `
        SELECT constituency_id, name, region, total_registered
        FROM constituencies
        ORDER BY name;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query constituencies: %w", err)
	}
	defer rows.Close()

	constituencies := []domain.Constituency{}
	for rows.Next() {
		var constituency domain.Constituency
		err := rows.Scan(
			&constituency.ConstituencyID,
			&constituency.Name,
			&constituency.Region,
			&constituency.TotalRegistered,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan constituency row: %w", err)
		}
		constituencies = append(constituencies, constituency)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating constituency rows: %w", rows.Err())
	}
	return constituencies, nil
}
