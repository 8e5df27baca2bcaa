package pgsql

import (
	"context"
	"fmt"

	"github.com/avis-project/avis_backend/internal/core/domain"
	portsrepo "github.com/avis-project/avis_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	db *pgxpool.Pool
}

func newPgxAuditRepository(db *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{db: db}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

func (r *PgxAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	query := `
        INSERT INTO audit_entries (entry_id, action, actor_id, actor_name, details, occurred_at, ip_address)
        VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''));
    `
	_, err := r.db.Exec(ctx, query,
		entry.EntryID,
		entry.Action,
		entry.ActorID,
		entry.ActorName,
		entry.Details,
		entry.Timestamp,
		entry.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit entry: %w", err)
	}
	return nil
}

// ListAuditEntries returns the trail newest-first.
func (r *PgxAuditRepository) ListAuditEntries(ctx context.Context) ([]domain.AuditEntry, error) {
	query := `
        SELECT entry_id, action, actor_id, actor_name, details, occurred_at, COALESCE(ip_address, '')
        FROM audit_entries
        ORDER BY occurred_at DESC, entry_id;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		var entry domain.AuditEntry
		err := rows.Scan(
			&entry.EntryID,
			&entry.Action,
			&entry.ActorID,
			&entry.ActorName,
			&entry.Details,
			&entry.Timestamp,
			&entry.IPAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry row: %w", err)
		}
		entries = append(entries, entry)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating audit entry rows: %w", rows.Err())
	}
	return entries, nil
}
