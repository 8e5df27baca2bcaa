package dto

import (
	"time"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// AuditEntryResponse is the outward representation of one audit entry.
type AuditEntryResponse struct {
	EntryID   string    `json:"entryID"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actorID"`
	ActorName string    `json:"actorName"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ipAddress,omitempty"`
}

// ListAuditEntriesResponse wraps the audit trail, newest first.
type ListAuditEntriesResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
}

// ToListAuditEntriesResponse converts audit entries for listing.
func ToListAuditEntriesResponse(entries []domain.AuditEntry) ListAuditEntriesResponse {
	out := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = AuditEntryResponse{
			EntryID:   e.EntryID,
			Action:    string(e.Action),
			ActorID:   e.ActorID,
			ActorName: e.ActorName,
			Details:   e.Details,
			Timestamp: e.Timestamp,
			IPAddress: e.IPAddress,
		}
	}
	return ListAuditEntriesResponse{Entries: out}
}
