package domain

import "time"

// AuditAction enumerates the recorded administrative and voting events.
type AuditAction string

const (
	AuditLogin           AuditAction = "LOGIN"
	AuditVoteCast        AuditAction = "VOTE_CAST"
	AuditUserApproved    AuditAction = "USER_APPROVED"
	AuditUserRejected    AuditAction = "USER_REJECTED"
	AuditElectionCreated AuditAction = "ELECTION_CREATED"
	AuditSystemInit      AuditAction = "SYSTEM_INIT"
)

// AuditEntry is an immutable record of a single action. Entries for
// VOTE_CAST must never name the chosen candidate in Details (secret
// ballot): they may reference the election and the constituency only.
type AuditEntry struct {
	EntryID   string      `json:"entryID"`
	Action    AuditAction `json:"action"`
	ActorID   string      `json:"actorID"`
	ActorName string      `json:"actorName"`
	Details   string      `json:"details"`
	Timestamp time.Time   `json:"timestamp"`
	IPAddress string      `json:"ipAddress,omitempty"`
}
