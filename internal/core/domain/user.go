package domain

import "time"

// UserRole distinguishes voters from election officials.
type UserRole string

const (
	RoleVoter    UserRole = "VOTER"
	RoleOfficial UserRole = "OFFICIAL"
)

// AccountStatus is the approval state of a registered user.
// PENDING may move to APPROVED or REJECTED exactly once; both are terminal.
type AccountStatus string

const (
	StatusPending  AccountStatus = "PENDING"
	StatusApproved AccountStatus = "APPROVED"
	StatusRejected AccountStatus = "REJECTED"
)

// User is a voter or official on the electoral roll.
type User struct {
	UserID         string        `json:"userID"`
	VoterID        string        `json:"voterID,omitempty"` // Official voter identifier, voters only, immutable once assigned
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Role           UserRole      `json:"role"`
	Status         AccountStatus `json:"status"`
	ConstituencyID string        `json:"constituencyID,omitempty"`
	PasswordHash   string        `json:"-"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// IsOfficial reports whether the user holds the OFFICIAL role.
func (u *User) IsOfficial() bool {
	return u.Role == RoleOfficial
}

// CanVote reports whether the user is an approved voter.
func (u *User) CanVote() bool {
	return u.Role == RoleVoter && u.Status == StatusApproved
}
