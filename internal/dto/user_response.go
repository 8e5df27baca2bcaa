package dto

import (
	"time"

	"github.com/avis-project/avis_backend/internal/core/domain"
)

// UserResponse is the outward representation of a roll record. The
// credential hash is never included.
type UserResponse struct {
	UserID         string    `json:"userID"`
	VoterID        string    `json:"voterID,omitempty"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	ConstituencyID string    `json:"constituencyID,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:         user.UserID,
		VoterID:        user.VoterID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           string(user.Role),
		Status:         string(user.Status),
		ConstituencyID: user.ConstituencyID,
		CreatedAt:      user.CreatedAt,
	}
}

// ListUsersResponse wraps the full roll listing.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}

// ConstituencyResponse is the outward representation of a constituency.
type ConstituencyResponse struct {
	ConstituencyID  string `json:"constituencyID"`
	Name            string `json:"name"`
	Region          string `json:"region"`
	TotalRegistered int    `json:"totalRegistered"`
}

// ToConstituencyResponses converts constituency reference data for listing.
func ToConstituencyResponses(constituencies []domain.Constituency) []ConstituencyResponse {
	out := make([]ConstituencyResponse, len(constituencies))
	for i, c := range constituencies {
		out[i] = ConstituencyResponse{
			ConstituencyID:  c.ConstituencyID,
			Name:            c.Name,
			Region:          c.Region,
			TotalRegistered: c.TotalRegistered,
		}
	}
	return out
}
