package dto

// RegisterRequest carries a new registration for the electoral roll.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=VOTER OFFICIAL"`
	Password string `json:"password" binding:"required,credential"`
}

// LoginRequest carries the credentials for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordRequest replaces the credential of an existing account.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,credential"`
}

// UpdateUserStatusRequest is the official approval/rejection action.
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}
