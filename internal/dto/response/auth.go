package response

import (
	"estate-marketplace/internal/data/entity"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID           string                    `json:"id"`
	Username     string                    `json:"username"`
	Email        string                    `json:"email"`
	Phone        *string                   `json:"phone,omitempty"`
	Role         entity.UserRole           `json:"role"`
	Verification entity.VerificationStatus `json:"verification_status"`
}

func UserToResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:           u.ID.String(),
		Username:     u.Username,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         u.Role,
		Verification: u.Verification,
	}
}
