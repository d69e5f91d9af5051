package dto

import (
	"github.com/SscSPs/loan_ledger/internal/core/domain"
)

// CreateUserRequest is the body of local registration.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=72"` // bcrypt reads at most 72 bytes
	Name     string `json:"name" binding:"required,max=200"`
}

// LoginRequest is the body of local login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Name:     user.Name,
	}
}
