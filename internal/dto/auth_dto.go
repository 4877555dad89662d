package dto

import (
	"github.com/google/uuid"
	"github.com/studentmatch/backend/internal/model"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=teacher student"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Role is the login surface the user picked; a mismatch with the stored
	// role is rejected, matching the per-role login pages.
	Role string `json:"role" validate:"required,oneof=teacher student"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID    uuid.UUID      `json:"id"`
	Email string         `json:"email"`
	Role  model.UserRole `json:"role"`
}
