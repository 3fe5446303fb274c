// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "absensiku_backend/internals/features/users/model"
)

/* =========================================================
   1) REQUESTS
========================================================= */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* =========================================================
   2) RESPONSES
========================================================= */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelUser(mm m.UserModel) UserResponse {
	return UserResponse{
		ID:        mm.ID,
		UserName:  mm.UserName,
		Email:     mm.Email,
		CreatedAt: mm.CreatedAt,
	}
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
