package auth

import (
	"time"

	"rechargehub-backend/internal/models"
)

type RegisterInput struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email" binding:"required,email,max=100"`
	Password    string `json:"password" binding:"required"`
}

type LoginInput struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// UserInfo is the public projection of a user record. The password hash
// never appears here.
type UserInfo struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

func NewUserInfo(u *models.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}
