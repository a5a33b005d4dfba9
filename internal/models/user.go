package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"not null" json:"name"`
	PhoneNumber string    `gorm:"uniqueIndex;not null" json:"phone_number"`
	Email       string    `gorm:"not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"not null;default:'USER'" json:"role"`
}
