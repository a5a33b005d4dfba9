package models

import "time"

const (
	PlanCategoryIndividual = "Individual"
	PlanCategoryFamily     = "Family"
)

// Plan is a catalog entry. Recharges copy the fields they need at purchase
// time, so editing or deleting a plan never changes recorded history.
type Plan struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"not null;default:'Individual'" json:"category"`
	Price       int       `gorm:"not null" json:"price"`
	Validity    int       `gorm:"not null" json:"validity"`
	Data        string    `json:"data"`
	Calls       string    `json:"calls"`
	SMS         string    `json:"sms"`
	Description string    `json:"description"`
}
