package plan

import "rechargehub-backend/internal/models"

type CreatePlanInput struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=Individual Family"`
	Price       int    `json:"price" binding:"required,gt=0"`
	Validity    int    `json:"validity" binding:"required,gt=0"`
	Data        string `json:"data"`
	Calls       string `json:"calls"`
	SMS         string `json:"sms"`
	Description string `json:"description"`
}

// UpdatePlanInput allows partial field replacement; absent fields are left
// unchanged.
type UpdatePlanInput struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty" binding:"omitempty,oneof=Individual Family"`
	Price       *int    `json:"price,omitempty" binding:"omitempty,gt=0"`
	Validity    *int    `json:"validity,omitempty" binding:"omitempty,gt=0"`
	Data        *string `json:"data,omitempty"`
	Calls       *string `json:"calls,omitempty"`
	SMS         *string `json:"sms,omitempty"`
	Description *string `json:"description,omitempty"`
}

type PlanListResponse struct {
	Plans []models.Plan `json:"plans"`
}
