package services

import (
	"errors"

	"rechargehub-backend/internal/database"
	"rechargehub-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrInvalidCategory = errors.New("category must be Individual or Family")
	ErrInvalidPrice    = errors.New("price must be a positive amount")
	ErrInvalidValidity = errors.New("validity must be a positive number of days")
)

// FindPlans returns the whole catalog, cheapest first.
func FindPlans() ([]models.Plan, error) {
	var plans []models.Plan
	if err := database.DB.Order("price asc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func FindPlanByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	if err := database.DB.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func validateCategory(category string) error {
	if category != models.PlanCategoryIndividual && category != models.PlanCategoryFamily {
		return ErrInvalidCategory
	}
	return nil
}

func CreatePlan(plan *models.Plan) error {
	if err := validateCategory(plan.Category); err != nil {
		return err
	}
	if plan.Price <= 0 {
		return ErrInvalidPrice
	}
	if plan.Validity <= 0 {
		return ErrInvalidValidity
	}
	return database.DB.Create(plan).Error
}

// UpdatePlan applies a partial field replacement to an existing plan.
// Only the keys present in updates change; everything else is left alone.
func UpdatePlan(id uint, updates map[string]interface{}) (*models.Plan, error) {
	var plan models.Plan
	if err := database.DB.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	if category, ok := updates["category"].(string); ok {
		if err := validateCategory(category); err != nil {
			return nil, err
		}
	}
	if price, ok := updates["price"].(int); ok && price <= 0 {
		return nil, ErrInvalidPrice
	}
	if validity, ok := updates["validity"].(int); ok && validity <= 0 {
		return nil, ErrInvalidValidity
	}

	if err := database.DB.Model(&plan).Updates(updates).Error; err != nil {
		return nil, err
	}

	database.DB.First(&plan, id)
	return &plan, nil
}

// DeletePlan removes a plan from the catalog. Recharge rows keep their own
// snapshot of plan fields, so history is unaffected.
func DeletePlan(id uint) error {
	result := database.DB.Delete(&models.Plan{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
