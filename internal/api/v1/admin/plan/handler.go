package plan

import (
	"errors"
	"net/http"
	"strconv"

	"rechargehub-backend/internal/models"
	"rechargehub-backend/internal/services"
	"rechargehub-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListPlans godoc
// @Summary List all plans
// @Description Get the full plan catalog. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=PlanListResponse}
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/plans [get]
func ListPlans(c *gin.Context) {
	plans, err := services.FindPlans()
	if err != nil {
		zap.L().Error("failed to fetch plans", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch plans"))
		return
	}

	if plans == nil {
		plans = []models.Plan{}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Plans retrieved successfully", PlanListResponse{Plans: plans}))
}

// CreatePlan godoc
// @Summary Create a plan
// @Description Add a new plan to the catalog. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body CreatePlanInput true "Plan Input"
// @Success 201 {object} utils.Response{data=models.Plan}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/plans [post]
func CreatePlan(c *gin.Context) {
	var input CreatePlanInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	plan := &models.Plan{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Validity:    input.Validity,
		Data:        input.Data,
		Calls:       input.Calls,
		SMS:         input.SMS,
		Description: input.Description,
	}

	if err := services.CreatePlan(plan); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCategory),
			errors.Is(err, services.ErrInvalidPrice),
			errors.Is(err, services.ErrInvalidValidity):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			zap.L().Error("plan creation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create plan"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Plan created successfully", plan))
}

// UpdatePlan godoc
// @Summary Update a plan
// @Description Partially update plan fields. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Plan ID"
// @Param input body UpdatePlanInput true "Fields to update"
// @Success 200 {object} utils.Response{data=models.Plan}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/plans/{id} [put]
func UpdatePlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid plan ID"))
		return
	}

	var input UpdatePlanInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Validity != nil {
		updates["validity"] = *input.Validity
	}
	if input.Data != nil {
		updates["data"] = *input.Data
	}
	if input.Calls != nil {
		updates["calls"] = *input.Calls
	}
	if input.SMS != nil {
		updates["sms"] = *input.SMS
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	plan, err := services.UpdatePlan(uint(id), updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Plan not found"))
		case errors.Is(err, services.ErrInvalidCategory),
			errors.Is(err, services.ErrInvalidPrice),
			errors.Is(err, services.ErrInvalidValidity):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			zap.L().Error("plan update failed", zap.Error(err), zap.Int("plan_id", id))
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update plan"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Plan updated successfully", plan))
}

// DeletePlan godoc
// @Summary Delete a plan
// @Description Remove a plan from the catalog. Recharge history keeps its snapshots. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/plans/{id} [delete]
func DeletePlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid plan ID"))
		return
	}

	if err := services.DeletePlan(uint(id)); err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Plan not found"))
			return
		}
		zap.L().Error("plan deletion failed", zap.Error(err), zap.Int("plan_id", id))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete plan"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Plan deleted successfully", nil))
}
