package plan

import (
	"net/http"

	"rechargehub-backend/internal/models"
	"rechargehub-backend/internal/services"
	"rechargehub-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlanListResponse struct {
	Plans []models.Plan `json:"plans"`
}

// ListPlans godoc
// @Summary List recharge plans
// @Description Get the full plan catalog, cheapest first. Public.
// @Tags plans
// @Produce json
// @Success 200 {object} utils.Response{data=PlanListResponse}
// @Failure 500 {object} utils.Response
// @Router /plans [get]
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
