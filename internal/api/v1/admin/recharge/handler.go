package recharge

import (
	"fmt"
	"net/http"
	"time"

	"rechargehub-backend/internal/models"
	"rechargehub-backend/internal/services"
	"rechargehub-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RechargeListResponse struct {
	Data []models.Recharge `json:"data"`
}

// ListRecharges godoc
// @Summary List all recharges
// @Description Get every recharge across users, most recent first. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=RechargeListResponse}
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/recharges [get]
func ListRecharges(c *gin.Context) {
	recharges, err := services.FindAllRecharges()
	if err != nil {
		zap.L().Error("failed to fetch recharges", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch recharges"))
		return
	}

	if recharges == nil {
		recharges = []models.Recharge{}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Recharges retrieved successfully", RechargeListResponse{Data: recharges}))
}

// DashboardStats godoc
// @Summary Dashboard statistics
// @Description Aggregate user, recharge and revenue statistics. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=services.DashboardStats}
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/stats [get]
func DashboardStats(c *gin.Context) {
	stats, err := services.ComputeDashboardStats()
	if err != nil {
		zap.L().Error("failed to compute dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch stats"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Stats retrieved successfully", stats))
}

// ExportRecharges godoc
// @Summary Export recharges
// @Description Download the full recharge ledger as an xlsx workbook. Admin only.
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security Bearer
// @Success 200 {file} binary
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/recharges/export [get]
func ExportRecharges(c *gin.Context) {
	recharges, err := services.FindAllRecharges()
	if err != nil {
		zap.L().Error("failed to fetch recharges for export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch recharges"))
		return
	}

	content, err := services.GenerateRechargeWorkbook(recharges)
	if err != nil {
		zap.L().Error("failed to generate recharge workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to generate export"))
		return
	}

	fileName := fmt.Sprintf("recharges_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
