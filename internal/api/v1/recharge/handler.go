package recharge

import (
	"errors"
	"net/http"

	"rechargehub-backend/internal/models"
	"rechargehub-backend/internal/services"
	"rechargehub-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	u, ok := userVal.(models.User)
	return u, ok
}

// CreateRecharge godoc
// @Summary Submit a recharge
// @Description Record a simulated recharge payment for the authenticated user
// @Tags recharge
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body CreateRechargeInput true "Recharge Input"
// @Success 201 {object} utils.Response{data=RechargeResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /recharge [post]
func CreateRecharge(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var input CreateRechargeInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	rec, err := services.CreateRecharge(u.ID, services.RechargeInput{
		PlanName:      input.PlanName,
		Amount:        input.Amount,
		Validity:      input.Validity,
		Data:          input.Data,
		PhoneNumber:   input.PhoneNumber,
		PaymentMethod: input.PaymentMethod,
		UPIID:         input.PaymentDetails.UPIID,
		CardNumber:    input.PaymentDetails.CardNumber,
		CardName:      input.PaymentDetails.CardName,
		CardCVV:       input.PaymentDetails.CardCVV,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPhoneNumber),
			errors.Is(err, services.ErrInvalidAmount),
			errors.Is(err, services.ErrInvalidPaymentMethod):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			zap.L().Error("recharge creation failed", zap.Error(err), zap.Uint("user_id", u.ID))
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create recharge"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Recharge successful", RechargeResponse{Recharge: *rec}))
}

// RechargeHistory godoc
// @Summary Recharge history
// @Description List the authenticated user's recharges, most recent first
// @Tags recharge
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=RechargeListResponse}
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /recharge/history [get]
func RechargeHistory(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	recharges, err := services.FindRechargesForUser(u.ID)
	if err != nil {
		zap.L().Error("failed to fetch recharge history", zap.Error(err), zap.Uint("user_id", u.ID))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch recharge history"))
		return
	}

	if recharges == nil {
		recharges = []models.Recharge{}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Recharge history retrieved successfully", RechargeListResponse{Recharges: recharges}))
}
