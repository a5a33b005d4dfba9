package recharge

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	recharge := router.Group("/recharge")
	recharge.POST("", CreateRecharge)
	recharge.GET("/history", RechargeHistory)
}
