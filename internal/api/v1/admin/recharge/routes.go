package recharge

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recharges", ListRecharges)
	router.GET("/recharges/export", ExportRecharges)
	router.GET("/stats", DashboardStats)
}
