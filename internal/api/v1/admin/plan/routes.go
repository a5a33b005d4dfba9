package plan

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans")
	plans.GET("", ListPlans)
	plans.POST("", CreatePlan)
	plans.PUT("/:id", UpdatePlan)
	plans.DELETE("/:id", DeletePlan)
}
