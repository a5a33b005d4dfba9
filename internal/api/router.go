package api

import (
	"net/http"
	"time"

	"rechargehub-backend/config"
	_ "rechargehub-backend/docs"
	adminPlan "rechargehub-backend/internal/api/v1/admin/plan"
	adminRecharge "rechargehub-backend/internal/api/v1/admin/recharge"
	adminUser "rechargehub-backend/internal/api/v1/admin/user"
	"rechargehub-backend/internal/api/v1/auth"
	"rechargehub-backend/internal/api/v1/plan"
	"rechargehub-backend/internal/api/v1/recharge"
	"rechargehub-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with all route groups attached. Routes
// are exposed twice: under /api/v1 and as unprefixed legacy aliases with
// identical semantics.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	allowOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowOrigins = append(allowOrigins, cfg.FrontendURL)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	})

	v1 := router.Group("/api/v1")
	registerRoutes(v1)

	// Legacy unprefixed aliases
	legacy := router.Group("")
	registerRoutes(legacy)

	return router
}

func registerRoutes(rg *gin.RouterGroup) {
	auth.RegisterRoutes(rg)
	plan.RegisterRoutes(rg)

	authorized := rg.Group("")
	authorized.Use(middleware.AuthMiddleware())
	{
		recharge.RegisterRoutes(authorized)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		adminUser.RegisterRoutes(admin)
		adminPlan.RegisterRoutes(admin)
		adminRecharge.RegisterRoutes(admin)
	}
}
