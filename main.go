package main

import (
	"errors"
	"log"

	"rechargehub-backend/config"
	"rechargehub-backend/internal/api"
	"rechargehub-backend/internal/database"
	"rechargehub-backend/internal/models"
	"rechargehub-backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @title rechargehub-backend API
// @version 1.0
// @description Mobile recharge e-commerce backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if _, err := database.Connect(cfg.DSN()); err != nil {
		logger.Log.Fatal("failed to connect database", zap.Error(err))
	}

	if cfg.RedisAddr != "" {
		if err := database.ConnectRedis(cfg); err != nil {
			logger.Log.Fatal("failed to connect redis", zap.Error(err))
		}
	} else {
		logger.Log.Warn("redis not configured, token revocation disabled")
	}

	err = database.DB.AutoMigrate(&models.User{}, &models.Plan{}, &models.Recharge{})
	if err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	initAdminUser(cfg)

	router := api.NewRouter(cfg)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}

// initAdminUser seeds the first admin account from ADMIN_PHONE and
// ADMIN_PASSWORD. Without them no admin exists and the admin API stays
// unreachable.
func initAdminUser(cfg *config.Config) {
	if cfg.AdminPhone == "" || cfg.AdminPassword == "" {
		logger.Log.Warn("ADMIN_PHONE/ADMIN_PASSWORD not set, skipping admin seeding")
		return
	}

	var adminUser models.User
	err := database.DB.Where("phone_number = ?", cfg.AdminPhone).First(&adminUser).Error
	if err == nil {
		logger.Log.Info("admin user already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Log.Fatal("failed to check for admin user", zap.Error(err))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Fatal("failed to hash admin password", zap.Error(err))
	}

	adminUser = models.User{
		Name:        "Administrator",
		PhoneNumber: cfg.AdminPhone,
		Email:       "admin@rechargehub.local",
		Password:    string(hashedPassword),
		Role:        models.RoleAdmin,
	}

	if err := database.DB.Create(&adminUser).Error; err != nil {
		logger.Log.Fatal("failed to create admin user", zap.Error(err))
	}
	logger.Log.Info("admin user created successfully")
}
