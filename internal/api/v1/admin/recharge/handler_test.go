package recharge_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	adminRecharge "rechargehub-backend/internal/api/v1/admin/recharge"
	"rechargehub-backend/internal/database"
	"rechargehub-backend/internal/middleware"
	"rechargehub-backend/internal/models"
	"rechargehub-backend/internal/services"
	"rechargehub-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Plan{}, &models.Recharge{})

	if err := db.AutoMigrate(&models.User{}, &models.Plan{}, &models.Recharge{}); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func seedUser(t *testing.T, phone, role string) (*models.User, string) {
	t.Helper()
	user := &models.User{
		Name:        "Test User",
		PhoneNumber: phone,
		Email:       "test@example.com",
		Password:    "hashedpassword",
		Role:        role,
	}
	assert.NoError(t, database.DB.Create(user).Error)

	token, err := utils.GenerateToken(user.ID, user.Role)
	assert.NoError(t, err)
	return user, token
}

func newAdminRouter() *gin.Engine {
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	adminRecharge.RegisterRoutes(admin)
	return r
}

func seedLedger(t *testing.T) {
	alice, _ := seedUser(t, "9812345670", models.RoleUser)
	bob, _ := seedUser(t, "9812345672", models.RoleUser)

	_, err := services.CreateRecharge(alice.ID, services.RechargeInput{
		PlanName: "Basic", Amount: 99, PhoneNumber: "9812345670", PaymentMethod: "UPI", UPIID: "alice@upi",
	})
	assert.NoError(t, err)
	_, err = services.CreateRecharge(bob.ID, services.RechargeInput{
		PlanName: "Premium", Amount: 599, PhoneNumber: "9812345672", PaymentMethod: "CARD", CardNumber: "4111111111111234",
	})
	assert.NoError(t, err)
}

func TestListRecharges(t *testing.T) {
	setupTestDB()
	_, adminToken := seedUser(t, "9812345671", models.RoleAdmin)
	_, userToken := seedUser(t, "9812345673", models.RoleUser)
	seedLedger(t)
	r := newAdminRouter()

	t.Run("Admin Sees All", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/admin/recharges", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data adminRecharge.RechargeListResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data.Data, 2)
	})

	t.Run("Non-admin Forbidden", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/admin/recharges", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestDashboardStats(t *testing.T) {
	setupTestDB()
	_, adminToken := seedUser(t, "9812345671", models.RoleAdmin)
	seedLedger(t)
	r := newAdminRouter()

	req, _ := http.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data services.DashboardStats `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data.TotalUsers)
	assert.Equal(t, int64(2), resp.Data.TotalRecharges)
	assert.Equal(t, int64(698), resp.Data.TotalRevenue)
	assert.Len(t, resp.Data.ByMethod, 2)
}

func TestExportRecharges(t *testing.T) {
	setupTestDB()
	_, adminToken := seedUser(t, "9812345671", models.RoleAdmin)
	seedLedger(t)
	r := newAdminRouter()

	req, _ := http.NewRequest(http.MethodGet, "/admin/recharges/export", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, []byte{'P', 'K'}, w.Body.Bytes()[:2])
}
