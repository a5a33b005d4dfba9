package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"rechargehub-backend/internal/api/v1/auth"
	"rechargehub-backend/internal/database"
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

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)
	return r
}

func TestRegister(t *testing.T) {
	setupTestDB()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:           "Valid Registration",
			body:           `{"name":"Ravi Kumar","phoneNumber":"9812345670","email":"ravi@example.com","password":"Secret12"}`,
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, body []byte) {
				var resp struct {
					Data auth.AuthResponse `json:"data"`
				}
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.NotEmpty(t, resp.Data.Token)
				assert.Equal(t, "9812345670", resp.Data.User.PhoneNumber)
				assert.Equal(t, models.RoleUser, resp.Data.User.Role)
				assert.NotContains(t, string(body), "Secret12")

				// The issued token must resolve
				claims, err := utils.ValidateToken(resp.Data.Token)
				assert.NoError(t, err)
				assert.Equal(t, models.RoleUser, claims["role"])
			},
		},
		{
			name:           "Duplicate Phone",
			body:           `{"name":"Ravi Clone","phoneNumber":"9812345670","email":"clone@example.com","password":"Secret12"}`,
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "already registered")
			},
		},
		{
			name:           "Invalid Phone",
			body:           `{"name":"Bad Phone","phoneNumber":"12345","email":"bad@example.com","password":"Secret12"}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name:           "Weak Password",
			body:           `{"name":"Weak Pass","phoneNumber":"9812345671","email":"weak@example.com","password":"abc"}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name:           "Missing Fields",
			body:           `{"phoneNumber":"9812345672"}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name:           "Malformed JSON",
			body:           `{not json}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse:  nil,
		},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w.Body.Bytes())
			}
		})
	}
}

func TestLogin(t *testing.T) {
	setupTestDB()

	_, err := services.RegisterUser("Ravi Kumar", "9812345670", "ravi@example.com", "Secret12")
	assert.NoError(t, err)

	r := newAuthRouter()

	doLogin := func(body string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Correct Credentials", func(t *testing.T) {
		w := doLogin(`{"phoneNumber":"9812345670","password":"Secret12"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data auth.AuthResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data.Token)
	})

	t.Run("Enumeration Resistance", func(t *testing.T) {
		// Unknown phone and wrong password must be indistinguishable
		wUnknown := doLogin(`{"phoneNumber":"9899999999","password":"Secret12"}`)
		wWrongPass := doLogin(`{"phoneNumber":"9812345670","password":"WrongPass1"}`)

		assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wWrongPass.Code)
		assert.Equal(t, wUnknown.Body.String(), wWrongPass.Body.String())
	})
}
