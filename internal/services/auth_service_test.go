package services

import (
	"os"
	"testing"

	"rechargehub-backend/internal/database"
	"rechargehub-backend/internal/models"
	"rechargehub-backend/internal/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Plan{}, &models.Recharge{})

	err = db.AutoMigrate(&models.User{}, &models.Plan{}, &models.Recharge{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func TestRegisterUser(t *testing.T) {
	setupTestDB()

	tests := []struct {
		name        string
		userName    string
		phoneNumber string
		email       string
		password    string
		wantErr     error
	}{
		{
			name:        "Valid Registration",
			userName:    "Ravi Kumar",
			phoneNumber: "9812345670",
			email:       "ravi@example.com",
			password:    "Secret12",
			wantErr:     nil,
		},
		{
			name:        "Duplicate Phone",
			userName:    "Ravi Clone",
			phoneNumber: "9812345670",
			email:       "clone@example.com",
			password:    "Secret12",
			wantErr:     ErrPhoneAlreadyRegistered,
		},
		{
			name:        "Phone Too Short",
			userName:    "Short Phone",
			phoneNumber: "98123",
			email:       "short@example.com",
			password:    "Secret12",
			wantErr:     ErrInvalidPhoneNumber,
		},
		{
			name:        "Phone Wrong Leading Digit",
			userName:    "Bad Lead",
			phoneNumber: "1812345670",
			email:       "lead@example.com",
			password:    "Secret12",
			wantErr:     ErrInvalidPhoneNumber,
		},
		{
			name:        "Password Too Short",
			userName:    "Weak Pass",
			phoneNumber: "9812345671",
			email:       "weak@example.com",
			password:    "Ab1",
			wantErr:     ErrWeakPassword,
		},
		{
			name:        "Password No Digit",
			userName:    "No Digit",
			phoneNumber: "9812345672",
			email:       "nodigit@example.com",
			password:    "Abcdefgh",
			wantErr:     ErrWeakPassword,
		},
		{
			name:        "Password No Upper Case",
			userName:    "No Upper",
			phoneNumber: "9812345673",
			email:       "noupper@example.com",
			password:    "abcdefg1",
			wantErr:     ErrWeakPassword,
		},
		{
			name:        "Invalid Name",
			userName:    "X",
			phoneNumber: "9812345674",
			email:       "x@example.com",
			password:    "Secret12",
			wantErr:     ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := RegisterUser(tt.userName, tt.phoneNumber, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, user)
			assert.Equal(t, models.RoleUser, user.Role)
			assert.NotEqual(t, tt.password, user.Password)

			// Hash must be stored, never the plaintext
			var stored models.User
			assert.NoError(t, database.DB.Where("phone_number = ?", tt.phoneNumber).First(&stored).Error)
			assert.NotContains(t, stored.Password, tt.password)
		})
	}
}

func TestLoginUser(t *testing.T) {
	setupTestDB()

	_, err := RegisterUser("Ravi Kumar", "9812345670", "ravi@example.com", "Secret12")
	assert.NoError(t, err)

	t.Run("Correct Credentials", func(t *testing.T) {
		token, user, err := LoginUser("9812345670", "Secret12")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotNil(t, user)
		assert.Equal(t, "9812345670", user.PhoneNumber)

		claims, err := utils.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "USER", claims["role"])
	})

	t.Run("Wrong Password", func(t *testing.T) {
		token, user, err := LoginUser("9812345670", "WrongPass1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("Unknown Phone Same Error", func(t *testing.T) {
		_, _, errUnknown := LoginUser("9899999999", "Secret12")
		_, _, errWrongPass := LoginUser("9812345670", "WrongPass1")
		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.Equal(t, errWrongPass, errUnknown)
	})
}
