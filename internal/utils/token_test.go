package utils

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func TestGenerateToken(t *testing.T) {
	tokenString, err := GenerateToken(1, "USER")

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, float64(1), claims["user_id"])
	assert.Equal(t, "USER", claims["role"])

	exp, ok := claims["exp"].(float64)
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(TokenLifetime), time.Unix(int64(exp), 0), 5*time.Second)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	_, err := ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": float64(1),
		"role":    "USER",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": float64(1),
		"role":    "USER",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("other-secret"))
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_InvalidSigningMethod(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": float64(1),
		"role":    "USER",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}
