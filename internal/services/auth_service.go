package services

import (
	"errors"
	"regexp"
	"unicode"

	"rechargehub-backend/internal/database"
	"rechargehub-backend/internal/models"
	"rechargehub-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPhoneAlreadyRegistered = errors.New("phone number is already registered")
	ErrInvalidPhoneNumber     = errors.New("phone number must be 10 digits starting with 6-9")
	ErrInvalidName            = errors.New("name must be 2-50 letters and spaces")
	ErrWeakPassword           = errors.New("password must be at least 6 characters with upper and lower case letters and a digit")
	ErrInvalidCredentials     = errors.New("invalid phone number or password")
)

var (
	phoneRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	nameRegex  = regexp.MustCompile(`^[a-zA-Z ]+$`)
)

// dummyHash is compared against when the phone number is unknown so that
// login latency does not reveal whether an account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("rechargehub-dummy"), bcrypt.DefaultCost)

func ValidatePhoneNumber(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return ErrInvalidPhoneNumber
	}
	return nil
}

func validateName(name string) error {
	if len(name) < 2 || len(name) > 50 || !nameRegex.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}

// RegisterUser creates a new account. Phone uniqueness is backed by a unique
// index, so concurrent registrations with the same number cannot both succeed;
// the pre-check only exists to give the common case a clean error.
func RegisterUser(name, phoneNumber, email, password string) (*models.User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := ValidatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	var existing models.User
	result := database.DB.Where("phone_number = ?", phoneNumber).First(&existing)
	if result.Error == nil {
		return nil, ErrPhoneAlreadyRegistered
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:        name,
		PhoneNumber: phoneNumber,
		Email:       email,
		Password:    string(hashedPassword),
		Role:        models.RoleUser,
	}

	if err := database.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPhoneAlreadyRegistered
		}
		return nil, err
	}

	return user, nil
}

// LoginUser authenticates by phone number and password. Unknown numbers and
// wrong passwords return the same error.
func LoginUser(phoneNumber, password string) (string, *models.User, error) {
	var user models.User
	if err := database.DB.Where("phone_number = ?", phoneNumber).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn a comparison so timing matches the wrong-password path
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
