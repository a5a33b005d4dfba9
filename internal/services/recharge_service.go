package services

import (
	"errors"
	"time"

	"rechargehub-backend/internal/database"
	"rechargehub-backend/internal/models"
)

var (
	ErrInvalidAmount        = errors.New("amount must be a positive amount")
	ErrInvalidPaymentMethod = errors.New("payment method must be UPI, CARD or WALLET")
)

// RechargeInput carries the submitted plan snapshot and the raw payment
// details. The card number and CVV never reach storage: only the last 4
// digits of the card survive redaction.
type RechargeInput struct {
	PlanName      string
	Amount        int
	Validity      string
	Data          string
	PhoneNumber   string
	PaymentMethod string
	UPIID         string
	CardNumber    string
	CardName      string
	CardCVV       string
}

func lastFourDigits(cardNumber string) string {
	digits := make([]rune, 0, len(cardNumber))
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}

// CreateRecharge appends one immutable ledger row for the given user.
func CreateRecharge(userID uint, input RechargeInput) (*models.Recharge, error) {
	if err := ValidatePhoneNumber(input.PhoneNumber); err != nil {
		return nil, err
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	switch input.PaymentMethod {
	case models.PaymentMethodUPI, models.PaymentMethodCard, models.PaymentMethodWallet:
	default:
		return nil, ErrInvalidPaymentMethod
	}

	recharge := &models.Recharge{
		UserID:        userID,
		PlanName:      input.PlanName,
		Amount:        input.Amount,
		Validity:      input.Validity,
		Data:          input.Data,
		PhoneNumber:   input.PhoneNumber,
		PaymentMethod: input.PaymentMethod,
		Status:        models.RechargeStatusSuccess,
	}

	switch input.PaymentMethod {
	case models.PaymentMethodUPI:
		recharge.UPIID = input.UPIID
	case models.PaymentMethodCard:
		recharge.CardLast4 = lastFourDigits(input.CardNumber)
		recharge.CardName = input.CardName
	}

	if err := database.DB.Create(recharge).Error; err != nil {
		return nil, err
	}

	return recharge, nil
}

// FindRechargesForUser returns the caller's own records, most recent first.
func FindRechargesForUser(userID uint) ([]models.Recharge, error) {
	var recharges []models.Recharge
	err := database.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recharges).Error
	if err != nil {
		return nil, err
	}
	return recharges, nil
}

// FindAllRecharges returns every ledger row across users, most recent first.
func FindAllRecharges() ([]models.Recharge, error) {
	var recharges []models.Recharge
	if err := database.DB.Order("created_at desc").Find(&recharges).Error; err != nil {
		return nil, err
	}
	return recharges, nil
}

// MethodStat aggregates the ledger per payment method.
type MethodStat struct {
	Method  string `json:"method"`
	Count   int64  `json:"count"`
	Revenue int64  `json:"revenue"`
}

// MonthlyStat aggregates revenue per calendar month ("2006-01" keys).
type MonthlyStat struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// DashboardStats is a derived view over the ledger, recomputed on demand.
type DashboardStats struct {
	TotalUsers      int64         `json:"totalUsers"`
	TotalRecharges  int64         `json:"totalRecharges"`
	TotalRevenue    int64         `json:"totalRevenue"`
	RecentRecharges int64         `json:"recentRecharges"`
	ByMethod        []MethodStat  `json:"byMethod"`
	MonthlyRevenue  []MonthlyStat `json:"monthlyRevenue"`
}

// ComputeDashboardStats rolls the ledger up into the admin dashboard view.
func ComputeDashboardStats() (*DashboardStats, error) {
	totalUsers, err := CountUsers()
	if err != nil {
		return nil, err
	}

	recharges, err := FindAllRecharges()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalUsers:     totalUsers,
		TotalRecharges: int64(len(recharges)),
		ByMethod:       []MethodStat{},
		MonthlyRevenue: []MonthlyStat{},
	}

	recentCutoff := time.Now().AddDate(0, 0, -7)
	methodIndex := make(map[string]int)
	monthIndex := make(map[string]int)

	for _, r := range recharges {
		stats.TotalRevenue += int64(r.Amount)
		if r.CreatedAt.After(recentCutoff) {
			stats.RecentRecharges++
		}

		mi, ok := methodIndex[r.PaymentMethod]
		if !ok {
			mi = len(stats.ByMethod)
			methodIndex[r.PaymentMethod] = mi
			stats.ByMethod = append(stats.ByMethod, MethodStat{Method: r.PaymentMethod})
		}
		stats.ByMethod[mi].Count++
		stats.ByMethod[mi].Revenue += int64(r.Amount)

		month := r.CreatedAt.Format("2006-01")
		oi, ok := monthIndex[month]
		if !ok {
			oi = len(stats.MonthlyRevenue)
			monthIndex[month] = oi
			stats.MonthlyRevenue = append(stats.MonthlyRevenue, MonthlyStat{Month: month})
		}
		stats.MonthlyRevenue[oi].Revenue += int64(r.Amount)
	}

	return stats, nil
}
