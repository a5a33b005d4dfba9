package models

import "time"

const (
	PaymentMethodUPI    = "UPI"
	PaymentMethodCard   = "CARD"
	PaymentMethodWallet = "WALLET"
)

const (
	RechargeStatusSuccess = "Success"
	RechargeStatusFailed  = "Failed"
)

// Recharge is an insert-only ledger row. Plan fields are snapshotted at
// purchase time; payment details are stored redacted (last 4 card digits
// at most, never a CVV).
type Recharge struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`

	// Plan snapshot at purchase time
	PlanName string `gorm:"not null" json:"plan_name"`
	Amount   int    `gorm:"not null" json:"amount"`
	Validity string `json:"validity"`
	Data     string `json:"data"`

	PhoneNumber   string `gorm:"not null" json:"phone_number"`
	PaymentMethod string `gorm:"not null" json:"payment_method"`
	UPIID         string `json:"upi_id,omitempty"`
	CardLast4     string `json:"card_last4,omitempty"`
	CardName      string `json:"card_name,omitempty"`
	Status        string `gorm:"not null;default:'Success'" json:"status"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
