package recharge

import "rechargehub-backend/internal/models"

// PaymentDetails carries whatever the chosen payment method needs. Card
// fields are redacted before anything is stored; the CVV is dropped
// entirely.
type PaymentDetails struct {
	UPIID      string `json:"upiId,omitempty"`
	CardNumber string `json:"cardNumber,omitempty"`
	CardName   string `json:"cardName,omitempty"`
	CardCVV    string `json:"cardCvv,omitempty"`
}

type CreateRechargeInput struct {
	PlanName       string         `json:"planName" binding:"required"`
	Amount         int            `json:"amount" binding:"required"`
	Validity       string         `json:"validity"`
	Data           string         `json:"data"`
	PhoneNumber    string         `json:"phoneNumber" binding:"required"`
	PaymentMethod  string         `json:"paymentMethod" binding:"required,oneof=UPI CARD WALLET"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
}

type RechargeResponse struct {
	Recharge models.Recharge `json:"recharge"`
}

type RechargeListResponse struct {
	Recharges []models.Recharge `json:"recharges"`
}
