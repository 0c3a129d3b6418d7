package models

import (
	"time"
)

// Payment purposes.
const (
	PurposePostingFee = "posting_fee"
	PurposeDonation   = "donation"
)

// Transaction statuses.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
)

// Transaction records one payment-gateway interaction. WishID links it
// to a wish by value; PayerEmail is filled in after execution.
type Transaction struct {
	ID         string    `bson:"id" json:"id"`
	PaymentID  string    `bson:"payment_id" json:"payment_id"`
	Amount     float64   `bson:"amount" json:"amount"`
	Currency   string    `bson:"currency" json:"currency"`
	Purpose    string    `bson:"purpose" json:"purpose"`
	WishID     string    `bson:"wish_id,omitempty" json:"wish_id,omitempty"`
	PayerEmail string    `bson:"payer_email,omitempty" json:"payer_email,omitempty"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
