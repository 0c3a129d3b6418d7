package models

import (
	"time"
)

// Wish lifecycle statuses.
const (
	WishStatusActive    = "active"
	WishStatusFulfilled = "fulfilled"
	WishStatusCancelled = "cancelled"
)

// Posting-fee payment statuses on a wish.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Wish is a funding request. ID is an application-generated UUID,
// independent of the MongoDB _id.
type Wish struct {
	ID                    string    `bson:"id" json:"id"`
	Title                 string    `bson:"title" json:"title"`
	Description           string    `bson:"description" json:"description"`
	AmountNeeded          float64   `bson:"amount_needed" json:"amount_needed"`
	Currency              string    `bson:"currency" json:"currency"`
	CreatorName           string    `bson:"creator_name" json:"creator_name"`
	CreatorEmail          string    `bson:"creator_email" json:"creator_email"`
	CreatorPaypal         string    `bson:"creator_paypal,omitempty" json:"creator_paypal,omitempty"`
	Category              string    `bson:"category,omitempty" json:"category"`
	Urgency               string    `bson:"urgency,omitempty" json:"urgency"`
	PhotoURL              string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	CreatedAt             time.Time `bson:"created_at" json:"created_at"`
	Status                string    `bson:"status" json:"status"`
	DonationsReceived     float64   `bson:"donations_received" json:"donations_received"`
	DonorCount            int       `bson:"donor_count" json:"donor_count"`
	FulfillmentPercentage float64   `bson:"-" json:"fulfillment_percentage"`
	PaymentStatus         string    `bson:"payment_status,omitempty" json:"payment_status"`
}

// Normalize fills defaults for records written before the schema grew
// these fields, and recomputes the derived fulfillment percentage. The
// repository applies it on every decode so the rest of the code never
// sees a partial record.
func (w *Wish) Normalize() {
	if w.Category == "" {
		w.Category = "Other"
	}
	if w.Urgency == "" {
		w.Urgency = UrgencyMedium
	}
	if w.PaymentStatus == "" {
		w.PaymentStatus = PaymentStatusPending
	}
	if w.Status == "" {
		w.Status = WishStatusActive
	}
	w.FulfillmentPercentage = FulfillmentPercentage(w.DonationsReceived, w.AmountNeeded)
}

// ApplyDonation credits amount to the wish and flips it to fulfilled
// once the target is reached.
func (w *Wish) ApplyDonation(amount float64) {
	w.DonationsReceived += amount
	w.DonorCount++
	w.FulfillmentPercentage = FulfillmentPercentage(w.DonationsReceived, w.AmountNeeded)
	if w.FulfillmentPercentage >= 100 {
		w.Status = WishStatusFulfilled
	}
}

// FulfillmentPercentage computes received/needed as a percentage capped
// at 100. Needed is assumed positive; a non-positive value yields 0.
func FulfillmentPercentage(received, needed float64) float64 {
	if needed <= 0 {
		return 0
	}
	pct := received / needed * 100
	if pct > 100 {
		return 100
	}
	return pct
}
