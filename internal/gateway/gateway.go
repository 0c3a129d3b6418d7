// Package gateway wraps the external payment provider used to collect
// posting fees and donations.
package gateway

import (
	"context"
	"fmt"
)

// PostingFeeAmount is the fixed fee charged to publish a wish. The
// client never gets to choose it.
const PostingFeeAmount = 2.0

// CreatePaymentRequest describes a hosted payment to initiate.
type CreatePaymentRequest struct {
	Amount      float64
	Currency    string
	Description string
	ReturnURL   string
	CancelURL   string
}

// CreatePaymentResult is the provider's answer: its payment id and the
// URL to redirect the payer to for approval.
type CreatePaymentResult struct {
	PaymentID   string
	ApprovalURL string
}

// Gateway is the payment provider surface the rest of the system
// depends on.
type Gateway interface {
	// Name identifies the active backend, reported by /health.
	Name() string
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResult, error)
	// ExecutePayment finalizes an approved payment and returns the
	// payer's email address.
	ExecutePayment(ctx context.Context, paymentID, payerID string) (string, error)
}

// Error is returned when the provider rejects a request.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("payment gateway error %d: %s", e.StatusCode, e.Body)
}
