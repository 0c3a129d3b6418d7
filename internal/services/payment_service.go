package services

import (
	"context"
	"fmt"

	"github.com/Kaanops/wishfulfill.github.io/internal/gateway"
	"github.com/Kaanops/wishfulfill.github.io/internal/models"
	"github.com/Kaanops/wishfulfill.github.io/internal/repository"
	"github.com/Kaanops/wishfulfill.github.io/pkg/logger"
	"github.com/google/uuid"
)

// TransactionStore is the slice of the transaction repository the
// payment service depends on.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*models.Transaction, error)
	ClaimPending(ctx context.Context, paymentID, payerEmail string) (*models.Transaction, error)
	MarkFailed(ctx context.Context, paymentID string) error
}

// CreatePaymentInput describes a payment the client wants to start.
type CreatePaymentInput struct {
	Amount    float64
	Currency  string
	Purpose   string
	WishID    string
	ReturnURL string
	CancelURL string
}

// CreatePaymentOutput is returned to the client so it can redirect the
// payer to the provider's approval page.
type CreatePaymentOutput struct {
	PaymentID     string
	TransactionID string
	ApprovalURL   string
}

// ExecutePaymentOutput reports the result of finalizing a payment.
type ExecutePaymentOutput struct {
	Status        string
	PaymentID     string
	TransactionID string
}

// PaymentService drives the payment flow: initiate at the provider,
// record the transaction, and reconcile the linked wish once the
// provider confirms.
type PaymentService struct {
	gw     gateway.Gateway
	txns   TransactionStore
	wishes *WishService
}

func NewPaymentService(gw gateway.Gateway, txns TransactionStore, wishes *WishService) *PaymentService {
	return &PaymentService{
		gw:     gw,
		txns:   txns,
		wishes: wishes,
	}
}

// CreatePayment initiates a hosted payment and records a pending
// transaction. For posting fees the amount is always the fixed fee, no
// matter what the client sent.
func (s *PaymentService) CreatePayment(ctx context.Context, in CreatePaymentInput) (*CreatePaymentOutput, error) {
	var description string
	switch in.Purpose {
	case models.PurposePostingFee:
		// Trust boundary: the fee is ours to set, not the client's.
		in.Amount = gateway.PostingFeeAmount
		description = "Wish posting fee"
	case models.PurposeDonation:
		if in.Amount <= 0 {
			return nil, fmt.Errorf("%w: donation amount must be positive", ErrValidation)
		}
		description = "Donation"
	default:
		return nil, fmt.Errorf("%w: unknown purpose %q", ErrValidation, in.Purpose)
	}

	if in.Currency == "" {
		return nil, fmt.Errorf("%w: currency is required", ErrValidation)
	}
	if in.ReturnURL == "" || in.CancelURL == "" {
		return nil, fmt.Errorf("%w: return_url and cancel_url are required", ErrValidation)
	}

	if in.WishID != "" {
		wish, err := s.wishes.GetWish(ctx, in.WishID)
		if err != nil {
			return nil, err
		}
		if in.Purpose == models.PurposeDonation {
			description = fmt.Sprintf("Donation to wish: %s", wish.Title)
		}
	}

	created, err := s.gw.CreatePayment(ctx, gateway.CreatePaymentRequest{
		Amount:      in.Amount,
		Currency:    in.Currency,
		Description: description,
		ReturnURL:   in.ReturnURL,
		CancelURL:   in.CancelURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	txn, err := s.txns.CreateTransaction(ctx, &models.Transaction{
		ID:        uuid.NewString(),
		PaymentID: created.PaymentID,
		Amount:    in.Amount,
		Currency:  in.Currency,
		Purpose:   in.Purpose,
		WishID:    in.WishID,
		Status:    models.TransactionPending,
	})
	if err != nil {
		return nil, err
	}

	return &CreatePaymentOutput{
		PaymentID:     created.PaymentID,
		TransactionID: txn.ID,
		ApprovalURL:   created.ApprovalURL,
	}, nil
}

// ExecutePayment finalizes an approved payment and applies its effect
// to the linked wish. The transaction claim is a single atomic update
// keyed on the payment id, so each completion is processed exactly
// once; repeated execute calls return ErrAlreadyProcessed instead of
// crediting the wish twice.
func (s *PaymentService) ExecutePayment(ctx context.Context, paymentID, payerID string) (*ExecutePaymentOutput, error) {
	// Reject unknown or already-settled payments before touching the
	// provider, so retries never reach PayPal a second time.
	existing, err := s.txns.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if existing.Status != models.TransactionPending {
		return nil, repository.ErrAlreadyProcessed
	}

	payerEmail, err := s.gw.ExecutePayment(ctx, paymentID, payerID)
	if err != nil {
		if markErr := s.txns.MarkFailed(ctx, paymentID); markErr != nil {
			logger.Log.WithError(markErr).WithField("payment_id", paymentID).
				Error("Failed to record failed execution")
		}
		return nil, fmt.Errorf("execute payment: %w", err)
	}

	txn, err := s.txns.ClaimPending(ctx, paymentID, payerEmail)
	if err != nil {
		// Lost the claim race: the winner applies the wish effect.
		return nil, err
	}

	if err := s.reconcile(ctx, txn); err != nil {
		// The provider settled but the wish update failed. There is no
		// compensating action; surface the divergence to the caller.
		logger.Log.WithError(err).WithFields(map[string]interface{}{
			"payment_id":     paymentID,
			"transaction_id": txn.ID,
		}).Error("Reconciliation failed after completed payment")
		return nil, fmt.Errorf("reconcile transaction %s: %w", txn.ID, err)
	}

	return &ExecutePaymentOutput{
		Status:        txn.Status,
		PaymentID:     txn.PaymentID,
		TransactionID: txn.ID,
	}, nil
}

// reconcile applies a completed transaction's effect to its linked
// wish, if any.
func (s *PaymentService) reconcile(ctx context.Context, txn *models.Transaction) error {
	if txn.WishID == "" {
		return nil
	}

	switch txn.Purpose {
	case models.PurposePostingFee:
		return s.wishes.ConfirmPostingFee(ctx, txn.WishID)
	case models.PurposeDonation:
		_, err := s.wishes.Donate(ctx, txn.WishID, txn.Amount)
		return err
	}
	return nil
}

// GetPaymentStatus returns the transaction recorded for a provider
// payment id.
func (s *PaymentService) GetPaymentStatus(ctx context.Context, paymentID string) (*models.Transaction, error) {
	return s.txns.GetByPaymentID(ctx, paymentID)
}

// GatewayName reports which payment backend is active.
func (s *PaymentService) GatewayName() string {
	return s.gw.Name()
}
