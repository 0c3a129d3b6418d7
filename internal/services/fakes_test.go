package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Kaanops/wishfulfill.github.io/internal/gateway"
	"github.com/Kaanops/wishfulfill.github.io/internal/models"
	"github.com/Kaanops/wishfulfill.github.io/internal/repository"
)

// fakeWishStore is an in-memory WishStore mirroring the repository's
// behavior, including the donation credit and fulfilled flip.
type fakeWishStore struct {
	wishes     map[string]*models.Wish
	lastFilter repository.WishFilter
}

func newFakeWishStore() *fakeWishStore {
	return &fakeWishStore{wishes: make(map[string]*models.Wish)}
}

func (f *fakeWishStore) CreateWish(_ context.Context, wish *models.Wish) (*models.Wish, error) {
	stored := *wish
	f.wishes[wish.ID] = &stored
	out := stored
	out.Normalize()
	return &out, nil
}

func (f *fakeWishStore) GetWishByID(_ context.Context, id string) (*models.Wish, error) {
	wish, ok := f.wishes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *wish
	out.Normalize()
	return &out, nil
}

func (f *fakeWishStore) ListWishes(_ context.Context, filter repository.WishFilter) ([]models.Wish, error) {
	f.lastFilter = filter

	var result []models.Wish
	for _, w := range f.wishes {
		out := *w
		out.Normalize()
		if filter.Status != "" && out.Status != filter.Status {
			continue
		}
		if filter.Category != "" && out.Category != filter.Category {
			continue
		}
		if filter.Urgency != "" && out.Urgency != filter.Urgency {
			continue
		}
		if filter.PaidOnly && out.PaymentStatus != models.PaymentStatusPaid {
			continue
		}
		result = append(result, out)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeWishStore) MarkPostingFeePaid(_ context.Context, id string) error {
	wish, ok := f.wishes[id]
	if !ok {
		return repository.ErrNotFound
	}
	wish.PaymentStatus = models.PaymentStatusPaid
	return nil
}

func (f *fakeWishStore) CreditDonation(_ context.Context, id string, amount float64) (*models.Wish, error) {
	wish, ok := f.wishes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	wish.DonationsReceived += amount
	wish.DonorCount++
	wish.Normalize()
	if wish.FulfillmentPercentage >= 100 && wish.Status == models.WishStatusActive {
		wish.Status = models.WishStatusFulfilled
	}
	out := *wish
	return &out, nil
}

func (f *fakeWishStore) Stats(_ context.Context) (*repository.WishStats, error) {
	stats := &repository.WishStats{}
	for _, w := range f.wishes {
		stats.Total++
		if w.Status == models.WishStatusFulfilled {
			stats.Fulfilled++
		}
		stats.TotalRaised += w.DonationsReceived
	}
	return stats, nil
}

// fakeTxnStore is an in-memory TransactionStore keyed by payment id.
type fakeTxnStore struct {
	txns map[string]*models.Transaction
}

func newFakeTxnStore() *fakeTxnStore {
	return &fakeTxnStore{txns: make(map[string]*models.Transaction)}
}

func (f *fakeTxnStore) CreateTransaction(_ context.Context, txn *models.Transaction) (*models.Transaction, error) {
	stored := *txn
	f.txns[txn.PaymentID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeTxnStore) GetByPaymentID(_ context.Context, paymentID string) (*models.Transaction, error) {
	txn, ok := f.txns[paymentID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *txn
	return &out, nil
}

func (f *fakeTxnStore) ClaimPending(_ context.Context, paymentID, payerEmail string) (*models.Transaction, error) {
	txn, ok := f.txns[paymentID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if txn.Status != models.TransactionPending {
		return nil, repository.ErrAlreadyProcessed
	}
	txn.Status = models.TransactionCompleted
	txn.PayerEmail = payerEmail
	out := *txn
	return &out, nil
}

func (f *fakeTxnStore) MarkFailed(_ context.Context, paymentID string) error {
	txn, ok := f.txns[paymentID]
	if !ok {
		return repository.ErrNotFound
	}
	txn.Status = models.TransactionFailed
	return nil
}

// fakeGateway records calls and answers deterministically.
type fakeGateway struct {
	createCalls  []gateway.CreatePaymentRequest
	executeCalls int
	failExecute  bool
	nextID       int
}

func (f *fakeGateway) Name() string { return "fake" }

func (f *fakeGateway) CreatePayment(_ context.Context, req gateway.CreatePaymentRequest) (*gateway.CreatePaymentResult, error) {
	f.createCalls = append(f.createCalls, req)
	f.nextID++
	id := fmt.Sprintf("PAY-%d", f.nextID)
	return &gateway.CreatePaymentResult{
		PaymentID:   id,
		ApprovalURL: "https://provider.example.com/approve/" + id,
	}, nil
}

func (f *fakeGateway) ExecutePayment(_ context.Context, paymentID, payerID string) (string, error) {
	f.executeCalls++
	if f.failExecute {
		return "", &gateway.Error{StatusCode: 400, Body: "PAYMENT_ALREADY_DONE"}
	}
	return payerID + "@example.com", nil
}
