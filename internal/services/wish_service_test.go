package services

import (
	"context"
	"testing"
	"time"

	"github.com/Kaanops/wishfulfill.github.io/internal/models"
	"github.com/Kaanops/wishfulfill.github.io/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWish() *models.Wish {
	return &models.Wish{
		Title:        "New bicycle",
		Description:  "Need a bicycle to get to work",
		AmountNeeded: 100,
		Currency:     "EUR",
		CreatorName:  "Anna",
		CreatorEmail: "anna@example.com",
		Category:     "Other",
	}
}

func TestCreateWishDefaults(t *testing.T) {
	svc := NewWishService(newFakeWishStore())

	input := validWish()
	input.Category = ""
	input.Urgency = ""
	// Client-supplied lifecycle fields must be ignored.
	input.Status = models.WishStatusFulfilled
	input.DonationsReceived = 9999
	input.DonorCount = 12
	input.PaymentStatus = models.PaymentStatusPaid

	created, err := svc.CreateWish(context.Background(), input)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)
	assert.Equal(t, models.WishStatusActive, created.Status)
	assert.Equal(t, 0.0, created.DonationsReceived)
	assert.Equal(t, 0, created.DonorCount)
	assert.Equal(t, 0.0, created.FulfillmentPercentage)
	assert.Equal(t, models.PaymentStatusPending, created.PaymentStatus)
	assert.Equal(t, "Other", created.Category)
	assert.Equal(t, models.UrgencyMedium, created.Urgency)
}

func TestCreateWishValidation(t *testing.T) {
	svc := NewWishService(newFakeWishStore())

	tests := []struct {
		name   string
		mutate func(*models.Wish)
	}{
		{"missing title", func(w *models.Wish) { w.Title = "" }},
		{"missing description", func(w *models.Wish) { w.Description = "" }},
		{"missing creator name", func(w *models.Wish) { w.CreatorName = "" }},
		{"missing creator email", func(w *models.Wish) { w.CreatorEmail = "" }},
		{"missing currency", func(w *models.Wish) { w.Currency = "" }},
		{"zero amount", func(w *models.Wish) { w.AmountNeeded = 0 }},
		{"negative amount", func(w *models.Wish) { w.AmountNeeded = -5 }},
		{"unknown category", func(w *models.Wish) { w.Category = "Gadgets" }},
		{"unknown urgency", func(w *models.Wish) { w.Urgency = "urgent" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validWish()
			tt.mutate(input)

			_, err := svc.CreateWish(context.Background(), input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestDonateRejectsNonPositiveAmounts(t *testing.T) {
	store := newFakeWishStore()
	svc := NewWishService(store)

	created, err := svc.CreateWish(context.Background(), validWish())
	require.NoError(t, err)

	_, err = svc.Donate(context.Background(), created.ID, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Donate(context.Background(), created.ID, -10)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDonateCreditsAndFulfills(t *testing.T) {
	store := newFakeWishStore()
	svc := NewWishService(store)

	created, err := svc.CreateWish(context.Background(), validWish())
	require.NoError(t, err)

	wish, err := svc.Donate(context.Background(), created.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, 25.0, wish.DonationsReceived)
	assert.Equal(t, 1, wish.DonorCount)
	assert.Equal(t, 25.0, wish.FulfillmentPercentage)
	assert.Equal(t, models.WishStatusActive, wish.Status)

	wish, err = svc.Donate(context.Background(), created.ID, 75)
	require.NoError(t, err)
	assert.Equal(t, 100.0, wish.DonationsReceived)
	assert.Equal(t, 100.0, wish.FulfillmentPercentage)
	assert.Equal(t, models.WishStatusFulfilled, wish.Status)
}

func TestGetWishNotFound(t *testing.T) {
	svc := NewWishService(newFakeWishStore())

	_, err := svc.GetWish(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListWishesFilters(t *testing.T) {
	store := newFakeWishStore()
	svc := NewWishService(store)
	ctx := context.Background()

	paid, err := svc.CreateWish(ctx, validWish())
	require.NoError(t, err)
	require.NoError(t, svc.ConfirmPostingFee(ctx, paid.ID))

	education := validWish()
	education.Category = "Education"
	eduWish, err := svc.CreateWish(ctx, education)
	require.NoError(t, err)
	require.NoError(t, svc.ConfirmPostingFee(ctx, eduWish.ID))

	// Unpaid wish, hidden from default listings.
	_, err = svc.CreateWish(ctx, validWish())
	require.NoError(t, err)

	paidOnly, err := svc.ListWishes(ctx, repository.WishFilter{
		Status:   models.WishStatusActive,
		PaidOnly: true,
	})
	require.NoError(t, err)
	assert.Len(t, paidOnly, 2)
	for _, w := range paidOnly {
		assert.Equal(t, models.PaymentStatusPaid, w.PaymentStatus)
	}

	eduOnly, err := svc.ListWishes(ctx, repository.WishFilter{
		Status:   models.WishStatusActive,
		Category: "Education",
		PaidOnly: true,
	})
	require.NoError(t, err)
	require.Len(t, eduOnly, 1)
	assert.Equal(t, "Education", eduOnly[0].Category)

	all, err := svc.ListWishes(ctx, repository.WishFilter{Status: models.WishStatusActive})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
