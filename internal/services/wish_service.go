package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Kaanops/wishfulfill.github.io/internal/models"
	"github.com/Kaanops/wishfulfill.github.io/internal/repository"
	"github.com/google/uuid"
)

// WishStore is the slice of the wish repository the services depend on.
type WishStore interface {
	CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error)
	GetWishByID(ctx context.Context, id string) (*models.Wish, error)
	ListWishes(ctx context.Context, f repository.WishFilter) ([]models.Wish, error)
	MarkPostingFeePaid(ctx context.Context, id string) error
	CreditDonation(ctx context.Context, id string, amount float64) (*models.Wish, error)
	Stats(ctx context.Context) (*repository.WishStats, error)
}

// WishService owns wish lifecycle rules: creation defaults and
// validation, listing, and the donation/fee effects.
type WishService struct {
	repo WishStore
}

func NewWishService(repo WishStore) *WishService {
	return &WishService{repo: repo}
}

// CreateWish validates the submission, stamps identity and lifecycle
// defaults, and persists it. Client-supplied lifecycle fields are
// always overwritten.
func (s *WishService) CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error) {
	if wish.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if wish.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if wish.CreatorName == "" {
		return nil, fmt.Errorf("%w: creator_name is required", ErrValidation)
	}
	if wish.CreatorEmail == "" {
		return nil, fmt.Errorf("%w: creator_email is required", ErrValidation)
	}
	if wish.AmountNeeded <= 0 {
		return nil, fmt.Errorf("%w: amount_needed must be positive", ErrValidation)
	}
	if wish.Currency == "" {
		return nil, fmt.Errorf("%w: currency is required", ErrValidation)
	}

	if wish.Category == "" {
		wish.Category = "Other"
	} else if !models.ValidCategory(wish.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, wish.Category)
	}

	switch wish.Urgency {
	case "":
		wish.Urgency = models.UrgencyMedium
	case models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh:
	default:
		return nil, fmt.Errorf("%w: unknown urgency %q", ErrValidation, wish.Urgency)
	}

	wish.ID = uuid.NewString()
	wish.CreatedAt = time.Now().UTC()
	wish.Status = models.WishStatusActive
	wish.DonationsReceived = 0
	wish.DonorCount = 0
	wish.FulfillmentPercentage = 0
	wish.PaymentStatus = models.PaymentStatusPending

	return s.repo.CreateWish(ctx, wish)
}

func (s *WishService) GetWish(ctx context.Context, id string) (*models.Wish, error) {
	return s.repo.GetWishByID(ctx, id)
}

func (s *WishService) ListWishes(ctx context.Context, f repository.WishFilter) ([]models.Wish, error) {
	return s.repo.ListWishes(ctx, f)
}

// ConfirmPostingFee marks the wish's posting fee as settled, which
// makes it visible in default listings.
func (s *WishService) ConfirmPostingFee(ctx context.Context, id string) error {
	return s.repo.MarkPostingFeePaid(ctx, id)
}

// Donate credits a donation to the wish. Amounts must be positive.
func (s *WishService) Donate(ctx context.Context, id string, amount float64) (*models.Wish, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: donation amount must be positive", ErrValidation)
	}
	return s.repo.CreditDonation(ctx, id, amount)
}
