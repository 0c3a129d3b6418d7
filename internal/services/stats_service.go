package services

import (
	"context"
	"time"

	"github.com/Kaanops/wishfulfill.github.io/internal/gateway"
	"github.com/Kaanops/wishfulfill.github.io/internal/models"
	"github.com/google/uuid"
)

// StoryStore is the slice of the story repository the stats service
// depends on.
type StoryStore interface {
	SeedIfEmpty(ctx context.Context, stories []models.SuccessStory) error
	ListStories(ctx context.Context) ([]models.SuccessStory, error)
}

// Demo offsets blended into the live statistics so a freshly deployed
// platform does not look abandoned. Kept from the launch configuration.
const (
	demoWishesOffset    = 127
	demoFulfilledOffset = 89
	demoRaisedOffset    = 45230.50
)

// Statistics is the aggregate snapshot served by /statistics.
type Statistics struct {
	TotalWishes     int64   `json:"total_wishes"`
	WishesFulfilled int64   `json:"wishes_fulfilled"`
	TotalRaised     float64 `json:"total_raised"`
	SuccessRate     float64 `json:"success_rate"`
	PostingFee      float64 `json:"posting_fee"`
}

// StatsService serves the aggregate statistics and the seeded success
// stories.
type StatsService struct {
	wishes  WishStore
	stories StoryStore
}

func NewStatsService(wishes WishStore, stories StoryStore) *StatsService {
	return &StatsService{wishes: wishes, stories: stories}
}

// GetStatistics blends the live wish aggregates with the fixed demo
// offsets.
func (s *StatsService) GetStatistics(ctx context.Context) (*Statistics, error) {
	live, err := s.wishes.Stats(ctx)
	if err != nil {
		return nil, err
	}

	total := live.Total + demoWishesOffset
	fulfilled := live.Fulfilled + demoFulfilledOffset

	var rate float64
	if total > 0 {
		rate = float64(fulfilled) / float64(total) * 100
	}

	return &Statistics{
		TotalWishes:     total,
		WishesFulfilled: fulfilled,
		TotalRaised:     live.TotalRaised + demoRaisedOffset,
		SuccessRate:     rate,
		PostingFee:      gateway.PostingFeeAmount,
	}, nil
}

func (s *StatsService) GetSuccessStories(ctx context.Context) ([]models.SuccessStory, error) {
	return s.stories.ListStories(ctx)
}

// SeedDemoData inserts the demo success stories on first startup.
func (s *StatsService) SeedDemoData(ctx context.Context) error {
	return s.stories.SeedIfEmpty(ctx, DemoSuccessStories())
}

// DemoSuccessStories builds the testimonial records seeded into an
// empty success_stories collection.
func DemoSuccessStories() []models.SuccessStory {
	return []models.SuccessStory{
		{
			ID:              uuid.NewString(),
			Title:           "New wheelchair for Elena",
			Description:     "Elena's old wheelchair broke down and her family could not afford a replacement. 43 strangers covered the full cost in nine days.",
			AmountFulfilled: 2850,
			DonorCount:      43,
			PhotoURL:        "https://images.unsplash.com/photo-1559757148-5c350d0d3c56",
			Category:        "Medical",
			FulfilledAt:     time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              uuid.NewString(),
			Title:           "Laptop for a first-generation student",
			Description:     "Marco got into university but had no computer for his coursework. His wish was fulfilled within two weeks.",
			AmountFulfilled: 680,
			DonorCount:      21,
			PhotoURL:        "https://images.unsplash.com/photo-1517336714731-489689fd1ca8",
			Category:        "Education",
			FulfilledAt:     time.Date(2024, time.October, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              uuid.NewString(),
			Title:           "Rebuilding after the flood",
			Description:     "The Kovacs family lost their kitchen to flooding. Donors from twelve countries helped them rebuild it.",
			AmountFulfilled: 4100,
			DonorCount:      87,
			PhotoURL:        "https://images.unsplash.com/photo-1570050785780-3c79854c7813",
			Category:        "Emergency",
			FulfilledAt:     time.Date(2024, time.August, 27, 0, 0, 0, 0, time.UTC),
		},
	}
}
