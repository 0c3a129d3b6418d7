package services

import (
	"context"
	"testing"
	"time"

	"github.com/Kaanops/wishfulfill.github.io/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStoryStore struct {
	stories []models.SuccessStory
	seeds   int
}

func (f *fakeStoryStore) SeedIfEmpty(_ context.Context, stories []models.SuccessStory) error {
	f.seeds++
	if len(f.stories) == 0 {
		f.stories = stories
	}
	return nil
}

func (f *fakeStoryStore) ListStories(_ context.Context) ([]models.SuccessStory, error) {
	// Newest fulfillment first, like the repository.
	out := make([]models.SuccessStory, len(f.stories))
	copy(out, f.stories)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].FulfilledAt.After(out[i].FulfilledAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func TestStatisticsBlendsDemoOffsets(t *testing.T) {
	wishes := newFakeWishStore()
	svc := NewStatsService(wishes, &fakeStoryStore{})
	ctx := context.Background()

	// Empty platform still reports the demo baseline.
	stats, err := svc.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(127), stats.TotalWishes)
	assert.Equal(t, int64(89), stats.WishesFulfilled)
	assert.Equal(t, 45230.50, stats.TotalRaised)
	assert.Equal(t, 2.0, stats.PostingFee)
	assert.InDelta(t, float64(89)/float64(127)*100, stats.SuccessRate, 1e-9)

	// Live data shifts the numbers.
	wishSvc := NewWishService(wishes)
	wish, err := wishSvc.CreateWish(ctx, validWish())
	require.NoError(t, err)
	_, err = wishSvc.Donate(ctx, wish.ID, 100)
	require.NoError(t, err)

	stats, err = svc.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(128), stats.TotalWishes)
	assert.Equal(t, int64(90), stats.WishesFulfilled)
	assert.Equal(t, 45330.50, stats.TotalRaised)
}

func TestSeedDemoDataAndOrdering(t *testing.T) {
	store := &fakeStoryStore{}
	svc := NewStatsService(newFakeWishStore(), store)
	ctx := context.Background()

	require.NoError(t, svc.SeedDemoData(ctx))
	require.NoError(t, svc.SeedDemoData(ctx)) // second startup, no duplicate seed
	assert.Len(t, store.stories, 3)

	stories, err := svc.GetSuccessStories(ctx)
	require.NoError(t, err)
	require.Len(t, stories, 3)

	last := time.Now().Add(24 * time.Hour)
	for _, story := range stories {
		assert.True(t, story.FulfilledAt.Before(last), "stories must be newest first")
		last = story.FulfilledAt
		assert.NotEmpty(t, story.ID)
		assert.True(t, models.ValidCategory(story.Category))
	}
}
