package repository

import (
	"context"
	"fmt"

	"github.com/Kaanops/wishfulfill.github.io/internal/models"
	"github.com/Kaanops/wishfulfill.github.io/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoryRepository handles the read-only success stories collection.
type StoryRepository struct {
	collection *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{collection: db.Collection("success_stories")}
}

// SeedIfEmpty inserts the given stories once, when the collection holds
// nothing. Subsequent startups leave the data untouched.
func (r *StoryRepository) SeedIfEmpty(ctx context.Context, stories []models.SuccessStory) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count success stories: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(stories))
	for i := range stories {
		docs[i] = stories[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		logger.Log.WithError(err).Error("Failed to seed success stories")
		return fmt.Errorf("failed to seed success stories: %w", err)
	}

	logger.Log.WithField("count", len(stories)).Info("Success stories seeded")
	return nil
}

// ListStories returns all stories, most recently fulfilled first.
func (r *StoryRepository) ListStories(ctx context.Context) ([]models.SuccessStory, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "fulfilled_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch success stories")
		return nil, fmt.Errorf("failed to list success stories: %w", err)
	}
	defer cursor.Close(ctx)

	var stories []models.SuccessStory
	for cursor.Next(ctx) {
		var story models.SuccessStory
		if err := cursor.Decode(&story); err != nil {
			return nil, fmt.Errorf("failed to decode success story: %w", err)
		}
		stories = append(stories, story)
	}

	return stories, nil
}
