package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kaanops/wishfulfill.github.io/internal/models"
	"github.com/Kaanops/wishfulfill.github.io/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WishRepository handles database operations related to wishes.
type WishRepository struct {
	collection *mongo.Collection
}

func NewWishRepository(db *mongo.Database) *WishRepository {
	return &WishRepository{collection: db.Collection("wishes")}
}

// WishFilter narrows ListWishes results. Zero-value string fields mean
// "no filter"; Limit of 0 falls back to 50.
type WishFilter struct {
	Status   string
	Category string
	Urgency  string
	PaidOnly bool
	Limit    int64
}

func (r *WishRepository) CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error) {
	if _, err := r.collection.InsertOne(ctx, wish); err != nil {
		logger.Log.WithError(err).Error("Failed to insert wish")
		return nil, fmt.Errorf("failed to create wish: %w", err)
	}

	logger.Log.WithField("wish_id", wish.ID).Info("Wish created successfully")
	wish.Normalize()
	return wish, nil
}

func (r *WishRepository) GetWishByID(ctx context.Context, id string) (*models.Wish, error) {
	var wish models.Wish
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&wish)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wish: %w", err)
	}

	wish.Normalize()
	return &wish, nil
}

// ListWishes returns wishes matching the filter, newest first.
func (r *WishRepository) ListWishes(ctx context.Context, f WishFilter) ([]models.Wish, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Urgency != "" {
		filter["urgency"] = f.Urgency
	}
	if f.PaidOnly {
		filter["payment_status"] = models.PaymentStatusPaid
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch wishes")
		return nil, fmt.Errorf("failed to list wishes: %w", err)
	}
	defer cursor.Close(ctx)

	var wishes []models.Wish
	for cursor.Next(ctx) {
		var wish models.Wish
		if err := cursor.Decode(&wish); err != nil {
			return nil, fmt.Errorf("failed to decode wish: %w", err)
		}
		wish.Normalize()
		wishes = append(wishes, wish)
	}

	return wishes, nil
}

// MarkPostingFeePaid flips the wish's posting-fee status to paid.
func (r *WishRepository) MarkPostingFeePaid(ctx context.Context, id string) error {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"payment_status": models.PaymentStatusPaid}},
	)
	if err != nil {
		logger.Log.WithError(err).WithField("wish_id", id).Error("Failed to mark posting fee paid")
		return fmt.Errorf("failed to mark posting fee paid: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	logger.Log.WithField("wish_id", id).Info("Posting fee confirmed")
	return nil
}

// CreditDonation atomically increments the donation counters with $inc,
// so two concurrent donations never overwrite each other, then flips the
// wish to fulfilled once the target is reached. Returns the updated wish.
func (r *WishRepository) CreditDonation(ctx context.Context, id string, amount float64) (*models.Wish, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var wish models.Wish
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$inc": bson.M{"donations_received": amount, "donor_count": 1}},
		opts,
	).Decode(&wish)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("wish_id", id).Error("Failed to credit donation")
		return nil, fmt.Errorf("failed to credit donation: %w", err)
	}

	wish.Normalize()
	if wish.FulfillmentPercentage >= 100 && wish.Status == models.WishStatusActive {
		_, err = r.collection.UpdateOne(
			ctx,
			bson.M{"id": id, "status": models.WishStatusActive},
			bson.M{"$set": bson.M{"status": models.WishStatusFulfilled}},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to mark wish fulfilled: %w", err)
		}
		wish.Status = models.WishStatusFulfilled
	}

	logger.Log.WithFields(map[string]interface{}{
		"wish_id": id,
		"amount":  amount,
		"total":   wish.DonationsReceived,
	}).Info("Donation credited")

	return &wish, nil
}

// WishStats is the live aggregate over the wishes collection.
type WishStats struct {
	Total       int64
	Fulfilled   int64
	TotalRaised float64
}

// Stats counts wishes and sums donations across the whole collection.
func (r *WishRepository) Stats(ctx context.Context) (*WishStats, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count wishes: %w", err)
	}

	fulfilled, err := r.collection.CountDocuments(ctx, bson.M{"status": models.WishStatusFulfilled})
	if err != nil {
		return nil, fmt.Errorf("failed to count fulfilled wishes: %w", err)
	}

	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$donations_received"},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate donations: %w", err)
	}
	defer cursor.Close(ctx)

	var raised float64
	if cursor.Next(ctx) {
		var row struct {
			Total float64 `bson:"total"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode donation sum: %w", err)
		}
		raised = row.Total
	}

	return &WishStats{Total: total, Fulfilled: fulfilled, TotalRaised: raised}, nil
}
