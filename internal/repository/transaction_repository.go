package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kaanops/wishfulfill.github.io/internal/models"
	"github.com/Kaanops/wishfulfill.github.io/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionRepository handles database operations related to payment
// transactions.
type TransactionRepository struct {
	collection *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{collection: db.Collection("transactions")}
}

func (r *TransactionRepository) CreateTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	txn.CreatedAt = time.Now().UTC()
	txn.UpdatedAt = txn.CreatedAt

	if _, err := r.collection.InsertOne(ctx, txn); err != nil {
		logger.Log.WithError(err).Error("Failed to insert transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"transaction_id": txn.ID,
		"payment_id":     txn.PaymentID,
		"purpose":        txn.Purpose,
	}).Info("Transaction created")

	return txn, nil
}

func (r *TransactionRepository) GetByPaymentID(ctx context.Context, paymentID string) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.collection.FindOne(ctx, bson.M{"payment_id": paymentID}).Decode(&txn)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// ClaimPending atomically moves the transaction from pending to
// completed and records the payer email. Only one caller can win the
// claim for a given payment id; later callers get ErrAlreadyProcessed.
// This is what makes payment execution idempotent.
func (r *TransactionRepository) ClaimPending(ctx context.Context, paymentID, payerEmail string) (*models.Transaction, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var txn models.Transaction
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"payment_id": paymentID, "status": models.TransactionPending},
		bson.M{"$set": bson.M{
			"status":      models.TransactionCompleted,
			"payer_email": payerEmail,
			"updated_at":  time.Now().UTC(),
		}},
		opts,
	).Decode(&txn)

	if errors.Is(err, mongo.ErrNoDocuments) {
		// Either the transaction does not exist or it already left
		// the pending state. Distinguish the two for the caller.
		if _, lookupErr := r.GetByPaymentID(ctx, paymentID); lookupErr != nil {
			return nil, lookupErr
		}
		return nil, ErrAlreadyProcessed
	}
	if err != nil {
		logger.Log.WithError(err).WithField("payment_id", paymentID).Error("Failed to claim transaction")
		return nil, fmt.Errorf("failed to claim transaction: %w", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"transaction_id": txn.ID,
		"payment_id":     paymentID,
	}).Info("Transaction completed")

	return &txn, nil
}

// MarkFailed records a failed execution attempt.
func (r *TransactionRepository) MarkFailed(ctx context.Context, paymentID string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"payment_id": paymentID},
		bson.M{"$set": bson.M{
			"status":     models.TransactionFailed,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		logger.Log.WithError(err).WithField("payment_id", paymentID).Error("Failed to mark transaction failed")
		return fmt.Errorf("failed to mark transaction failed: %w", err)
	}
	return nil
}
