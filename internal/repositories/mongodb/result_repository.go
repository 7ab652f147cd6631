package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Avis17/karunya-draw-tracker/internal/models"
	"github.com/Avis17/karunya-draw-tracker/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRepository implements the repositories.ResultRepository interface
type ResultRepository struct {
	collection *mongo.Collection
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *mongo.Database) repositories.ResultRepository {
	return &ResultRepository{
		collection: db.Collection("lottery_results"),
	}
}

// EnsureIndexes creates the unique compound index that makes the
// (drawDate, slotTime) pair a storage-level invariant rather than a
// lookup-before-write convention.
func (r *ResultRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "drawDate", Value: 1}, {Key: "slotTime", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("drawDate_slotTime_unique"),
	}
	_, err := r.collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		return fmt.Errorf("failed to create result index: %w", err)
	}
	return nil
}

// FindByDate finds all results for a canonical YYYY-MM-DD day, ordered by
// slot time ascending.
func (r *ResultRepository) FindByDate(ctx context.Context, date string) ([]*models.LotteryResult, error) {
	filter := bson.M{"drawDate": date}
	opts := options.Find().SetSort(bson.M{"slotTime": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*models.LotteryResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []*models.LotteryResult{}
	}
	return results, nil
}

// FindByDateAndSlot finds the single result for a (date, slot) pair.
func (r *ResultRepository) FindByDateAndSlot(ctx context.Context, date, slot string) (*models.LotteryResult, error) {
	var result models.LotteryResult
	filter := bson.M{"drawDate": date, "slotTime": slot}
	err := r.collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// Upsert inserts or updates the result for the (drawDate, slotTime) pair in
// a single atomic FindOneAndUpdate, so concurrent admin writes for the same
// slot cannot race into duplicate rows.
func (r *ResultRepository) Upsert(ctx context.Context, result *models.LotteryResult) (*models.LotteryResult, error) {
	now := time.Now()
	filter := bson.M{"drawDate": result.DrawDate, "slotTime": result.SlotTime}
	update := bson.M{
		"$set": bson.M{
			"resultNumber": result.ResultNumber,
			"createdBy":    result.CreatedBy,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"drawDate":  result.DrawDate,
			"slotTime":  result.SlotTime,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.LotteryResult
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert result: %w", err)
	}
	return &stored, nil
}

// Delete deletes a result by ID
func (r *ResultRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
