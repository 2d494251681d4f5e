package repository

import (
	"context"
	"errors"

	"github.com/webblaze/projectflow-be/logger"
	"github.com/webblaze/projectflow-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SeedFunc reports the highest identifier number already issued for a
// tenant and kind, so counters started on a populated database continue
// the existing sequence instead of restarting at 1.
type SeedFunc func(ctx context.Context) (int64, error)

// CounterRepo reserves identifier numbers with an atomic increment. Two
// concurrent reservations for the same tenant and kind always observe
// distinct values.
type CounterRepo interface {
	Next(ctx context.Context, companyName, kind string, seed SeedFunc) (int64, error)
}

type counterRepo struct {
	collection *mongo.Collection
}

func NewCounterRepo(collection *mongo.Collection) CounterRepo {
	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "companyName", Value: 1},
			{Key: "kind", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(context.Background(), index); err != nil {
		logger.Log.WithError(err).Error("failed to create counter index")
	}
	return &counterRepo{
		collection: collection,
	}
}

func (r *counterRepo) Next(ctx context.Context, companyName, kind string, seed SeedFunc) (int64, error) {
	filter := bson.M{"companyName": companyName, "kind": kind}

	var counter types.Counter
	err := r.collection.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&counter)
	if err == nil {
		return counter.Seq, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, err
	}

	start, err := seed(ctx)
	if err != nil {
		return 0, err
	}
	_, err = r.collection.InsertOne(ctx, &types.Counter{
		CompanyName: companyName,
		Kind:        kind,
		Seq:         start + 1,
	})
	if err == nil {
		return start + 1, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return 0, err
	}

	// Another reservation seeded the counter first; take the next slot.
	err = r.collection.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
