package repository

import (
	"context"

	"github.com/webblaze/projectflow-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ActivityRepo interface {
	Create(ctx context.Context, activity *types.Activity) error
	Recent(ctx context.Context, companyName string, limit int64) ([]*types.Activity, error)
}

type activityRepo struct {
	collection *mongo.Collection
}

func NewActivityRepo(collection *mongo.Collection) ActivityRepo {
	return &activityRepo{
		collection: collection,
	}
}

func (r *activityRepo) Create(ctx context.Context, activity *types.Activity) error {
	res, err := r.collection.InsertOne(ctx, activity)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		activity.ID = oid.Hex()
	}
	return nil
}

func (r *activityRepo) Recent(ctx context.Context, companyName string, limit int64) ([]*types.Activity, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"companyName": companyName},
		options.Find().
			SetSort(bson.M{"timestamp": -1}).
			SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []*types.Activity
	for cursor.Next(ctx) {
		var activity types.Activity
		if err := cursor.Decode(&activity); err != nil {
			return nil, err
		}
		activities = append(activities, &activity)
	}
	return activities, cursor.Err()
}
