package repository

import (
	"context"
	"errors"

	"github.com/webblaze/projectflow-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type TeamRepo interface {
	Create(ctx context.Context, team *types.Team) error
	GetByName(ctx context.Context, companyName, teamName string) (*types.Team, error)
	GetByID(ctx context.Context, companyName, id string) (*types.Team, error)
	ListByCompany(ctx context.Context, companyName string) ([]*types.Team, error)
	Update(ctx context.Context, team *types.Team) error
	Delete(ctx context.Context, companyName, id string) error
}

type teamRepo struct {
	collection *mongo.Collection
}

func NewTeamRepo(collection *mongo.Collection) TeamRepo {
	return &teamRepo{
		collection: collection,
	}
}

func (r *teamRepo) Create(ctx context.Context, team *types.Team) error {
	res, err := r.collection.InsertOne(ctx, team)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		team.ID = oid.Hex()
	}
	return nil
}

func (r *teamRepo) getOne(ctx context.Context, filter bson.M) (*types.Team, error) {
	var team types.Team
	err := r.collection.FindOne(ctx, filter).Decode(&team)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepo) GetByName(ctx context.Context, companyName, teamName string) (*types.Team, error) {
	return r.getOne(ctx, bson.M{"teamName": teamName, "companyName": companyName})
}

func (r *teamRepo) GetByID(ctx context.Context, companyName, id string) (*types.Team, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrNotFound
	}
	return r.getOne(ctx, bson.M{"_id": oid, "companyName": companyName})
}

func (r *teamRepo) ListByCompany(ctx context.Context, companyName string) ([]*types.Team, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"companyName": companyName})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teams []*types.Team
	for cursor.Next(ctx) {
		var team types.Team
		if err := cursor.Decode(&team); err != nil {
			return nil, err
		}
		teams = append(teams, &team)
	}
	return teams, cursor.Err()
}

func (r *teamRepo) Update(ctx context.Context, team *types.Team) error {
	oid, err := bson.ObjectIDFromHex(team.ID)
	if err != nil {
		return types.ErrNotFound
	}
	update := *team
	update.ID = ""
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid, "companyName": team.CompanyName}, &update)
	return err
}

func (r *teamRepo) Delete(ctx context.Context, companyName, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "companyName": companyName})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}
