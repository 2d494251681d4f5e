package repository

import (
	"context"
	"errors"

	"github.com/webblaze/projectflow-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type UserRepo interface {
	Create(ctx context.Context, user *types.User) error
	GetByID(ctx context.Context, id string) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	GetByCompanyName(ctx context.Context, companyName string) (*types.User, error)
	GetByCompanyDomain(ctx context.Context, domain string) (*types.User, error)
	GetByCompanyID(ctx context.Context, companyID string) (*types.User, error)
	Update(ctx context.Context, user *types.User) error
}

type userRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(collection *mongo.Collection) UserRepo {
	return &userRepo{
		collection: collection,
	}
}

func (r *userRepo) Create(ctx context.Context, user *types.User) error {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

func (r *userRepo) getOne(ctx context.Context, filter bson.M) (*types.User, error) {
	var user types.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*types.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrNotFound
	}
	return r.getOne(ctx, bson.M{"_id": oid})
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

func (r *userRepo) GetByCompanyName(ctx context.Context, companyName string) (*types.User, error) {
	return r.getOne(ctx, bson.M{"companyName": companyName})
}

func (r *userRepo) GetByCompanyDomain(ctx context.Context, domain string) (*types.User, error) {
	return r.getOne(ctx, bson.M{"companyDomain": domain})
}

func (r *userRepo) GetByCompanyID(ctx context.Context, companyID string) (*types.User, error) {
	return r.getOne(ctx, bson.M{"companyID": companyID})
}

func (r *userRepo) Update(ctx context.Context, user *types.User) error {
	oid, err := bson.ObjectIDFromHex(user.ID)
	if err != nil {
		return types.ErrNotFound
	}
	update := *user
	update.ID = ""
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, &update)
	return err
}
