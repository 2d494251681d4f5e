package repository

import (
	"context"
	"errors"
	"time"

	"github.com/webblaze/projectflow-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type EmployeeRepo interface {
	Create(ctx context.Context, employee *types.Employee) error
	GetByID(ctx context.Context, id string) (*types.Employee, error)
	GetByEmail(ctx context.Context, email string) (*types.Employee, error)
	GetByTeamMemberID(ctx context.Context, companyName, teamMemberID string) (*types.Employee, error)
	ListByCompany(ctx context.Context, companyName string) ([]*types.Employee, error)
	ListByRole(ctx context.Context, companyName, role string) ([]*types.Employee, error)
	ListByTeamMemberIDs(ctx context.Context, companyName string, teamMemberIDs []string) ([]*types.Employee, error)
	ListMemberIDs(ctx context.Context, companyName string) ([]string, error)
	Update(ctx context.Context, employee *types.Employee) error
	Delete(ctx context.Context, companyName, teamMemberID string) error
	// DeleteExpired removes accounts whose temp-password window elapsed
	// before the first-login password change. The mustChangePassword
	// precondition rides in the delete filter so a concurrent first login
	// cannot be clobbered.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type employeeRepo struct {
	collection *mongo.Collection
}

func NewEmployeeRepo(collection *mongo.Collection) EmployeeRepo {
	return &employeeRepo{
		collection: collection,
	}
}

func (r *employeeRepo) Create(ctx context.Context, employee *types.Employee) error {
	res, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		employee.ID = oid.Hex()
	}
	return nil
}

func (r *employeeRepo) getOne(ctx context.Context, filter bson.M) (*types.Employee, error) {
	var employee types.Employee
	err := r.collection.FindOne(ctx, filter).Decode(&employee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*types.Employee, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrNotFound
	}
	return r.getOne(ctx, bson.M{"_id": oid})
}

func (r *employeeRepo) GetByEmail(ctx context.Context, email string) (*types.Employee, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

func (r *employeeRepo) GetByTeamMemberID(ctx context.Context, companyName, teamMemberID string) (*types.Employee, error) {
	return r.getOne(ctx, bson.M{"teamMemberId": teamMemberID, "companyName": companyName})
}

func (r *employeeRepo) list(ctx context.Context, filter bson.M) ([]*types.Employee, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []*types.Employee
	for cursor.Next(ctx) {
		var employee types.Employee
		if err := cursor.Decode(&employee); err != nil {
			return nil, err
		}
		employees = append(employees, &employee)
	}
	return employees, cursor.Err()
}

func (r *employeeRepo) ListByCompany(ctx context.Context, companyName string) ([]*types.Employee, error) {
	return r.list(ctx, bson.M{"companyName": companyName})
}

func (r *employeeRepo) ListByRole(ctx context.Context, companyName, role string) ([]*types.Employee, error) {
	return r.list(ctx, bson.M{"companyName": companyName, "role": role})
}

func (r *employeeRepo) ListByTeamMemberIDs(ctx context.Context, companyName string, teamMemberIDs []string) ([]*types.Employee, error) {
	return r.list(ctx, bson.M{
		"companyName":  companyName,
		"teamMemberId": bson.M{"$in": teamMemberIDs},
	})
}

func (r *employeeRepo) ListMemberIDs(ctx context.Context, companyName string) ([]string, error) {
	employees, err := r.ListByCompany(ctx, companyName)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.TeamMemberID)
	}
	return ids, nil
}

func (r *employeeRepo) Update(ctx context.Context, employee *types.Employee) error {
	oid, err := bson.ObjectIDFromHex(employee.ID)
	if err != nil {
		return types.ErrNotFound
	}
	update := *employee
	update.ID = ""
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, &update)
	return err
}

func (r *employeeRepo) Delete(ctx context.Context, companyName, teamMemberID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{
		"teamMemberId": teamMemberID,
		"companyName":  companyName,
	})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *employeeRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{
		"mustChangePassword": true,
		"passwordExpiresAt":  bson.M{"$lt": now},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
