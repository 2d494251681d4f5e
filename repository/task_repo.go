package repository

import (
	"context"
	"errors"

	"github.com/webblaze/projectflow-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type TaskRepo interface {
	Create(ctx context.Context, task *types.Task) error
	GetByTaskID(ctx context.Context, companyName, taskID string) (*types.Task, error)
	ListByCompany(ctx context.Context, companyName string) ([]*types.Task, error)
	ListByAssignee(ctx context.Context, companyName, teamMemberID string) ([]*types.Task, error)
	ListByAssignees(ctx context.Context, companyName string, teamMemberIDs []string) ([]*types.Task, error)
	ListByStatuses(ctx context.Context, companyName string, statuses []string) ([]*types.Task, error)
	ListByMemberInProject(ctx context.Context, companyName, projectID, teamMemberID string) ([]*types.Task, error)
	ListTaskIDs(ctx context.Context, companyName string) ([]string, error)
	UpdateByTaskID(ctx context.Context, companyName, taskID string, fields bson.M) error
	// UpdateMany applies the same field set to every task in the batch,
	// all tenant-scoped by the assignee.
	UpdateMany(ctx context.Context, companyName, teamMemberID string, taskIDs []string, fields bson.M) (int64, error)
	PushCommentMany(ctx context.Context, companyName string, taskIDs []string, comment types.TaskComment) error
	DeleteByAssignee(ctx context.Context, companyName, teamMemberID string) (int64, error)
}

type taskRepo struct {
	collection *mongo.Collection
}

func NewTaskRepo(collection *mongo.Collection) TaskRepo {
	return &taskRepo{
		collection: collection,
	}
}

func (r *taskRepo) Create(ctx context.Context, task *types.Task) error {
	res, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		task.ID = oid.Hex()
	}
	return nil
}

func (r *taskRepo) GetByTaskID(ctx context.Context, companyName, taskID string) (*types.Task, error) {
	var task types.Task
	err := r.collection.FindOne(ctx, bson.M{
		"task_id":     taskID,
		"companyName": companyName,
	}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepo) list(ctx context.Context, filter bson.M) ([]*types.Task, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*types.Task
	for cursor.Next(ctx) {
		var task types.Task
		if err := cursor.Decode(&task); err != nil {
			return nil, err
		}
		tasks = append(tasks, &task)
	}
	return tasks, cursor.Err()
}

func (r *taskRepo) ListByCompany(ctx context.Context, companyName string) ([]*types.Task, error) {
	return r.list(ctx, bson.M{"companyName": companyName})
}

func (r *taskRepo) ListByAssignee(ctx context.Context, companyName, teamMemberID string) ([]*types.Task, error) {
	return r.list(ctx, bson.M{"companyName": companyName, "assignedTo": teamMemberID})
}

func (r *taskRepo) ListByAssignees(ctx context.Context, companyName string, teamMemberIDs []string) ([]*types.Task, error) {
	return r.list(ctx, bson.M{
		"companyName": companyName,
		"assignedTo":  bson.M{"$in": teamMemberIDs},
	})
}

func (r *taskRepo) ListByStatuses(ctx context.Context, companyName string, statuses []string) ([]*types.Task, error) {
	return r.list(ctx, bson.M{
		"companyName": companyName,
		"status":      bson.M{"$in": statuses},
	})
}

func (r *taskRepo) ListByMemberInProject(ctx context.Context, companyName, projectID, teamMemberID string) ([]*types.Task, error) {
	return r.list(ctx, bson.M{
		"companyName": companyName,
		"project":     projectID,
		"assignedTo":  teamMemberID,
	})
}

func (r *taskRepo) ListTaskIDs(ctx context.Context, companyName string) ([]string, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"companyName": companyName},
		options.Find().SetProjection(bson.M{"task_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			TaskID string `bson:"task_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.TaskID)
	}
	return ids, cursor.Err()
}

func (r *taskRepo) UpdateByTaskID(ctx context.Context, companyName, taskID string, fields bson.M) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"task_id": taskID, "companyName": companyName},
		bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *taskRepo) UpdateMany(ctx context.Context, companyName, teamMemberID string, taskIDs []string, fields bson.M) (int64, error) {
	res, err := r.collection.UpdateMany(ctx,
		bson.M{
			"companyName": companyName,
			"assignedTo":  teamMemberID,
			"task_id":     bson.M{"$in": taskIDs},
		},
		bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *taskRepo) PushCommentMany(ctx context.Context, companyName string, taskIDs []string, comment types.TaskComment) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{
			"companyName": companyName,
			"task_id":     bson.M{"$in": taskIDs},
		},
		bson.M{"$push": bson.M{"comments": comment}})
	return err
}

func (r *taskRepo) DeleteByAssignee(ctx context.Context, companyName, teamMemberID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{
		"companyName": companyName,
		"assignedTo":  teamMemberID,
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
