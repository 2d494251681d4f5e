package repository

import (
	"context"
	"errors"
	"time"

	"github.com/webblaze/projectflow-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ProjectRepo interface {
	Create(ctx context.Context, project *types.Project) error
	GetByProjectID(ctx context.Context, companyName, projectID string) (*types.Project, error)
	GetByName(ctx context.Context, companyName, projectName string) (*types.Project, error)
	List(ctx context.Context, companyName string) ([]*types.Project, error)
	ListByMember(ctx context.Context, companyName, teamMemberID string) ([]*types.Project, error)
	ListProjectIDs(ctx context.Context, companyName string) ([]string, error)
	FindByPhaseID(ctx context.Context, companyName, phaseID string) (*types.Project, error)
	FindBySubtaskID(ctx context.Context, companyName, subtaskID string) (*types.Project, error)
	// TotalPhases counts phases across every project of the tenant,
	// deleted ones included, because phase identifiers number a single
	// tenant-wide sequence.
	TotalPhases(ctx context.Context, companyName string) (int64, error)
	Replace(ctx context.Context, project *types.Project) error
	PushSubtask(ctx context.Context, companyName, projectID, phaseID string, subtask types.Subtask) error
	PullSubtask(ctx context.Context, companyName, projectID, subtaskID string) error
	UpdateSubtaskStatus(ctx context.Context, companyName, projectID, subtaskID, status string, now time.Time) error
	UpdateSubtaskFields(ctx context.Context, companyName, projectID, subtaskID string, fields bson.M) error
	// Delete removes the document permanently. A non-empty requireStatus
	// rides in the filter so the reaper cannot remove a project that was
	// restored after its soft delete.
	Delete(ctx context.Context, companyName, projectID, requireStatus string) error
	ListDeletedBefore(ctx context.Context, cutoff time.Time) ([]*types.Project, error)
}

type projectRepo struct {
	collection *mongo.Collection
}

func NewProjectRepo(collection *mongo.Collection) ProjectRepo {
	return &projectRepo{
		collection: collection,
	}
}

func (r *projectRepo) Create(ctx context.Context, project *types.Project) error {
	res, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		project.ID = oid.Hex()
	}
	return nil
}

func (r *projectRepo) getOne(ctx context.Context, filter bson.M) (*types.Project, error) {
	var project types.Project
	err := r.collection.FindOne(ctx, filter).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) GetByProjectID(ctx context.Context, companyName, projectID string) (*types.Project, error) {
	return r.getOne(ctx, bson.M{"project_id": projectID, "companyName": companyName})
}

func (r *projectRepo) GetByName(ctx context.Context, companyName, projectName string) (*types.Project, error) {
	return r.getOne(ctx, bson.M{"project_name": projectName, "companyName": companyName})
}

func (r *projectRepo) list(ctx context.Context, filter bson.M) ([]*types.Project, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []*types.Project
	for cursor.Next(ctx) {
		var project types.Project
		if err := cursor.Decode(&project); err != nil {
			return nil, err
		}
		projects = append(projects, &project)
	}
	return projects, cursor.Err()
}

func (r *projectRepo) List(ctx context.Context, companyName string) ([]*types.Project, error) {
	return r.list(ctx, bson.M{
		"companyName":    companyName,
		"project_status": bson.M{"$ne": types.PROJECT_STATUS_DELETED},
	})
}

func (r *projectRepo) ListByMember(ctx context.Context, companyName, teamMemberID string) ([]*types.Project, error) {
	return r.list(ctx, bson.M{
		"companyName":    companyName,
		"project_status": bson.M{"$ne": types.PROJECT_STATUS_DELETED},
		"$or": []bson.M{
			{"project_lead": teamMemberID},
			{"team_members": teamMemberID},
		},
	})
}

func (r *projectRepo) ListProjectIDs(ctx context.Context, companyName string) ([]string, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"companyName": companyName},
		options.Find().SetProjection(bson.M{"project_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ProjectID string `bson:"project_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ProjectID)
	}
	return ids, cursor.Err()
}

func (r *projectRepo) FindByPhaseID(ctx context.Context, companyName, phaseID string) (*types.Project, error) {
	return r.getOne(ctx, bson.M{
		"companyName":     companyName,
		"phases.phase_id": phaseID,
	})
}

func (r *projectRepo) FindBySubtaskID(ctx context.Context, companyName, subtaskID string) (*types.Project, error) {
	return r.getOne(ctx, bson.M{
		"companyName":              companyName,
		"phases.subtasks.subtask_id": subtaskID,
	})
}

func (r *projectRepo) TotalPhases(ctx context.Context, companyName string) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"companyName": companyName}}},
		{{Key: "$project", Value: bson.M{"count": bson.M{"$size": bson.M{"$ifNull": []any{"$phases", []any{}}}}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$count"}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		var doc struct {
			Total int64 `bson:"total"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return 0, err
		}
		return doc.Total, nil
	}
	return 0, cursor.Err()
}

func (r *projectRepo) Replace(ctx context.Context, project *types.Project) error {
	oid, err := bson.ObjectIDFromHex(project.ID)
	if err != nil {
		return types.ErrNotFound
	}
	update := *project
	update.ID = ""
	update.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": oid, "companyName": project.CompanyName}, &update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *projectRepo) PushSubtask(ctx context.Context, companyName, projectID, phaseID string, subtask types.Subtask) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{
			"project_id":      projectID,
			"companyName":     companyName,
			"phases.phase_id": phaseID,
		},
		bson.M{
			"$push": bson.M{"phases.$.subtasks": subtask},
			"$set":  bson.M{"updatedAt": time.Now()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *projectRepo) PullSubtask(ctx context.Context, companyName, projectID, subtaskID string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"project_id": projectID, "companyName": companyName},
		bson.M{
			"$pull": bson.M{"phases.$[].subtasks": bson.M{"subtask_id": subtaskID}},
			"$set":  bson.M{"updatedAt": time.Now()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return types.ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *projectRepo) UpdateSubtaskStatus(ctx context.Context, companyName, projectID, subtaskID, status string, now time.Time) error {
	return r.UpdateSubtaskFields(ctx, companyName, projectID, subtaskID, bson.M{
		"phases.$[].subtasks.$[st].status":    status,
		"phases.$[].subtasks.$[st].updatedAt": now,
	})
}

// UpdateSubtaskFields sets dotted subtask paths in place using an array
// filter bound to the "st" placeholder, so a concurrent phase append does
// not get overwritten by a whole-document replace.
func (r *projectRepo) UpdateSubtaskFields(ctx context.Context, companyName, projectID, subtaskID string, fields bson.M) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"project_id": projectID, "companyName": companyName},
		bson.M{"$set": fields},
		options.UpdateOne().SetArrayFilters([]any{
			bson.M{"st.subtask_id": subtaskID},
		}))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, companyName, projectID, requireStatus string) error {
	filter := bson.M{"project_id": projectID, "companyName": companyName}
	if requireStatus != "" {
		filter["project_status"] = requireStatus
	}
	res, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (r *projectRepo) ListDeletedBefore(ctx context.Context, cutoff time.Time) ([]*types.Project, error) {
	return r.list(ctx, bson.M{
		"project_status": types.PROJECT_STATUS_DELETED,
		"deletedAt":      bson.M{"$lt": cutoff},
	})
}
