package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
)

type TaskService interface {
	Create(ctx context.Context, actor types.Principal, req *types.CreateTaskRequest) (*types.Task, error)
	Get(ctx context.Context, actor types.Principal, taskID string) (*types.Task, error)
	ListOwn(ctx context.Context, actor types.Principal) ([]*types.Task, error)
	ListAll(ctx context.Context, actor types.Principal) ([]*types.Task, error)
	ListHistory(ctx context.Context, actor types.Principal) ([]*types.Task, error)
	ListOngoing(ctx context.Context, actor types.Principal) ([]*types.Task, error)
	ListByMemberInProject(ctx context.Context, actor types.Principal, projectID, teamMemberID string) ([]*types.Task, error)
	Update(ctx context.Context, actor types.Principal, taskID string, req *types.UpdateTaskRequest) (*types.Task, error)
	UpdateByAssignee(ctx context.Context, actor types.Principal, teamMemberID string, req *types.UpdateTasksByAssigneeRequest) (int64, error)
	Delete(ctx context.Context, actor types.Principal, taskID string, req *types.DeleteTaskRequest) error
	DeleteByAssignee(ctx context.Context, actor types.Principal, teamMemberID string) (int64, error)
}

type taskService struct {
	tasks     repository.TaskRepo
	employees repository.EmployeeRepo
	projects  repository.ProjectRepo
	ids       IdentifierService
	activity  ActivityService
}

func NewTaskService(
	tasks repository.TaskRepo,
	employees repository.EmployeeRepo,
	projects repository.ProjectRepo,
	ids IdentifierService,
	activity ActivityService,
) TaskService {
	return &taskService{
		tasks:     tasks,
		employees: employees,
		projects:  projects,
		ids:       ids,
		activity:  activity,
	}
}

// assignerRef identifies the actor on a task: the member id for
// employees, the account id for the owner.
func assignerRef(actor types.Principal) string {
	if actor.MemberID() != "" {
		return actor.MemberID()
	}
	return actor.AccountID()
}

func (s *taskService) Create(ctx context.Context, actor types.Principal, req *types.CreateTaskRequest) (*types.Task, error) {
	if req.Title == "" || req.AssignedTo == "" {
		return nil, types.Validationf("title and assignedTo are required")
	}
	if err := requireTaskCreator(actor, req.AssignedTo); err != nil {
		return nil, err
	}
	priority := req.Priority
	if priority == "" {
		priority = types.TASK_PRIORITY_MEDIUM
	}
	if !types.ValidTaskPriority(priority) {
		return nil, types.Validationf("invalid priority %q", priority)
	}

	if _, err := s.employees.GetByTeamMemberID(ctx, actor.Company(), req.AssignedTo); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, types.Validationf("no employee with id %s", req.AssignedTo)
		}
		return nil, err
	}
	if req.Project != "" {
		if _, err := s.projects.GetByProjectID(ctx, actor.Company(), req.Project); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return nil, types.Validationf("no project with id %s", req.Project)
			}
			return nil, err
		}
	}

	taskID, err := s.ids.NextTaskID(ctx, actor.Company())
	if err != nil {
		return nil, err
	}

	task := &types.Task{
		TaskID:         taskID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         types.TASK_STATUS_PENDING,
		AssignedTo:     req.AssignedTo,
		AssignedBy:     assignerRef(actor),
		AssignedByRole: actor.AccountRole(),
		Project:        req.Project,
		Priority:       priority,
		DueDate:        req.DueDate,
		CreatedAt:      time.Now(),
		CompanyName:    actor.Company(),
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_TASK, types.ACTIVITY_ACTION_ADD,
		task.Title, fmt.Sprintf("task %s assigned to %s", taskID, task.AssignedTo), actor.DisplayName())
	return task, nil
}

func (s *taskService) Get(ctx context.Context, actor types.Principal, taskID string) (*types.Task, error) {
	return s.tasks.GetByTaskID(ctx, actor.Company(), taskID)
}

func (s *taskService) ListOwn(ctx context.Context, actor types.Principal) ([]*types.Task, error) {
	if actor.MemberID() == "" {
		return s.tasks.ListByCompany(ctx, actor.Company())
	}
	return s.tasks.ListByAssignee(ctx, actor.Company(), actor.MemberID())
}

// ListAll scopes the view by role: managers and above see the whole
// tenant, a team lead sees team members' tasks plus their own, a team
// member only their own.
func (s *taskService) ListAll(ctx context.Context, actor types.Principal) ([]*types.Task, error) {
	switch actor.AccountRole() {
	case types.ROLE_OWNER, types.ROLE_ADMIN, types.ROLE_MANAGER:
		return s.tasks.ListByCompany(ctx, actor.Company())
	case types.ROLE_TEAM_LEAD:
		members, err := s.employees.ListByRole(ctx, actor.Company(), types.ROLE_TEAM_MEMBER)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(members)+1)
		for _, m := range members {
			ids = append(ids, m.TeamMemberID)
		}
		ids = append(ids, actor.MemberID())
		return s.tasks.ListByAssignees(ctx, actor.Company(), ids)
	default:
		return s.tasks.ListByAssignee(ctx, actor.Company(), actor.MemberID())
	}
}

func (s *taskService) ListHistory(ctx context.Context, actor types.Principal) ([]*types.Task, error) {
	return s.tasks.ListByStatuses(ctx, actor.Company(), []string{
		types.TASK_STATUS_COMPLETED,
		types.TASK_STATUS_DELETED,
	})
}

func (s *taskService) ListOngoing(ctx context.Context, actor types.Principal) ([]*types.Task, error) {
	return s.tasks.ListByStatuses(ctx, actor.Company(), []string{
		types.TASK_STATUS_PENDING,
		types.TASK_STATUS_IN_PROGRESS,
		types.TASK_STATUS_VERIFICATION,
	})
}

func (s *taskService) ListByMemberInProject(ctx context.Context, actor types.Principal, projectID, teamMemberID string) ([]*types.Task, error) {
	return s.tasks.ListByMemberInProject(ctx, actor.Company(), projectID, teamMemberID)
}

func (s *taskService) Update(ctx context.Context, actor types.Principal, taskID string, req *types.UpdateTaskRequest) (*types.Task, error) {
	task, err := s.tasks.GetByTaskID(ctx, actor.Company(), taskID)
	if err != nil {
		return nil, err
	}
	if err := requireTaskEditor(actor, task); err != nil {
		return nil, err
	}
	if statusOnlyEditor(actor) &&
		(req.Title != "" || req.Description != "" || req.AssignedTo != "" || req.Project != "" || req.Priority != "" || req.DueDate != "") {
		return nil, types.Forbiddenf("team members may only change the status of their tasks")
	}

	fields := map[string]interface{}{}
	if req.Title != "" {
		task.Title = req.Title
		fields["title"] = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
		fields["description"] = req.Description
	}
	if req.Priority != "" {
		if !types.ValidTaskPriority(req.Priority) {
			return nil, types.Validationf("invalid priority %q", req.Priority)
		}
		task.Priority = req.Priority
		fields["priority"] = req.Priority
	}
	if req.DueDate != "" {
		task.DueDate = req.DueDate
		fields["dueDate"] = req.DueDate
	}
	if req.Project != "" {
		task.Project = req.Project
		fields["project"] = req.Project
	}
	if req.AssignedTo != "" && req.AssignedTo != task.AssignedTo {
		if _, err := s.employees.GetByTeamMemberID(ctx, actor.Company(), req.AssignedTo); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return nil, types.Validationf("no employee with id %s", req.AssignedTo)
			}
			return nil, err
		}
		task.AssignedTo = req.AssignedTo
		task.Status = types.TASK_STATUS_PENDING
		fields["assignedTo"] = req.AssignedTo
		fields["status"] = types.TASK_STATUS_PENDING
	}
	if req.Status != "" && req.Status != task.Status {
		if !types.ValidTaskStatus(req.Status) {
			return nil, types.Validationf("invalid status %q", req.Status)
		}
		if req.Status == types.TASK_STATUS_COMPLETED {
			if actor.AccountRole() != types.ROLE_TEAM_LEAD {
				return nil, types.Forbiddenf("only team leads can complete tasks")
			}
			if task.Status != types.TASK_STATUS_VERIFICATION {
				return nil, types.Forbiddenf("tasks must be in verification before completion")
			}
			now := time.Now()
			task.CompletedAt = &now
			fields["completedAt"] = now
		}
		task.Status = req.Status
		fields["status"] = req.Status
	}
	if len(fields) == 0 {
		return task, nil
	}

	if err := s.tasks.UpdateByTaskID(ctx, actor.Company(), taskID, fields); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_TASK, types.ACTIVITY_ACTION_EDIT,
		task.Title, fmt.Sprintf("task %s updated", taskID), actor.DisplayName())
	return task, nil
}

// UpdateByAssignee applies one change to every task a member holds.
// Completion is gated: only a team lead may complete, and only when the
// entire batch is already in verification, all-or-nothing.
func (s *taskService) UpdateByAssignee(ctx context.Context, actor types.Principal, teamMemberID string, req *types.UpdateTasksByAssigneeRequest) (int64, error) {
	tasks, err := s.tasks.ListByAssignee(ctx, actor.Company(), teamMemberID)
	if err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, types.NotFoundf("no tasks assigned to %s", teamMemberID)
	}
	for _, task := range tasks {
		if err := requireTaskEditor(actor, task); err != nil {
			return 0, err
		}
	}
	if statusOnlyEditor(actor) &&
		(req.Title != "" || req.Description != "" || req.Priority != "" || req.DueDate != "" ||
			req.Project != "" || req.DeletionReason != "" || req.NewAssignedTo != "") {
		return 0, types.Forbiddenf("team members may only change the status of their tasks")
	}

	fields := map[string]interface{}{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Priority != "" {
		if !types.ValidTaskPriority(req.Priority) {
			return 0, types.Validationf("invalid priority %q", req.Priority)
		}
		fields["priority"] = req.Priority
	}
	if req.DueDate != "" {
		fields["dueDate"] = req.DueDate
	}
	if req.Project != "" {
		fields["project"] = req.Project
	}
	if req.DeletionReason != "" {
		fields["deletionReason"] = req.DeletionReason
	}

	if req.NewAssignedTo != "" {
		if _, err := s.employees.GetByTeamMemberID(ctx, actor.Company(), req.NewAssignedTo); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return 0, types.Validationf("no employee with id %s", req.NewAssignedTo)
			}
			return 0, err
		}
		fields["assignedTo"] = req.NewAssignedTo
		// A handover always restarts the work.
		fields["status"] = types.TASK_STATUS_PENDING
	} else if req.Status != "" {
		if !types.ValidTaskStatus(req.Status) {
			return 0, types.Validationf("invalid status %q", req.Status)
		}
		if req.Status == types.TASK_STATUS_COMPLETED {
			if actor.AccountRole() != types.ROLE_TEAM_LEAD {
				return 0, types.Forbiddenf("only team leads can complete tasks")
			}
			for _, task := range tasks {
				if task.Status != types.TASK_STATUS_VERIFICATION {
					return 0, types.Forbiddenf("task %s is not in verification, nothing was completed", task.TaskID)
				}
			}
			fields["completedAt"] = time.Now()
		}
		fields["status"] = req.Status
	}

	taskIDs := make([]string, 0, len(tasks))
	for _, task := range tasks {
		taskIDs = append(taskIDs, task.TaskID)
	}

	var modified int64
	if len(fields) > 0 {
		modified, err = s.tasks.UpdateMany(ctx, actor.Company(), teamMemberID, taskIDs, fields)
		if err != nil {
			return 0, err
		}
	}
	if req.Comment != "" {
		comment := types.TaskComment{
			Text:   req.Comment,
			Author: actor.DisplayName(),
			Date:   time.Now(),
		}
		if err := s.tasks.PushCommentMany(ctx, actor.Company(), taskIDs, comment); err != nil {
			return modified, err
		}
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_TASK, types.ACTIVITY_ACTION_EDIT,
		teamMemberID, fmt.Sprintf("%d tasks updated", len(taskIDs)), actor.DisplayName())
	return modified, nil
}

func (s *taskService) Delete(ctx context.Context, actor types.Principal, taskID string, req *types.DeleteTaskRequest) error {
	task, err := s.tasks.GetByTaskID(ctx, actor.Company(), taskID)
	if err != nil {
		return err
	}
	assigneeRole := ""
	if assignee, err := s.employees.GetByTeamMemberID(ctx, actor.Company(), task.AssignedTo); err == nil {
		assigneeRole = assignee.Role
	}
	if err := requireTaskDeleter(actor, task, assigneeRole); err != nil {
		return err
	}

	fields := map[string]interface{}{
		"status": types.TASK_STATUS_DELETED,
	}
	if req != nil && req.Reason != "" {
		fields["deletionReason"] = req.Reason
	}
	if err := s.tasks.UpdateByTaskID(ctx, actor.Company(), taskID, fields); err != nil {
		return err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_TASK, types.ACTIVITY_ACTION_DELETE,
		task.Title, fmt.Sprintf("task %s deleted", taskID), actor.DisplayName())
	return nil
}

func (s *taskService) DeleteByAssignee(ctx context.Context, actor types.Principal, teamMemberID string) (int64, error) {
	tasks, err := s.tasks.ListByAssignee(ctx, actor.Company(), teamMemberID)
	if err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, types.NotFoundf("no tasks assigned to %s", teamMemberID)
	}
	for _, task := range tasks {
		if err := requireBatchDeleter(actor, task.AssignedBy); err != nil {
			return 0, err
		}
	}

	deleted, err := s.tasks.DeleteByAssignee(ctx, actor.Company(), teamMemberID)
	if err != nil {
		return 0, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_TASK, types.ACTIVITY_ACTION_DELETE,
		teamMemberID, fmt.Sprintf("%d tasks deleted", deleted), actor.DisplayName())
	return deleted, nil
}
