package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
)

type taskFixture struct {
	svc       service.TaskService
	tasks     *fakeTaskRepo
	employees *fakeEmployeeRepo
	projects  *fakeProjectRepo
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	ctx := context.Background()
	employees := newFakeEmployeeRepo()
	projects := newFakeProjectRepo()
	tasks := newFakeTaskRepo()
	ids := service.NewIdentifierService(newFakeCounterRepo(), employees, projects, tasks)
	svc := service.NewTaskService(tasks, employees, projects, ids, newActivity())

	for _, e := range []*types.Employee{
		employee("Web Blaze", "WB-001", types.ROLE_TEAM_LEAD),
		employee("Web Blaze", "WB-002", types.ROLE_TEAM_MEMBER),
		employee("Web Blaze", "WB-003", types.ROLE_TEAM_MEMBER),
		employee("Web Blaze", "WB-004", types.ROLE_MANAGER),
	} {
		require.NoError(t, employees.Create(ctx, e))
	}
	return &taskFixture{svc: svc, tasks: tasks, employees: employees, projects: projects}
}

func (f *taskFixture) lead() types.Principal    { return f.mustEmployee("WB-001") }
func (f *taskFixture) member() types.Principal  { return f.mustEmployee("WB-002") }
func (f *taskFixture) manager() types.Principal { return f.mustEmployee("WB-004") }

func (f *taskFixture) mustEmployee(id string) *types.Employee {
	e, err := f.employees.GetByTeamMemberID(context.Background(), "Web Blaze", id)
	if err != nil {
		panic(err)
	}
	return e
}

func TestCreateTaskAssignsIDAndSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	task, err := f.svc.Create(ctx, f.lead(), &types.CreateTaskRequest{
		Title:      "Ship login page",
		AssignedTo: "WB-002",
	})
	require.NoError(t, err)
	require.Equal(t, "WB-TSK-001", task.TaskID)
	require.Equal(t, types.TASK_STATUS_PENDING, task.Status)
	require.Equal(t, types.TASK_PRIORITY_MEDIUM, task.Priority)
	require.Equal(t, "WB-001", task.AssignedBy)
	require.Equal(t, types.ROLE_TEAM_LEAD, task.AssignedByRole)
}

func TestCreateTaskValidation(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	_, err := f.svc.Create(ctx, f.lead(), &types.CreateTaskRequest{Title: "No assignee"})
	require.ErrorIs(t, err, types.ErrValidation)

	_, err = f.svc.Create(ctx, f.lead(), &types.CreateTaskRequest{
		Title:      "Ghost assignee",
		AssignedTo: "WB-999",
	})
	require.ErrorIs(t, err, types.ErrValidation)

	_, err = f.svc.Create(ctx, f.lead(), &types.CreateTaskRequest{
		Title:      "Ghost project",
		AssignedTo: "WB-002",
		Project:    "WB-Pr-404",
	})
	require.ErrorIs(t, err, types.ErrValidation)

	// Self-assignment is forbidden, not a validation miss.
	_, err = f.svc.Create(ctx, f.lead(), &types.CreateTaskRequest{
		Title:      "Own task",
		AssignedTo: "WB-001",
	})
	require.ErrorIs(t, err, types.ErrForbidden)
}

func TestTeamMemberMayOnlyChangeStatus(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	task, err := f.svc.Create(ctx, f.lead(), &types.CreateTaskRequest{
		Title:      "Write tests",
		AssignedTo: "WB-002",
	})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.member(), task.TaskID, &types.UpdateTaskRequest{
		Title: "Renamed by assignee",
	})
	require.ErrorIs(t, err, types.ErrForbidden)

	updated, err := f.svc.Update(ctx, f.member(), task.TaskID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_IN_PROGRESS,
	})
	require.NoError(t, err)
	require.Equal(t, types.TASK_STATUS_IN_PROGRESS, updated.Status)

	// Another member's task is off limits entirely.
	other := f.mustEmployee("WB-003")
	_, err = f.svc.Update(ctx, other, task.TaskID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_VERIFICATION,
	})
	require.ErrorIs(t, err, types.ErrForbidden)
}

func TestTeamMemberBatchUpdateIsStatusOnly(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	task, err := f.svc.Create(ctx, f.lead(), &types.CreateTaskRequest{
		Title:      "Write tests",
		AssignedTo: "WB-002",
	})
	require.NoError(t, err)

	// The single-task restriction holds on the batch path too.
	_, err = f.svc.UpdateByAssignee(ctx, f.member(), "WB-002", &types.UpdateTasksByAssigneeRequest{
		Title: "Member rewrote the task",
	})
	require.ErrorIs(t, err, types.ErrForbidden)

	_, err = f.svc.UpdateByAssignee(ctx, f.member(), "WB-002", &types.UpdateTasksByAssigneeRequest{
		NewAssignedTo: "WB-003",
	})
	require.ErrorIs(t, err, types.ErrForbidden)

	_, err = f.svc.UpdateByAssignee(ctx, f.member(), "WB-002", &types.UpdateTasksByAssigneeRequest{
		DeletionReason: "not mine anymore",
	})
	require.ErrorIs(t, err, types.ErrForbidden)

	stored, err := f.tasks.GetByTaskID(ctx, "Web Blaze", task.TaskID)
	require.NoError(t, err)
	require.Equal(t, "Write tests", stored.Title)
	require.Equal(t, "WB-002", stored.AssignedTo)

	modified, err := f.svc.UpdateByAssignee(ctx, f.member(), "WB-002", &types.UpdateTasksByAssigneeRequest{
		Status: types.TASK_STATUS_IN_PROGRESS,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), modified)
}

func TestCompletionRequiresLeadAndVerification(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	task, err := f.svc.Create(ctx, f.manager(), &types.CreateTaskRequest{
		Title:      "Deploy",
		AssignedTo: "WB-002",
	})
	require.NoError(t, err)

	// Not in verification yet.
	_, err = f.svc.Update(ctx, f.lead(), task.TaskID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_COMPLETED,
	})
	require.ErrorIs(t, err, types.ErrForbidden)

	_, err = f.svc.Update(ctx, f.member(), task.TaskID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_VERIFICATION,
	})
	require.NoError(t, err)

	// A manager may edit but not complete.
	_, err = f.svc.Update(ctx, f.manager(), task.TaskID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_COMPLETED,
	})
	require.ErrorIs(t, err, types.ErrForbidden)

	done, err := f.svc.Update(ctx, f.lead(), task.TaskID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_COMPLETED,
	})
	require.NoError(t, err)
	require.Equal(t, types.TASK_STATUS_COMPLETED, done.Status)
	require.NotNil(t, done.CompletedAt)
}

func TestReassignmentForcesPending(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	task, err := f.svc.Create(ctx, f.manager(), &types.CreateTaskRequest{
		Title:      "Refactor",
		AssignedTo: "WB-002",
	})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.member(), task.TaskID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_IN_PROGRESS,
	})
	require.NoError(t, err)

	moved, err := f.svc.Update(ctx, f.manager(), task.TaskID, &types.UpdateTaskRequest{
		AssignedTo: "WB-003",
	})
	require.NoError(t, err)
	require.Equal(t, "WB-003", moved.AssignedTo)
	require.Equal(t, types.TASK_STATUS_PENDING, moved.Status)
}

func TestBatchCompletionIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	first, err := f.svc.Create(ctx, f.manager(), &types.CreateTaskRequest{
		Title:      "Task A",
		AssignedTo: "WB-002",
	})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.manager(), &types.CreateTaskRequest{
		Title:      "Task B",
		AssignedTo: "WB-002",
	})
	require.NoError(t, err)

	// Only one of the two is in verification; the whole batch is refused.
	_, err = f.svc.Update(ctx, f.member(), first.TaskID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_VERIFICATION,
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateByAssignee(ctx, f.lead(), "WB-002", &types.UpdateTasksByAssigneeRequest{
		Status: types.TASK_STATUS_COMPLETED,
	})
	require.ErrorIs(t, err, types.ErrForbidden)

	stored, err := f.tasks.GetByTaskID(ctx, "Web Blaze", first.TaskID)
	require.NoError(t, err)
	require.Equal(t, types.TASK_STATUS_VERIFICATION, stored.Status)

	// With both in verification the batch completes.
	all, err := f.tasks.ListByAssignee(ctx, "Web Blaze", "WB-002")
	require.NoError(t, err)
	for _, task := range all {
		if task.Status != types.TASK_STATUS_VERIFICATION {
			_, err = f.svc.Update(ctx, f.member(), task.TaskID, &types.UpdateTaskRequest{
				Status: types.TASK_STATUS_VERIFICATION,
			})
			require.NoError(t, err)
		}
	}

	modified, err := f.svc.UpdateByAssignee(ctx, f.lead(), "WB-002", &types.UpdateTasksByAssigneeRequest{
		Status:  types.TASK_STATUS_COMPLETED,
		Comment: "Verified and signed off",
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), modified)

	all, err = f.tasks.ListByAssignee(ctx, "Web Blaze", "WB-002")
	require.NoError(t, err)
	for _, task := range all {
		require.Equal(t, types.TASK_STATUS_COMPLETED, task.Status)
		require.NotNil(t, task.CompletedAt)
		require.Len(t, task.Comments, 1)
		require.Equal(t, "Verified and signed off", task.Comments[0].Text)
	}
}

func TestBatchReassignmentRestartsWork(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	_, err := f.svc.Create(ctx, f.manager(), &types.CreateTaskRequest{
		Title:      "Task A",
		AssignedTo: "WB-002",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateByAssignee(ctx, f.manager(), "WB-002", &types.UpdateTasksByAssigneeRequest{
		NewAssignedTo: "WB-999",
	})
	require.ErrorIs(t, err, types.ErrValidation)

	modified, err := f.svc.UpdateByAssignee(ctx, f.manager(), "WB-002", &types.UpdateTasksByAssigneeRequest{
		NewAssignedTo: "WB-003",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), modified)

	moved, err := f.tasks.ListByAssignee(ctx, "Web Blaze", "WB-003")
	require.NoError(t, err)
	require.Len(t, moved, 1)
	require.Equal(t, types.TASK_STATUS_PENDING, moved[0].Status)
}

func TestDeleteTaskIsSoft(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	task, err := f.svc.Create(ctx, f.manager(), &types.CreateTaskRequest{
		Title:      "Obsolete",
		AssignedTo: "WB-002",
	})
	require.NoError(t, err)

	// A member cannot delete at all.
	require.ErrorIs(t, f.svc.Delete(ctx, f.member(), task.TaskID, nil), types.ErrForbidden)

	require.NoError(t, f.svc.Delete(ctx, f.manager(), task.TaskID, &types.DeleteTaskRequest{
		Reason: "scope cut",
	}))

	stored, err := f.tasks.GetByTaskID(ctx, "Web Blaze", task.TaskID)
	require.NoError(t, err)
	require.Equal(t, types.TASK_STATUS_DELETED, stored.Status)
	require.Equal(t, "scope cut", stored.DeletionReason)
}

func TestDeleteByAssigneeRequiresOriginalAssigner(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	_, err := f.svc.Create(ctx, f.manager(), &types.CreateTaskRequest{
		Title:      "Task A",
		AssignedTo: "WB-002",
	})
	require.NoError(t, err)

	// The lead did not assign these tasks and is neither owner nor admin.
	_, err = f.svc.DeleteByAssignee(ctx, f.lead(), "WB-002")
	require.ErrorIs(t, err, types.ErrForbidden)

	deleted, err := f.svc.DeleteByAssignee(ctx, f.manager(), "WB-002")
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	_, err = f.svc.DeleteByAssignee(ctx, f.manager(), "WB-002")
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestListAllScopesByRole(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture(t)

	// One task for a member, one for the lead.
	_, err := f.svc.Create(ctx, f.manager(), &types.CreateTaskRequest{
		Title:      "Member task",
		AssignedTo: "WB-002",
	})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.manager(), &types.CreateTaskRequest{
		Title:      "Lead task",
		AssignedTo: "WB-001",
	})
	require.NoError(t, err)

	all, err := f.svc.ListAll(ctx, owner("Web Blaze"))
	require.NoError(t, err)
	require.Len(t, all, 2)

	// A lead sees member tasks plus their own.
	leadView, err := f.svc.ListAll(ctx, f.lead())
	require.NoError(t, err)
	require.Len(t, leadView, 2)

	// A member sees only their own.
	memberView, err := f.svc.ListAll(ctx, f.member())
	require.NoError(t, err)
	require.Len(t, memberView, 1)
	require.Equal(t, "Member task", memberView[0].Title)
}
