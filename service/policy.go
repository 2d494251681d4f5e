package service

import (
	"github.com/webblaze/projectflow-be/types"
)

// Role checks for every mutating operation. Each denial is ErrForbidden
// with a description of the rule that fired; callers never translate
// these into not-found.

func canManage(role string) bool {
	switch role {
	case types.ROLE_OWNER, types.ROLE_ADMIN, types.ROLE_MANAGER:
		return true
	}
	return false
}

func requireEmployeeManager(p types.Principal) error {
	if !canManage(p.AccountRole()) {
		return types.Forbiddenf("role %q cannot manage employees", p.AccountRole())
	}
	return nil
}

func requireTeamManager(p types.Principal) error {
	if !canManage(p.AccountRole()) {
		return types.Forbiddenf("role %q cannot manage teams", p.AccountRole())
	}
	return nil
}

func requireProjectManager(p types.Principal) error {
	if !canManage(p.AccountRole()) {
		return types.Forbiddenf("role %q cannot manage projects", p.AccountRole())
	}
	return nil
}

// requireTaskCreator enforces the assignment matrix: owners, admins,
// managers and team leads may hand out tasks, and nobody may assign a
// task to themselves.
func requireTaskCreator(p types.Principal, assignedTo string) error {
	switch p.AccountRole() {
	case types.ROLE_OWNER, types.ROLE_ADMIN, types.ROLE_MANAGER, types.ROLE_TEAM_LEAD:
	default:
		return types.Forbiddenf("role %q cannot create tasks", p.AccountRole())
	}
	if p.MemberID() != "" && p.MemberID() == assignedTo {
		return types.Forbiddenf("tasks cannot be self-assigned")
	}
	return nil
}

// requireTaskEditor enforces the cross-role edit restrictions using the
// assigner-role snapshot taken at creation time.
func requireTaskEditor(p types.Principal, task *types.Task) error {
	switch p.AccountRole() {
	case types.ROLE_OWNER:
		return nil
	case types.ROLE_ADMIN, types.ROLE_MANAGER:
		if task.AssignedByRole == types.ROLE_OWNER {
			return types.Forbiddenf("role %q cannot edit tasks assigned by the owner", p.AccountRole())
		}
		return nil
	case types.ROLE_TEAM_LEAD:
		if task.AssignedByRole == types.ROLE_OWNER || task.AssignedByRole == types.ROLE_ADMIN {
			return types.Forbiddenf("team leads cannot edit tasks assigned by %q", task.AssignedByRole)
		}
		if task.AssignedTo == p.MemberID() {
			return types.Forbiddenf("team leads cannot edit their own tasks")
		}
		return nil
	case types.ROLE_TEAM_MEMBER:
		if task.AssignedTo != p.MemberID() {
			return types.Forbiddenf("team members can only update their own tasks")
		}
		return nil
	}
	return types.Forbiddenf("role %q cannot edit tasks", p.AccountRole())
}

// statusOnlyEditor reports whether the principal may change nothing but
// the status field on a task it is allowed to touch.
func statusOnlyEditor(p types.Principal) bool {
	return p.AccountRole() == types.ROLE_TEAM_MEMBER
}

// requireTaskDeleter enforces the deletion matrix against the assignee's
// current role.
func requireTaskDeleter(p types.Principal, task *types.Task, assigneeRole string) error {
	switch p.AccountRole() {
	case types.ROLE_OWNER, types.ROLE_ADMIN:
		return nil
	case types.ROLE_MANAGER:
		if assigneeRole != types.ROLE_TEAM_LEAD && assigneeRole != types.ROLE_TEAM_MEMBER {
			return types.Forbiddenf("managers can only delete tasks assigned to team leads or team members")
		}
		return nil
	case types.ROLE_TEAM_LEAD:
		if task.AssignedTo == p.MemberID() {
			return types.Forbiddenf("team leads cannot delete their own tasks")
		}
		if assigneeRole != types.ROLE_TEAM_MEMBER {
			return types.Forbiddenf("team leads can only delete tasks assigned to team members")
		}
		return nil
	}
	return types.Forbiddenf("role %q cannot delete tasks", p.AccountRole())
}

// requireBatchDeleter gates deleting every task of an assignee: the
// owner, an admin, or the person who originally handed the tasks out.
func requireBatchDeleter(p types.Principal, assignedBy string) error {
	switch p.AccountRole() {
	case types.ROLE_OWNER, types.ROLE_ADMIN:
		return nil
	}
	if p.MemberID() != "" && p.MemberID() == assignedBy {
		return nil
	}
	if p.AccountID() == assignedBy {
		return nil
	}
	return types.Forbiddenf("only the owner, an admin, or the original assigner can delete these tasks")
}
