package types

const (
	ROLE_OWNER       = "owner"
	ROLE_ADMIN       = "admin"
	ROLE_MANAGER     = "manager"
	ROLE_TEAM_LEAD   = "teamLead"
	ROLE_TEAM_MEMBER = "teamMember"
)

const (
	PROJECT_STATUS_ONGOING   = "ongoing"
	PROJECT_STATUS_COMPLETED = "completed"
	PROJECT_STATUS_ON_HOLD   = "on hold"
	PROJECT_STATUS_DELETED   = "deleted"
)

const (
	PHASE_STATUS_PENDING     = "Pending"
	PHASE_STATUS_IN_PROGRESS = "In Progress"
	PHASE_STATUS_COMPLETED   = "Completed"
)

const (
	TASK_STATUS_PENDING      = "pending"
	TASK_STATUS_VERIFICATION = "verification"
	TASK_STATUS_IN_PROGRESS  = "in-progress"
	TASK_STATUS_COMPLETED    = "completed"
	TASK_STATUS_DELETED      = "deleted"
)

const (
	TASK_PRIORITY_LOW      = "low"
	TASK_PRIORITY_MEDIUM   = "medium"
	TASK_PRIORITY_HIGH     = "high"
	TASK_PRIORITY_CRITICAL = "critical"
)

const (
	ACTIVITY_TYPE_EMPLOYEE = "Employee"
	ACTIVITY_TYPE_TEAM     = "Team"
	ACTIVITY_TYPE_PROJECT  = "Project"
	ACTIVITY_TYPE_TASK     = "Task"
	ACTIVITY_TYPE_SETTINGS = "Settings"
)

const (
	ACTIVITY_ACTION_ADD              = "add"
	ACTIVITY_ACTION_EDIT             = "edit"
	ACTIVITY_ACTION_DELETE           = "delete"
	ACTIVITY_ACTION_PERMANENT_DELETE = "permanently_delete"
)

// Sentinel value for subtasks that have no team resolved.
const TEAM_NOT_ASSIGNED = "Not assigned"

// Counter kinds for tenant-scoped identifier sequences.
const (
	COUNTER_KIND_EMPLOYEE = "employee"
	COUNTER_KIND_PROJECT  = "project"
	COUNTER_KIND_PHASE    = "phase"
	COUNTER_KIND_TASK     = "task"
)

// MAX_SUBTASK_IMAGES bounds the attachment batch on a single subtask.
const MAX_SUBTASK_IMAGES = 2

func ValidRole(role string) bool {
	switch role {
	case ROLE_ADMIN, ROLE_MANAGER, ROLE_TEAM_LEAD, ROLE_TEAM_MEMBER:
		return true
	}
	return false
}

func ValidPhaseStatus(status string) bool {
	switch status {
	case PHASE_STATUS_PENDING, PHASE_STATUS_IN_PROGRESS, PHASE_STATUS_COMPLETED:
		return true
	}
	return false
}

func ValidTaskStatus(status string) bool {
	switch status {
	case TASK_STATUS_PENDING, TASK_STATUS_VERIFICATION, TASK_STATUS_IN_PROGRESS, TASK_STATUS_COMPLETED:
		return true
	}
	return false
}

func ValidTaskPriority(priority string) bool {
	switch priority {
	case TASK_PRIORITY_LOW, TASK_PRIORITY_MEDIUM, TASK_PRIORITY_HIGH, TASK_PRIORITY_CRITICAL:
		return true
	}
	return false
}
