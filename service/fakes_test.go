package service_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*types.User
	next  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*types.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *types.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	user.ID = fmt.Sprintf("user-%d", r.next)
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) find(match func(*types.User) bool) (*types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*types.User, error) {
	return r.find(func(u *types.User) bool { return u.ID == id })
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	return r.find(func(u *types.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) GetByCompanyName(ctx context.Context, companyName string) (*types.User, error) {
	return r.find(func(u *types.User) bool { return u.CompanyName == companyName })
}

func (r *fakeUserRepo) GetByCompanyDomain(ctx context.Context, domain string) (*types.User, error) {
	return r.find(func(u *types.User) bool { return u.CompanyDomain == domain })
}

func (r *fakeUserRepo) GetByCompanyID(ctx context.Context, companyID string) (*types.User, error) {
	return r.find(func(u *types.User) bool { return u.CompanyID == companyID })
}

func (r *fakeUserRepo) Update(ctx context.Context, user *types.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return types.ErrNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]*types.Employee
	next      int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*types.Employee)}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, employee *types.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	employee.ID = fmt.Sprintf("emp-%d", r.next)
	clone := *employee
	r.employees[employee.ID] = &clone
	return nil
}

func (r *fakeEmployeeRepo) find(match func(*types.Employee) bool) (*types.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if match(e) {
			clone := *e
			return &clone, nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *fakeEmployeeRepo) list(match func(*types.Employee) bool) []*types.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*types.Employee
	for _, e := range r.employees {
		if match(e) {
			clone := *e
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamMemberID < out[j].TeamMemberID })
	return out
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*types.Employee, error) {
	return r.find(func(e *types.Employee) bool { return e.ID == id })
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*types.Employee, error) {
	return r.find(func(e *types.Employee) bool { return e.Email == email })
}

func (r *fakeEmployeeRepo) GetByTeamMemberID(ctx context.Context, companyName, teamMemberID string) (*types.Employee, error) {
	return r.find(func(e *types.Employee) bool {
		return e.CompanyName == companyName && e.TeamMemberID == teamMemberID
	})
}

func (r *fakeEmployeeRepo) ListByCompany(ctx context.Context, companyName string) ([]*types.Employee, error) {
	return r.list(func(e *types.Employee) bool { return e.CompanyName == companyName }), nil
}

func (r *fakeEmployeeRepo) ListByRole(ctx context.Context, companyName, role string) ([]*types.Employee, error) {
	return r.list(func(e *types.Employee) bool {
		return e.CompanyName == companyName && e.Role == role
	}), nil
}

func (r *fakeEmployeeRepo) ListByTeamMemberIDs(ctx context.Context, companyName string, teamMemberIDs []string) ([]*types.Employee, error) {
	wanted := make(map[string]struct{}, len(teamMemberIDs))
	for _, id := range teamMemberIDs {
		wanted[id] = struct{}{}
	}
	return r.list(func(e *types.Employee) bool {
		_, ok := wanted[e.TeamMemberID]
		return e.CompanyName == companyName && ok
	}), nil
}

func (r *fakeEmployeeRepo) ListMemberIDs(ctx context.Context, companyName string) ([]string, error) {
	employees, _ := r.ListByCompany(ctx, companyName)
	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.TeamMemberID)
	}
	return ids, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, employee *types.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[employee.ID]; !ok {
		return types.ErrNotFound
	}
	clone := *employee
	r.employees[employee.ID] = &clone
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, companyName, teamMemberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.employees {
		if e.CompanyName == companyName && e.TeamMemberID == teamMemberID {
			delete(r.employees, id)
			return nil
		}
	}
	return types.ErrNotFound
}

func (r *fakeEmployeeRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, e := range r.employees {
		if e.MustChangePassword && e.PasswordExpiresAt != nil && e.PasswordExpiresAt.Before(now) {
			delete(r.employees, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeTeamRepo struct {
	mu    sync.Mutex
	teams map[string]*types.Team
	next  int
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[string]*types.Team)}
}

func (r *fakeTeamRepo) Create(ctx context.Context, team *types.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	team.ID = fmt.Sprintf("team-%d", r.next)
	clone := *team
	r.teams[team.ID] = &clone
	return nil
}

func (r *fakeTeamRepo) find(match func(*types.Team) bool) (*types.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, team := range r.teams {
		if match(team) {
			clone := *team
			return &clone, nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *fakeTeamRepo) GetByName(ctx context.Context, companyName, teamName string) (*types.Team, error) {
	return r.find(func(t *types.Team) bool {
		return t.CompanyName == companyName && t.TeamName == teamName
	})
}

func (r *fakeTeamRepo) GetByID(ctx context.Context, companyName, id string) (*types.Team, error) {
	return r.find(func(t *types.Team) bool {
		return t.CompanyName == companyName && t.ID == id
	})
}

func (r *fakeTeamRepo) ListByCompany(ctx context.Context, companyName string) ([]*types.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*types.Team
	for _, team := range r.teams {
		if team.CompanyName == companyName {
			clone := *team
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTeamRepo) Update(ctx context.Context, team *types.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[team.ID]; !ok {
		return types.ErrNotFound
	}
	clone := *team
	r.teams[team.ID] = &clone
	return nil
}

func (r *fakeTeamRepo) Delete(ctx context.Context, companyName, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	team, ok := r.teams[id]
	if !ok || team.CompanyName != companyName {
		return types.ErrNotFound
	}
	delete(r.teams, id)
	return nil
}

type fakeCounterRepo struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{seqs: make(map[string]int64)}
}

func (r *fakeCounterRepo) Next(ctx context.Context, companyName, kind string, seed repository.SeedFunc) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := companyName + "/" + kind
	if _, ok := r.seqs[key]; !ok {
		start, err := seed(ctx)
		if err != nil {
			return 0, err
		}
		r.seqs[key] = start
	}
	r.seqs[key]++
	return r.seqs[key], nil
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*types.Project
	next     int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*types.Project)}
}

func cloneProject(p *types.Project) *types.Project {
	clone := *p
	clone.Phases = make([]types.Phase, len(p.Phases))
	copy(clone.Phases, p.Phases)
	for i := range clone.Phases {
		subtasks := make([]types.Subtask, len(p.Phases[i].Subtasks))
		copy(subtasks, p.Phases[i].Subtasks)
		clone.Phases[i].Subtasks = subtasks
	}
	return &clone
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *types.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	project.ID = fmt.Sprintf("proj-%d", r.next)
	r.projects[project.ID] = cloneProject(project)
	return nil
}

func (r *fakeProjectRepo) find(match func(*types.Project) bool) (*types.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.projects {
		if match(p) {
			return cloneProject(p), nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *fakeProjectRepo) GetByProjectID(ctx context.Context, companyName, projectID string) (*types.Project, error) {
	return r.find(func(p *types.Project) bool {
		return p.CompanyName == companyName && p.ProjectID == projectID
	})
}

func (r *fakeProjectRepo) GetByName(ctx context.Context, companyName, projectName string) (*types.Project, error) {
	return r.find(func(p *types.Project) bool {
		return p.CompanyName == companyName && p.ProjectName == projectName
	})
}

func (r *fakeProjectRepo) listMatching(match func(*types.Project) bool) []*types.Project {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*types.Project
	for _, p := range r.projects {
		if match(p) {
			out = append(out, cloneProject(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProjectID < out[j].ProjectID })
	return out
}

func (r *fakeProjectRepo) List(ctx context.Context, companyName string) ([]*types.Project, error) {
	return r.listMatching(func(p *types.Project) bool {
		return p.CompanyName == companyName && p.ProjectStatus != types.PROJECT_STATUS_DELETED
	}), nil
}

func (r *fakeProjectRepo) ListByMember(ctx context.Context, companyName, teamMemberID string) ([]*types.Project, error) {
	return r.listMatching(func(p *types.Project) bool {
		if p.CompanyName != companyName || p.ProjectStatus == types.PROJECT_STATUS_DELETED {
			return false
		}
		if p.ProjectLead == teamMemberID {
			return true
		}
		for _, m := range p.TeamMembers {
			if m == teamMemberID {
				return true
			}
		}
		return false
	}), nil
}

func (r *fakeProjectRepo) ListProjectIDs(ctx context.Context, companyName string) ([]string, error) {
	projects := r.listMatching(func(p *types.Project) bool { return p.CompanyName == companyName })
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ProjectID)
	}
	return ids, nil
}

func (r *fakeProjectRepo) FindByPhaseID(ctx context.Context, companyName, phaseID string) (*types.Project, error) {
	return r.find(func(p *types.Project) bool {
		if p.CompanyName != companyName {
			return false
		}
		for _, ph := range p.Phases {
			if ph.PhaseID == phaseID {
				return true
			}
		}
		return false
	})
}

func (r *fakeProjectRepo) FindBySubtaskID(ctx context.Context, companyName, subtaskID string) (*types.Project, error) {
	return r.find(func(p *types.Project) bool {
		if p.CompanyName != companyName {
			return false
		}
		_, st := p.FindSubtask(subtaskID)
		return st != nil
	})
}

func (r *fakeProjectRepo) TotalPhases(ctx context.Context, companyName string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, p := range r.projects {
		if p.CompanyName == companyName {
			total += int64(len(p.Phases))
		}
	}
	return total, nil
}

func (r *fakeProjectRepo) Replace(ctx context.Context, project *types.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[project.ID]; !ok {
		return types.ErrNotFound
	}
	r.projects[project.ID] = cloneProject(project)
	return nil
}

func (r *fakeProjectRepo) PushSubtask(ctx context.Context, companyName, projectID, phaseID string, subtask types.Subtask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.projects {
		if p.CompanyName != companyName || p.ProjectID != projectID {
			continue
		}
		for i := range p.Phases {
			if p.Phases[i].PhaseID == phaseID {
				p.Phases[i].Subtasks = append(p.Phases[i].Subtasks, subtask)
				return nil
			}
		}
	}
	return types.ErrNotFound
}

func (r *fakeProjectRepo) PullSubtask(ctx context.Context, companyName, projectID, subtaskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.projects {
		if p.CompanyName != companyName || p.ProjectID != projectID {
			continue
		}
		for i := range p.Phases {
			for j := range p.Phases[i].Subtasks {
				if p.Phases[i].Subtasks[j].SubtaskID == subtaskID {
					p.Phases[i].Subtasks = append(p.Phases[i].Subtasks[:j], p.Phases[i].Subtasks[j+1:]...)
					return nil
				}
			}
		}
	}
	return types.ErrNotFound
}

func (r *fakeProjectRepo) UpdateSubtaskStatus(ctx context.Context, companyName, projectID, subtaskID, status string, now time.Time) error {
	return r.UpdateSubtaskFields(ctx, companyName, projectID, subtaskID, bson.M{
		"phases.$[].subtasks.$[st].status":    status,
		"phases.$[].subtasks.$[st].updatedAt": now,
	})
}

func (r *fakeProjectRepo) UpdateSubtaskFields(ctx context.Context, companyName, projectID, subtaskID string, fields bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.projects {
		if p.CompanyName != companyName || p.ProjectID != projectID {
			continue
		}
		_, st := p.FindSubtask(subtaskID)
		if st == nil {
			return types.ErrNotFound
		}
		for path, value := range fields {
			key := path[strings.LastIndex(path, ".")+1:]
			switch key {
			case "status":
				st.Status = value.(string)
			case "subtask_title":
				st.SubtaskTitle = value.(string)
			case "description":
				st.Description = value.(string)
			case "assigned_member":
				st.AssignedMember = value.(string)
			case "images":
				st.Images = value.([]string)
			case "updatedAt":
				st.UpdatedAt = value.(time.Time)
			}
		}
		return nil
	}
	return types.ErrNotFound
}

func (r *fakeProjectRepo) Delete(ctx context.Context, companyName, projectID, requireStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.projects {
		if p.CompanyName == companyName && p.ProjectID == projectID {
			if requireStatus != "" && p.ProjectStatus != requireStatus {
				return types.ErrNotFound
			}
			delete(r.projects, id)
			return nil
		}
	}
	return types.ErrNotFound
}

func (r *fakeProjectRepo) ListDeletedBefore(ctx context.Context, cutoff time.Time) ([]*types.Project, error) {
	return r.listMatching(func(p *types.Project) bool {
		return p.ProjectStatus == types.PROJECT_STATUS_DELETED &&
			p.DeletedAt != nil && p.DeletedAt.Before(cutoff)
	}), nil
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*types.Task
	next  int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*types.Task)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *types.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	task.ID = fmt.Sprintf("task-%d", r.next)
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *fakeTaskRepo) GetByTaskID(ctx context.Context, companyName, taskID string) (*types.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tasks {
		if t.CompanyName == companyName && t.TaskID == taskID {
			clone := *t
			return &clone, nil
		}
	}
	return nil, types.ErrNotFound
}

func (r *fakeTaskRepo) listMatching(match func(*types.Task) bool) []*types.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*types.Task
	for _, t := range r.tasks {
		if match(t) {
			clone := *t
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskID < out[j].TaskID })
	return out
}

func (r *fakeTaskRepo) ListByCompany(ctx context.Context, companyName string) ([]*types.Task, error) {
	return r.listMatching(func(t *types.Task) bool { return t.CompanyName == companyName }), nil
}

func (r *fakeTaskRepo) ListByAssignee(ctx context.Context, companyName, teamMemberID string) ([]*types.Task, error) {
	return r.listMatching(func(t *types.Task) bool {
		return t.CompanyName == companyName && t.AssignedTo == teamMemberID
	}), nil
}

func (r *fakeTaskRepo) ListByAssignees(ctx context.Context, companyName string, teamMemberIDs []string) ([]*types.Task, error) {
	wanted := make(map[string]struct{}, len(teamMemberIDs))
	for _, id := range teamMemberIDs {
		wanted[id] = struct{}{}
	}
	return r.listMatching(func(t *types.Task) bool {
		_, ok := wanted[t.AssignedTo]
		return t.CompanyName == companyName && ok
	}), nil
}

func (r *fakeTaskRepo) ListByStatuses(ctx context.Context, companyName string, statuses []string) ([]*types.Task, error) {
	wanted := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		wanted[s] = struct{}{}
	}
	return r.listMatching(func(t *types.Task) bool {
		_, ok := wanted[t.Status]
		return t.CompanyName == companyName && ok
	}), nil
}

func (r *fakeTaskRepo) ListByMemberInProject(ctx context.Context, companyName, projectID, teamMemberID string) ([]*types.Task, error) {
	return r.listMatching(func(t *types.Task) bool {
		return t.CompanyName == companyName && t.Project == projectID && t.AssignedTo == teamMemberID
	}), nil
}

func (r *fakeTaskRepo) ListTaskIDs(ctx context.Context, companyName string) ([]string, error) {
	tasks := r.listMatching(func(t *types.Task) bool { return t.CompanyName == companyName })
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.TaskID)
	}
	return ids, nil
}

func applyTaskFields(t *types.Task, fields bson.M) {
	for key, value := range fields {
		switch key {
		case "title":
			t.Title = value.(string)
		case "description":
			t.Description = value.(string)
		case "status":
			t.Status = value.(string)
		case "assignedTo":
			t.AssignedTo = value.(string)
		case "priority":
			t.Priority = value.(string)
		case "dueDate":
			t.DueDate = value.(string)
		case "project":
			t.Project = value.(string)
		case "deletionReason":
			t.DeletionReason = value.(string)
		case "completedAt":
			at := value.(time.Time)
			t.CompletedAt = &at
		}
	}
}

func (r *fakeTaskRepo) UpdateByTaskID(ctx context.Context, companyName, taskID string, fields bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tasks {
		if t.CompanyName == companyName && t.TaskID == taskID {
			applyTaskFields(t, fields)
			return nil
		}
	}
	return types.ErrNotFound
}

func (r *fakeTaskRepo) UpdateMany(ctx context.Context, companyName, teamMemberID string, taskIDs []string, fields bson.M) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[string]struct{}, len(taskIDs))
	for _, id := range taskIDs {
		wanted[id] = struct{}{}
	}
	var modified int64
	for _, t := range r.tasks {
		if t.CompanyName != companyName || t.AssignedTo != teamMemberID {
			continue
		}
		if _, ok := wanted[t.TaskID]; !ok {
			continue
		}
		applyTaskFields(t, fields)
		modified++
	}
	return modified, nil
}

func (r *fakeTaskRepo) PushCommentMany(ctx context.Context, companyName string, taskIDs []string, comment types.TaskComment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[string]struct{}, len(taskIDs))
	for _, id := range taskIDs {
		wanted[id] = struct{}{}
	}
	for _, t := range r.tasks {
		if t.CompanyName != companyName {
			continue
		}
		if _, ok := wanted[t.TaskID]; ok {
			t.Comments = append(t.Comments, comment)
		}
	}
	return nil
}

func (r *fakeTaskRepo) DeleteByAssignee(ctx context.Context, companyName, teamMemberID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, t := range r.tasks {
		if t.CompanyName == companyName && t.AssignedTo == teamMemberID {
			delete(r.tasks, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeActivityRepo struct {
	mu      sync.Mutex
	entries []*types.Activity
}

func (r *fakeActivityRepo) Create(ctx context.Context, activity *types.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, activity)
	return nil
}

func (r *fakeActivityRepo) Recent(ctx context.Context, companyName string, limit int64) ([]*types.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*types.Activity
	for i := len(r.entries) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if r.entries[i].CompanyName == companyName {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

type sentEmail struct {
	kind string
	to   string
	body string
}

type fakeEmailService struct {
	mu   sync.Mutex
	sent []sentEmail
}

func (s *fakeEmailService) SendWelcome(to, firstName string) {
	s.record("welcome", to, firstName)
}

func (s *fakeEmailService) SendEmployeeWelcome(to, name, teamMemberID, tempPassword string, expiresAt time.Time) {
	s.record("employee-welcome", to, tempPassword)
}

func (s *fakeEmailService) SendOTP(to, name, code string) {
	s.record("otp", to, code)
}

func (s *fakeEmailService) SendLoginNotification(to, name, ipAddress, userAgent string, at time.Time) {
	s.record("login-notification", to, ipAddress)
}

func (s *fakeEmailService) record(kind, to, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentEmail{kind: kind, to: to, body: body})
}

func (s *fakeEmailService) last() (sentEmail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return sentEmail{}, false
	}
	return s.sent[len(s.sent)-1], true
}

type fakeImageService struct {
	mu       sync.Mutex
	uploaded int
	deleted  []string
	failNext bool
}

func (s *fakeImageService) StoreAll(ctx context.Context, images [][]byte) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext {
		s.failNext = false
		return nil, types.Validationf("unreadable image")
	}
	urls := make([]string, 0, len(images))
	for range images {
		s.uploaded++
		urls = append(urls, fmt.Sprintf("https://img.test/%d.jpg", s.uploaded))
	}
	return urls, nil
}

func (s *fakeImageService) DeleteMany(ctx context.Context, urls []string) types.ImageDeleteResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, urls...)
	return types.ImageDeleteResult{DeletedCount: len(urls)}
}

func newActivity() service.ActivityService {
	return service.NewActivityService(&fakeActivityRepo{}, nil)
}

func owner(company string) *types.User {
	return &types.User{
		ID:          "user-owner",
		CompanyName: company,
		FirstName:   "Alma",
		LastName:    "Reyes",
		Email:       "alma@" + strings.ToLower(strings.ReplaceAll(company, " ", "")) + ".test",
		Role:        types.ROLE_OWNER,
	}
}

func employee(company, memberID, role string) *types.Employee {
	return &types.Employee{
		ID:           "emp-" + memberID,
		Name:         "Employee " + memberID,
		Email:        strings.ToLower(memberID) + "@" + strings.ToLower(strings.ReplaceAll(company, " ", "")) + ".test",
		TeamMemberID: memberID,
		CompanyName:  company,
		Role:         role,
	}
}
