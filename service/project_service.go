package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
)

// ProjectService owns the project aggregate: the document itself plus
// the embedded phases, subtasks and phase comments.
type ProjectService interface {
	Create(ctx context.Context, actor types.Principal, req *types.CreateProjectRequest) (*types.Project, error)
	Get(ctx context.Context, actor types.Principal, projectID string) (*types.Project, error)
	List(ctx context.Context, actor types.Principal) ([]*types.Project, error)
	ListByMember(ctx context.Context, actor types.Principal, teamMemberID string) ([]*types.Project, error)
	Update(ctx context.Context, actor types.Principal, projectID string, req *types.UpdateProjectRequest) (*types.Project, error)
	SoftDelete(ctx context.Context, actor types.Principal, projectID string) error
	PermanentDelete(ctx context.Context, actor types.Principal, projectID string) (types.ImageDeleteResult, error)

	AddPhase(ctx context.Context, actor types.Principal, req *types.AddPhaseRequest) (*types.Phase, error)
	UpdatePhaseStatus(ctx context.Context, actor types.Principal, req *types.UpdatePhaseStatusRequest) (*types.Phase, error)
	DeletePhase(ctx context.Context, actor types.Principal, req *types.DeletePhaseRequest) error
	ListPhases(ctx context.Context, actor types.Principal, projectID string) ([]types.Phase, error)
	AddPhaseComment(ctx context.Context, actor types.Principal, projectID, phaseID string, req *types.AddPhaseCommentRequest) (*types.Comment, error)
	ListPhaseComments(ctx context.Context, actor types.Principal, projectID, phaseID string) ([]types.PhaseCommentView, error)

	AddSubtask(ctx context.Context, actor types.Principal, projectID string, req *types.AddSubtaskRequest) (*types.Subtask, error)
	EditSubtask(ctx context.Context, actor types.Principal, projectID string, req *types.EditSubtaskRequest) (*types.Subtask, error)
	UpdateSubtaskStatus(ctx context.Context, actor types.Principal, projectID string, req *types.UpdateSubtaskStatusRequest) error
	DeleteSubtask(ctx context.Context, actor types.Principal, projectID, subtaskID string) error
	ListSubtasks(ctx context.Context, actor types.Principal, projectID string) ([]types.SubtaskWithPhase, error)
	SubtaskActivity(ctx context.Context, actor types.Principal, projectID string) ([]types.SubtaskActivityEntry, error)
}

type projectService struct {
	projects   repository.ProjectRepo
	teams      repository.TeamRepo
	employees  repository.EmployeeRepo
	principals repository.PrincipalRepo
	ids        IdentifierService
	images     ImageService
	activity   ActivityService
}

func NewProjectService(
	projects repository.ProjectRepo,
	teams repository.TeamRepo,
	employees repository.EmployeeRepo,
	principals repository.PrincipalRepo,
	ids IdentifierService,
	images ImageService,
	activity ActivityService,
) ProjectService {
	return &projectService{
		projects:   projects,
		teams:      teams,
		employees:  employees,
		principals: principals,
		ids:        ids,
		images:     images,
		activity:   activity,
	}
}

func (s *projectService) requireRole(ctx context.Context, companyName, memberID, role string) error {
	employee, err := s.employees.GetByTeamMemberID(ctx, companyName, memberID)
	if errors.Is(err, types.ErrNotFound) {
		return types.Validationf("no employee with id %s", memberID)
	}
	if err != nil {
		return err
	}
	if employee.Role != role {
		return types.Validationf("%s is not a %s", memberID, role)
	}
	return nil
}

func (s *projectService) Create(ctx context.Context, actor types.Principal, req *types.CreateProjectRequest) (*types.Project, error) {
	if err := requireProjectManager(actor); err != nil {
		return nil, err
	}
	if req.ProjectName == "" || req.ProjectLead == "" {
		return nil, types.Validationf("project_name and project_lead are required")
	}

	if _, err := s.projects.GetByName(ctx, actor.Company(), req.ProjectName); err == nil {
		return nil, types.Conflictf("project %q already exists", req.ProjectName)
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	if err := s.requireRole(ctx, actor.Company(), req.ProjectLead, types.ROLE_TEAM_LEAD); err != nil {
		return nil, err
	}
	members := dedupe(req.TeamMembers)
	for _, m := range members {
		if err := s.requireRole(ctx, actor.Company(), m, types.ROLE_TEAM_MEMBER); err != nil {
			return nil, err
		}
	}

	projectID, err := s.ids.NextProjectID(ctx, actor.Company())
	if err != nil {
		return nil, err
	}

	status := req.ProjectStatus
	if status == "" {
		status = types.PROJECT_STATUS_ONGOING
	}

	now := time.Now()
	project := &types.Project{
		ProjectID:          projectID,
		ProjectName:        req.ProjectName,
		ClientName:         req.ClientName,
		ProjectDescription: req.ProjectDescription,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		OriginalEndDate:    req.EndDate,
		ProjectStatus:      status,
		ProjectLead:        req.ProjectLead,
		TeamMembers:        members,
		TeamID:             req.TeamID,
		CompanyName:        actor.Company(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_PROJECT, types.ACTIVITY_ACTION_ADD,
		project.ProjectName, fmt.Sprintf("project %s created", projectID), actor.DisplayName())
	return project, nil
}

func (s *projectService) Get(ctx context.Context, actor types.Principal, projectID string) (*types.Project, error) {
	return s.projects.GetByProjectID(ctx, actor.Company(), projectID)
}

func (s *projectService) List(ctx context.Context, actor types.Principal) ([]*types.Project, error) {
	return s.projects.List(ctx, actor.Company())
}

func (s *projectService) ListByMember(ctx context.Context, actor types.Principal, teamMemberID string) ([]*types.Project, error) {
	return s.projects.ListByMember(ctx, actor.Company(), teamMemberID)
}

func (s *projectService) Update(ctx context.Context, actor types.Principal, projectID string, req *types.UpdateProjectRequest) (*types.Project, error) {
	if err := requireProjectManager(actor); err != nil {
		return nil, err
	}
	project, err := s.projects.GetByProjectID(ctx, actor.Company(), projectID)
	if err != nil {
		return nil, err
	}

	if req.ProjectName != "" {
		project.ProjectName = req.ProjectName
	}
	if req.ClientName != "" {
		project.ClientName = req.ClientName
	}
	if req.ProjectDescription != "" {
		project.ProjectDescription = req.ProjectDescription
	}
	if req.StartDate != "" {
		project.StartDate = req.StartDate
	}
	if req.EndDate != "" {
		project.EndDate = req.EndDate
	}
	if req.TeamID != "" {
		project.TeamID = req.TeamID
	}
	if req.ProjectLead != "" && req.ProjectLead != project.ProjectLead {
		if err := s.requireRole(ctx, actor.Company(), req.ProjectLead, types.ROLE_TEAM_LEAD); err != nil {
			return nil, err
		}
		project.ProjectLead = req.ProjectLead
	}
	for _, m := range req.AddMembers {
		if err := s.requireRole(ctx, actor.Company(), m, types.ROLE_TEAM_MEMBER); err != nil {
			return nil, err
		}
		project.TeamMembers = append(project.TeamMembers, m)
	}
	project.TeamMembers = dedupe(project.TeamMembers)
	if len(req.RemoveMembers) > 0 {
		drop := make(map[string]struct{}, len(req.RemoveMembers))
		for _, m := range req.RemoveMembers {
			drop[m] = struct{}{}
		}
		kept := project.TeamMembers[:0]
		for _, m := range project.TeamMembers {
			if _, ok := drop[m]; !ok {
				kept = append(kept, m)
			}
		}
		project.TeamMembers = kept
	}
	if req.ProjectStatus != "" {
		// Completing a project with a pushed-out end date keeps a note
		// recording the slip against the original schedule.
		if req.ProjectStatus == types.PROJECT_STATUS_COMPLETED &&
			project.OriginalEndDate != "" && project.EndDate != project.OriginalEndDate {
			project.CompletionNote = fmt.Sprintf("completed with end date %s, originally %s",
				project.EndDate, project.OriginalEndDate)
		}
		project.ProjectStatus = req.ProjectStatus
	}

	if err := s.projects.Replace(ctx, project); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_PROJECT, types.ACTIVITY_ACTION_EDIT,
		project.ProjectName, fmt.Sprintf("project %s updated", projectID), actor.DisplayName())
	return project, nil
}

func (s *projectService) SoftDelete(ctx context.Context, actor types.Principal, projectID string) error {
	if err := requireProjectManager(actor); err != nil {
		return err
	}
	project, err := s.projects.GetByProjectID(ctx, actor.Company(), projectID)
	if err != nil {
		return err
	}
	project.SoftDelete(time.Now())
	if err := s.projects.Replace(ctx, project); err != nil {
		return err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_PROJECT, types.ACTIVITY_ACTION_DELETE,
		project.ProjectName, fmt.Sprintf("project %s moved to trash", projectID), actor.DisplayName())
	return nil
}

func (s *projectService) PermanentDelete(ctx context.Context, actor types.Principal, projectID string) (types.ImageDeleteResult, error) {
	if err := requireProjectManager(actor); err != nil {
		return types.ImageDeleteResult{}, err
	}
	project, err := s.projects.GetByProjectID(ctx, actor.Company(), projectID)
	if err != nil {
		return types.ImageDeleteResult{}, err
	}

	result := s.images.DeleteMany(ctx, project.ImageURLs())
	if err := s.projects.Delete(ctx, actor.Company(), projectID, ""); err != nil {
		return result, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_PROJECT, types.ACTIVITY_ACTION_PERMANENT_DELETE,
		project.ProjectName, fmt.Sprintf("project %s permanently deleted", projectID), actor.DisplayName())
	return result, nil
}

func (s *projectService) resolveProject(ctx context.Context, companyName, projectID, projectName string) (*types.Project, error) {
	if projectID != "" {
		return s.projects.GetByProjectID(ctx, companyName, projectID)
	}
	if projectName != "" {
		return s.projects.GetByName(ctx, companyName, projectName)
	}
	return nil, types.Validationf("projectId or projectName is required")
}

// resolvePhaseProject accepts a phase id on its own and locates the
// containing project from it.
func (s *projectService) resolvePhaseProject(ctx context.Context, companyName, projectID, projectName, phaseID string) (*types.Project, error) {
	if projectID == "" && projectName == "" && phaseID != "" {
		return s.projects.FindByPhaseID(ctx, companyName, phaseID)
	}
	return s.resolveProject(ctx, companyName, projectID, projectName)
}

// resolveSubtaskProject locates the containing project from the subtask
// id when no project id was given.
func (s *projectService) resolveSubtaskProject(ctx context.Context, companyName, projectID, subtaskID string) (*types.Project, error) {
	if projectID == "" {
		if subtaskID == "" {
			return nil, types.Validationf("subtask_id is required")
		}
		return s.projects.FindBySubtaskID(ctx, companyName, subtaskID)
	}
	return s.projects.GetByProjectID(ctx, companyName, projectID)
}

func (s *projectService) AddPhase(ctx context.Context, actor types.Principal, req *types.AddPhaseRequest) (*types.Phase, error) {
	if req.Title == "" {
		return nil, types.Validationf("title is required")
	}
	project, err := s.resolveProject(ctx, actor.Company(), req.ProjectID, req.ProjectName)
	if err != nil {
		return nil, err
	}

	phaseID, err := s.ids.NextPhaseID(ctx, actor.Company())
	if err != nil {
		return nil, err
	}
	phase := types.Phase{
		PhaseID:     phaseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      types.PHASE_STATUS_PENDING,
	}
	project.AddPhase(phase)
	if err := s.projects.Replace(ctx, project); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_PROJECT, types.ACTIVITY_ACTION_ADD,
		project.ProjectName, fmt.Sprintf("phase %q added", req.Title), actor.DisplayName())
	return &phase, nil
}

func (s *projectService) UpdatePhaseStatus(ctx context.Context, actor types.Principal, req *types.UpdatePhaseStatusRequest) (*types.Phase, error) {
	if !types.ValidPhaseStatus(req.Status) {
		return nil, types.Validationf("invalid phase status %q", req.Status)
	}
	project, err := s.resolvePhaseProject(ctx, actor.Company(), req.ProjectID, req.ProjectName, req.PhaseID)
	if err != nil {
		return nil, err
	}

	phase := project.FindPhase(req.PhaseID, req.PhaseTitle)
	if phase == nil {
		return nil, types.NotFoundf("phase not found")
	}
	phase.Status = req.Status
	if err := s.projects.Replace(ctx, project); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_PROJECT, types.ACTIVITY_ACTION_EDIT,
		project.ProjectName, fmt.Sprintf("phase %q set to %s", phase.Title, req.Status), actor.DisplayName())
	return phase, nil
}

func (s *projectService) DeletePhase(ctx context.Context, actor types.Principal, req *types.DeletePhaseRequest) error {
	project, err := s.resolvePhaseProject(ctx, actor.Company(), req.ProjectID, req.ProjectName, req.PhaseID)
	if err != nil {
		return err
	}
	if !project.RemovePhase(req.PhaseID, req.Title) {
		return types.NotFoundf("phase not found")
	}
	if err := s.projects.Replace(ctx, project); err != nil {
		return err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_PROJECT, types.ACTIVITY_ACTION_DELETE,
		project.ProjectName, "phase deleted", actor.DisplayName())
	return nil
}

func (s *projectService) ListPhases(ctx context.Context, actor types.Principal, projectID string) ([]types.Phase, error) {
	project, err := s.projects.GetByProjectID(ctx, actor.Company(), projectID)
	if err != nil {
		return nil, err
	}
	return project.Phases, nil
}

func (s *projectService) AddPhaseComment(ctx context.Context, actor types.Principal, projectID, phaseID string, req *types.AddPhaseCommentRequest) (*types.Comment, error) {
	if req.Text == "" {
		return nil, types.Validationf("text is required")
	}
	project, err := s.projects.GetByProjectID(ctx, actor.Company(), projectID)
	if err != nil {
		return nil, err
	}
	phase := project.FindPhase(phaseID, "")
	if phase == nil {
		return nil, types.NotFoundf("phase not found")
	}

	comment := types.Comment{
		Text:        req.Text,
		CommentedBy: actor.AccountID(),
		Timestamp:   time.Now(),
	}
	phase.Comments = append(phase.Comments, comment)
	if err := s.projects.Replace(ctx, project); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListPhaseComments resolves each commenter's display name at read time,
// so renames show up retroactively.
func (s *projectService) ListPhaseComments(ctx context.Context, actor types.Principal, projectID, phaseID string) ([]types.PhaseCommentView, error) {
	project, err := s.projects.GetByProjectID(ctx, actor.Company(), projectID)
	if err != nil {
		return nil, err
	}
	phase := project.FindPhase(phaseID, "")
	if phase == nil {
		return nil, types.NotFoundf("phase not found")
	}

	names := make(map[string]string)
	views := make([]types.PhaseCommentView, 0, len(phase.Comments))
	for _, c := range phase.Comments {
		name, ok := names[c.CommentedBy]
		if !ok {
			if p, err := s.principals.FindByID(ctx, c.CommentedBy); err == nil {
				name = p.DisplayName()
			} else {
				name = "Unknown"
			}
			names[c.CommentedBy] = name
		}
		views = append(views, types.PhaseCommentView{
			Text:        c.Text,
			CommentedBy: name,
			Timestamp:   c.Timestamp.Format(time.RFC3339),
		})
	}
	return views, nil
}

// assignedTeam back-fills a subtask's team from the project's linked
// team when the request leaves it blank.
func (s *projectService) assignedTeam(ctx context.Context, project *types.Project, requested string) string {
	if requested != "" {
		return requested
	}
	if project.TeamID != "" {
		if team, err := s.teams.GetByID(ctx, project.CompanyName, project.TeamID); err == nil {
			return team.TeamName
		}
	}
	return types.TEAM_NOT_ASSIGNED
}

func (s *projectService) AddSubtask(ctx context.Context, actor types.Principal, projectID string, req *types.AddSubtaskRequest) (*types.Subtask, error) {
	if req.SubtaskTitle == "" {
		return nil, types.Validationf("subtask_title is required")
	}
	if len(req.Images) > types.MAX_SUBTASK_IMAGES {
		return nil, types.Validationf("at most %d images allowed", types.MAX_SUBTASK_IMAGES)
	}
	project, err := s.projects.GetByProjectID(ctx, actor.Company(), projectID)
	if err != nil {
		return nil, err
	}
	phase := project.FindPhase(req.PhaseID, "")
	if phase == nil {
		return nil, types.NotFoundf("phase not found")
	}

	urls, err := s.images.StoreAll(ctx, req.Images)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	subtask := types.Subtask{
		SubtaskID:      phase.NextSubtaskID(),
		SubtaskTitle:   req.SubtaskTitle,
		Description:    req.Description,
		AssignedTeam:   s.assignedTeam(ctx, project, req.AssignedTeam),
		AssignedMember: req.AssignedMember,
		Status:         types.PHASE_STATUS_PENDING,
		Images:         urls,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.projects.PushSubtask(ctx, actor.Company(), project.ProjectID, phase.PhaseID, subtask); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_PROJECT, types.ACTIVITY_ACTION_ADD,
		project.ProjectName, fmt.Sprintf("subtask %q added to phase %q", req.SubtaskTitle, phase.Title), actor.DisplayName())
	return &subtask, nil
}

func (s *projectService) EditSubtask(ctx context.Context, actor types.Principal, projectID string, req *types.EditSubtaskRequest) (*types.Subtask, error) {
	if req.SubtaskID == "" {
		return nil, types.Validationf("subtask_id is required")
	}
	project, err := s.resolveSubtaskProject(ctx, actor.Company(), projectID, req.SubtaskID)
	if err != nil {
		return nil, err
	}
	_, subtask := project.FindSubtask(req.SubtaskID)
	if subtask == nil {
		return nil, types.NotFoundf("subtask not found")
	}

	retained := make(map[string]struct{}, len(req.ExistingImages))
	for _, u := range req.ExistingImages {
		retained[u] = struct{}{}
	}
	var removed []string
	var finalImages []string
	for _, u := range subtask.Images {
		if _, keep := retained[u]; keep {
			finalImages = append(finalImages, u)
		} else {
			removed = append(removed, u)
		}
	}
	if len(finalImages)+len(req.NewImages) > types.MAX_SUBTASK_IMAGES {
		return nil, types.Validationf("at most %d images allowed", types.MAX_SUBTASK_IMAGES)
	}
	uploaded, err := s.images.StoreAll(ctx, req.NewImages)
	if err != nil {
		return nil, err
	}
	finalImages = append(finalImages, uploaded...)

	now := time.Now()
	fields := map[string]interface{}{
		"phases.$[].subtasks.$[st].images":    finalImages,
		"phases.$[].subtasks.$[st].updatedAt": now,
	}
	if req.SubtaskTitle != "" {
		subtask.SubtaskTitle = req.SubtaskTitle
		fields["phases.$[].subtasks.$[st].subtask_title"] = req.SubtaskTitle
	}
	if req.Description != "" {
		subtask.Description = req.Description
		fields["phases.$[].subtasks.$[st].description"] = req.Description
	}
	if req.AssignedMember != "" {
		subtask.AssignedMember = req.AssignedMember
		fields["phases.$[].subtasks.$[st].assigned_member"] = req.AssignedMember
	}
	if err := s.projects.UpdateSubtaskFields(ctx, actor.Company(), project.ProjectID, req.SubtaskID, fields); err != nil {
		return nil, err
	}

	if len(removed) > 0 {
		s.images.DeleteMany(ctx, removed)
	}
	subtask.Images = finalImages
	subtask.UpdatedAt = now

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_PROJECT, types.ACTIVITY_ACTION_EDIT,
		project.ProjectName, fmt.Sprintf("subtask %s updated", req.SubtaskID), actor.DisplayName())
	return subtask, nil
}

func (s *projectService) UpdateSubtaskStatus(ctx context.Context, actor types.Principal, projectID string, req *types.UpdateSubtaskStatusRequest) error {
	if !types.ValidPhaseStatus(req.Status) {
		return types.Validationf("invalid status %q", req.Status)
	}
	if projectID == "" {
		project, err := s.resolveSubtaskProject(ctx, actor.Company(), "", req.SubtaskID)
		if err != nil {
			return err
		}
		projectID = project.ProjectID
	}
	return s.projects.UpdateSubtaskStatus(ctx, actor.Company(), projectID, req.SubtaskID, req.Status, time.Now())
}

func (s *projectService) DeleteSubtask(ctx context.Context, actor types.Principal, projectID, subtaskID string) error {
	project, err := s.resolveSubtaskProject(ctx, actor.Company(), projectID, subtaskID)
	if err != nil {
		return err
	}
	_, subtask := project.FindSubtask(subtaskID)
	if subtask == nil {
		return types.NotFoundf("subtask not found")
	}

	if err := s.projects.PullSubtask(ctx, actor.Company(), project.ProjectID, subtaskID); err != nil {
		return err
	}
	if len(subtask.Images) > 0 {
		s.images.DeleteMany(ctx, subtask.Images)
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_PROJECT, types.ACTIVITY_ACTION_DELETE,
		project.ProjectName, fmt.Sprintf("subtask %s deleted", subtaskID), actor.DisplayName())
	return nil
}

func (s *projectService) ListSubtasks(ctx context.Context, actor types.Principal, projectID string) ([]types.SubtaskWithPhase, error) {
	project, err := s.projects.GetByProjectID(ctx, actor.Company(), projectID)
	if err != nil {
		return nil, err
	}

	var out []types.SubtaskWithPhase
	for _, phase := range project.Phases {
		for _, st := range phase.Subtasks {
			if st.AssignedTeam == "" {
				st.AssignedTeam = s.assignedTeam(ctx, project, "")
			}
			out = append(out, types.SubtaskWithPhase{
				Subtask:    st,
				PhaseID:    phase.PhaseID,
				PhaseTitle: phase.Title,
			})
		}
	}
	return out, nil
}

// SubtaskActivity synthesizes a flat, newest-first feed from subtask
// creation and update stamps.
func (s *projectService) SubtaskActivity(ctx context.Context, actor types.Principal, projectID string) ([]types.SubtaskActivityEntry, error) {
	project, err := s.projects.GetByProjectID(ctx, actor.Company(), projectID)
	if err != nil {
		return nil, err
	}

	var entries []types.SubtaskActivityEntry
	id := 1
	for _, phase := range project.Phases {
		for _, st := range phase.Subtasks {
			entries = append(entries, types.SubtaskActivityEntry{
				ID:        id,
				Action:    "created",
				Details:   fmt.Sprintf("subtask %q added to phase %q", st.SubtaskTitle, phase.Title),
				Timestamp: st.CreatedAt.Format(time.RFC3339),
				User:      st.AssignedMember,
				Type:      "subtask",
			})
			id++
			if st.UpdatedAt.After(st.CreatedAt) {
				entries = append(entries, types.SubtaskActivityEntry{
					ID:        id,
					Action:    "updated",
					Details:   fmt.Sprintf("subtask %q is %s", st.SubtaskTitle, st.Status),
					Timestamp: st.UpdatedAt.Format(time.RFC3339),
					User:      st.AssignedMember,
					Type:      "subtask",
				})
				id++
			}
		}
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
