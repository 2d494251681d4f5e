package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
)

type TeamService interface {
	Create(ctx context.Context, actor types.Principal, req *types.CreateTeamRequest) (*types.Team, error)
	Get(ctx context.Context, actor types.Principal, teamID string) (*types.Team, error)
	List(ctx context.Context, actor types.Principal) ([]*types.Team, error)
	Update(ctx context.Context, actor types.Principal, teamID string, req *types.UpdateTeamRequest) (*types.Team, error)
	Delete(ctx context.Context, actor types.Principal, teamID string) error
}

type teamService struct {
	teams     repository.TeamRepo
	employees repository.EmployeeRepo
	activity  ActivityService
}

func NewTeamService(teams repository.TeamRepo, employees repository.EmployeeRepo, activity ActivityService) TeamService {
	return &teamService{
		teams:     teams,
		employees: employees,
		activity:  activity,
	}
}

// requireMemberRole checks that every id names an employee of the tenant
// holding the wanted role.
func (s *teamService) requireMemberRole(ctx context.Context, companyName string, memberIDs []string, role string) error {
	if len(memberIDs) == 0 {
		return nil
	}
	employees, err := s.employees.ListByTeamMemberIDs(ctx, companyName, memberIDs)
	if err != nil {
		return err
	}
	byID := make(map[string]*types.Employee, len(employees))
	for _, e := range employees {
		byID[e.TeamMemberID] = e
	}
	for _, id := range memberIDs {
		employee, ok := byID[id]
		if !ok {
			return types.Validationf("no employee with id %s", id)
		}
		if employee.Role != role {
			return types.Validationf("%s is not a %s", id, role)
		}
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *teamService) Create(ctx context.Context, actor types.Principal, req *types.CreateTeamRequest) (*types.Team, error) {
	if err := requireTeamManager(actor); err != nil {
		return nil, err
	}
	if req.TeamName == "" || req.TeamLead == "" {
		return nil, types.Validationf("teamName and teamLead are required")
	}

	if _, err := s.teams.GetByName(ctx, actor.Company(), req.TeamName); err == nil {
		return nil, types.Conflictf("team %q already exists", req.TeamName)
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	if err := s.requireMemberRole(ctx, actor.Company(), []string{req.TeamLead}, types.ROLE_TEAM_LEAD); err != nil {
		return nil, err
	}
	members := dedupe(req.TeamMembers)
	if err := s.requireMemberRole(ctx, actor.Company(), members, types.ROLE_TEAM_MEMBER); err != nil {
		return nil, err
	}

	team := &types.Team{
		TeamName:    req.TeamName,
		Description: req.Description,
		TeamLead:    req.TeamLead,
		CreatedBy:   actor.DisplayName(),
		Members:     members,
		CreatedAt:   time.Now(),
		CompanyName: actor.Company(),
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_TEAM, types.ACTIVITY_ACTION_ADD,
		team.TeamName, fmt.Sprintf("team created with %d members", len(members)), actor.DisplayName())
	return team, nil
}

func (s *teamService) Get(ctx context.Context, actor types.Principal, teamID string) (*types.Team, error) {
	return s.teams.GetByID(ctx, actor.Company(), teamID)
}

func (s *teamService) List(ctx context.Context, actor types.Principal) ([]*types.Team, error) {
	return s.teams.ListByCompany(ctx, actor.Company())
}

func (s *teamService) Update(ctx context.Context, actor types.Principal, teamID string, req *types.UpdateTeamRequest) (*types.Team, error) {
	if err := requireTeamManager(actor); err != nil {
		return nil, err
	}
	team, err := s.teams.GetByID(ctx, actor.Company(), teamID)
	if err != nil {
		return nil, err
	}

	if req.TeamName != "" && req.TeamName != team.TeamName {
		if _, err := s.teams.GetByName(ctx, actor.Company(), req.TeamName); err == nil {
			return nil, types.Conflictf("team %q already exists", req.TeamName)
		} else if !errors.Is(err, types.ErrNotFound) {
			return nil, err
		}
		team.TeamName = req.TeamName
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.TeamLead != "" && req.TeamLead != team.TeamLead {
		if err := s.requireMemberRole(ctx, actor.Company(), []string{req.TeamLead}, types.ROLE_TEAM_LEAD); err != nil {
			return nil, err
		}
		team.TeamLead = req.TeamLead
	}
	if req.TeamMembers != nil {
		members := dedupe(req.TeamMembers)
		if err := s.requireMemberRole(ctx, actor.Company(), members, types.ROLE_TEAM_MEMBER); err != nil {
			return nil, err
		}
		team.Members = members
	}

	if err := s.teams.Update(ctx, team); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_TEAM, types.ACTIVITY_ACTION_EDIT,
		team.TeamName, "team updated", actor.DisplayName())
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, actor types.Principal, teamID string) error {
	if err := requireTeamManager(actor); err != nil {
		return err
	}
	team, err := s.teams.GetByID(ctx, actor.Company(), teamID)
	if err != nil {
		return err
	}
	if err := s.teams.Delete(ctx, actor.Company(), teamID); err != nil {
		return err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_TEAM, types.ACTIVITY_ACTION_DELETE,
		team.TeamName, "team deleted", actor.DisplayName())
	return nil
}
