package service

import (
	"context"
	"fmt"

	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
	"github.com/webblaze/projectflow-be/utils"
)

// IdentifierService issues tenant-scoped business identifiers:
// employees "WB-001", tasks "WB-TSK-001", projects "WB-Pr-1" and phases
// "WB-ph-7" (phases number one sequence across every project of the
// tenant). Numbers come from atomic counter reservations so concurrent
// creates never observe the same value, and the counters never move
// backwards, so deleting "WB-Pr-2" still makes the next project
// "WB-Pr-3".
type IdentifierService interface {
	NextEmployeeID(ctx context.Context, companyName string) (string, error)
	NextProjectID(ctx context.Context, companyName string) (string, error)
	NextPhaseID(ctx context.Context, companyName string) (string, error)
	NextTaskID(ctx context.Context, companyName string) (string, error)
}

type identifierService struct {
	counters  repository.CounterRepo
	employees repository.EmployeeRepo
	projects  repository.ProjectRepo
	tasks     repository.TaskRepo
}

func NewIdentifierService(
	counters repository.CounterRepo,
	employees repository.EmployeeRepo,
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
) IdentifierService {
	return &identifierService{
		counters:  counters,
		employees: employees,
		projects:  projects,
		tasks:     tasks,
	}
}

func (s *identifierService) NextEmployeeID(ctx context.Context, companyName string) (string, error) {
	n, err := s.counters.Next(ctx, companyName, types.COUNTER_KIND_EMPLOYEE, func(ctx context.Context) (int64, error) {
		ids, err := s.employees.ListMemberIDs(ctx, companyName)
		if err != nil {
			return 0, err
		}
		return utils.MaxNumericSuffix(ids), nil
	})
	if err != nil {
		return "", err
	}
	return utils.PaddedID(utils.CompanyInitials(companyName), n), nil
}

func (s *identifierService) NextProjectID(ctx context.Context, companyName string) (string, error) {
	n, err := s.counters.Next(ctx, companyName, types.COUNTER_KIND_PROJECT, func(ctx context.Context) (int64, error) {
		ids, err := s.projects.ListProjectIDs(ctx, companyName)
		if err != nil {
			return 0, err
		}
		return utils.MaxNumericSuffix(ids), nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-Pr-%d", utils.CompanyInitials(companyName), n), nil
}

func (s *identifierService) NextPhaseID(ctx context.Context, companyName string) (string, error) {
	n, err := s.counters.Next(ctx, companyName, types.COUNTER_KIND_PHASE, func(ctx context.Context) (int64, error) {
		return s.projects.TotalPhases(ctx, companyName)
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-ph-%d", utils.CompanyInitials(companyName), n), nil
}

func (s *identifierService) NextTaskID(ctx context.Context, companyName string) (string, error) {
	n, err := s.counters.Next(ctx, companyName, types.COUNTER_KIND_TASK, func(ctx context.Context) (int64, error) {
		ids, err := s.tasks.ListTaskIDs(ctx, companyName)
		if err != nil {
			return 0, err
		}
		return utils.MaxNumericSuffix(ids), nil
	})
	if err != nil {
		return "", err
	}
	return utils.PaddedID(utils.CompanyInitials(companyName)+"-TSK", n), nil
}
