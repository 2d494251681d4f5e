package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
	"github.com/webblaze/projectflow-be/utils"
	"golang.org/x/crypto/bcrypt"
)

// TempPasswordTTL is how long a freshly added employee has to complete
// the first login before the reaper removes the account.
const TempPasswordTTL = 5 * time.Minute

type EmployeeService interface {
	Add(ctx context.Context, actor types.Principal, req *types.AddEmployeeRequest) (*types.Employee, error)
	FirstLogin(ctx context.Context, req *types.EmployeeFirstLoginRequest) (*types.Employee, error)
	Get(ctx context.Context, actor types.Principal, teamMemberID string) (*types.Employee, error)
	List(ctx context.Context, actor types.Principal) ([]*types.Employee, error)
	ListByRole(ctx context.Context, actor types.Principal, role string) ([]*types.Employee, error)
	Edit(ctx context.Context, actor types.Principal, teamMemberID string, req *types.EditEmployeeRequest) (*types.Employee, error)
	Delete(ctx context.Context, actor types.Principal, teamMemberID string) error
}

type employeeService struct {
	employees  repository.EmployeeRepo
	principals repository.PrincipalRepo
	ids        IdentifierService
	email      EmailService
	activity   ActivityService
}

func NewEmployeeService(
	employees repository.EmployeeRepo,
	principals repository.PrincipalRepo,
	ids IdentifierService,
	email EmailService,
	activity ActivityService,
) EmployeeService {
	return &employeeService{
		employees:  employees,
		principals: principals,
		ids:        ids,
		email:      email,
		activity:   activity,
	}
}

func (s *employeeService) Add(ctx context.Context, actor types.Principal, req *types.AddEmployeeRequest) (*types.Employee, error) {
	if err := requireEmployeeManager(actor); err != nil {
		return nil, err
	}
	if req.Name == "" || req.Email == "" || req.Role == "" {
		return nil, types.Validationf("name, email and role are required")
	}
	if !types.ValidRole(req.Role) || req.Role == types.ROLE_OWNER {
		return nil, types.Validationf("invalid role %q", req.Role)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.principals.FindByEmail(ctx, email); err == nil {
		return nil, types.Conflictf("email %s is already registered", email)
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	teamMemberID, err := s.ids.NextEmployeeID(ctx, actor.Company())
	if err != nil {
		return nil, err
	}

	tempPassword, err := utils.RandomHex(4)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(TempPasswordTTL)
	employee := &types.Employee{
		Name:               req.Name,
		Email:              email,
		Password:           string(hash),
		TeamMemberID:       teamMemberID,
		Designation:        req.Designation,
		PhoneNo:            req.PhoneNo,
		CompanyName:        actor.Company(),
		ProfileLogo:        req.ProfileLogo,
		MustChangePassword: true,
		PasswordExpiresAt:  &expiresAt,
		AddedBy:            actor.DisplayName(),
		Role:               req.Role,
		Location:           req.Location,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.email.SendEmployeeWelcome(employee.Email, employee.Name, teamMemberID, tempPassword, expiresAt)
	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_EMPLOYEE, types.ACTIVITY_ACTION_ADD,
		employee.Name, fmt.Sprintf("added as %s (%s)", employee.Role, teamMemberID), actor.DisplayName())
	return employee, nil
}

// FirstLogin exchanges the temporary password for a chosen one. An
// elapsed window is reported with its own message so the client can tell
// it apart from a plain wrong password.
func (s *employeeService) FirstLogin(ctx context.Context, req *types.EmployeeFirstLoginRequest) (*types.Employee, error) {
	if req.Email == "" || req.OldPassword == "" || req.NewPassword == "" {
		return nil, types.Validationf("email, old password and new password are required")
	}
	if req.NewPassword != req.ConfirmPassword {
		return nil, types.Validationf("passwords do not match")
	}
	if len(req.NewPassword) < 8 {
		return nil, types.Validationf("password must be at least 8 characters")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	employee, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !employee.MustChangePassword {
		return nil, types.Validationf("password has already been set, use the regular login")
	}
	if employee.PasswordExpiresAt != nil && time.Now().After(*employee.PasswordExpiresAt) {
		return nil, types.Forbiddenf("temporary password has expired, ask your administrator to add you again")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(req.OldPassword)); err != nil {
		return nil, types.Forbiddenf("incorrect password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	employee.Password = string(hash)
	employee.MustChangePassword = false
	employee.PasswordExpiresAt = nil
	employee.LastLogin = time.Now()
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Get(ctx context.Context, actor types.Principal, teamMemberID string) (*types.Employee, error) {
	return s.employees.GetByTeamMemberID(ctx, actor.Company(), teamMemberID)
}

func (s *employeeService) List(ctx context.Context, actor types.Principal) ([]*types.Employee, error) {
	return s.employees.ListByCompany(ctx, actor.Company())
}

func (s *employeeService) ListByRole(ctx context.Context, actor types.Principal, role string) ([]*types.Employee, error) {
	if !types.ValidRole(role) || role == types.ROLE_OWNER {
		return nil, types.Validationf("invalid role %q", role)
	}
	return s.employees.ListByRole(ctx, actor.Company(), role)
}

func (s *employeeService) Edit(ctx context.Context, actor types.Principal, teamMemberID string, req *types.EditEmployeeRequest) (*types.Employee, error) {
	if err := requireEmployeeManager(actor); err != nil {
		return nil, err
	}
	employee, err := s.employees.GetByTeamMemberID(ctx, actor.Company(), teamMemberID)
	if err != nil {
		return nil, err
	}
	if req.Role != "" {
		if !types.ValidRole(req.Role) || req.Role == types.ROLE_OWNER {
			return nil, types.Validationf("invalid role %q", req.Role)
		}
		employee.Role = req.Role
	}
	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Email != "" {
		employee.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Designation != "" {
		employee.Designation = req.Designation
	}
	if req.Location != "" {
		employee.Location = req.Location
	}
	if req.PhoneNo != "" {
		employee.PhoneNo = req.PhoneNo
	}
	if req.ProfileLogo != "" {
		employee.ProfileLogo = req.ProfileLogo
	}
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_EMPLOYEE, types.ACTIVITY_ACTION_EDIT,
		employee.Name, fmt.Sprintf("updated employee %s", teamMemberID), actor.DisplayName())
	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, actor types.Principal, teamMemberID string) error {
	if err := requireEmployeeManager(actor); err != nil {
		return err
	}
	employee, err := s.employees.GetByTeamMemberID(ctx, actor.Company(), teamMemberID)
	if err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, actor.Company(), teamMemberID); err != nil {
		return err
	}

	s.activity.Record(ctx, actor.Company(), types.ACTIVITY_TYPE_EMPLOYEE, types.ACTIVITY_ACTION_DELETE,
		employee.Name, fmt.Sprintf("removed employee %s", teamMemberID), actor.DisplayName())
	return nil
}
