package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/types"
	"github.com/webblaze/projectflow-be/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	ACCOUNT_TYPE_COMPANY  = "company"
	ACCOUNT_TYPE_EMPLOYEE = "employee"

	ACCOUNT_STATUS_PENDING = "pending"
	ACCOUNT_STATUS_ACTIVE  = "active"
)

// AuthService covers owner registration, the combined login across both
// account collections, and the owner profile.
type AuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (*types.User, error)
	UpdateProfile(ctx context.Context, userID string, req *types.UpdateProfileRequest) (*types.User, error)
}

type authService struct {
	users      repository.UserRepo
	employees  repository.EmployeeRepo
	principals repository.PrincipalRepo
	jwt        *utils.JWTManager
	email      EmailService
}

func NewAuthService(
	users repository.UserRepo,
	employees repository.EmployeeRepo,
	principals repository.PrincipalRepo,
	jwt *utils.JWTManager,
	email EmailService,
) AuthService {
	return &authService{
		users:      users,
		employees:  employees,
		principals: principals,
		jwt:        jwt,
		email:      email,
	}
}

func (s *authService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	if req.CompanyName == "" || req.Email == "" || req.Password == "" || req.FirstName == "" {
		return nil, types.Validationf("companyName, firstName, email and password are required")
	}
	if req.Password != req.ConfirmPassword {
		return nil, types.Validationf("passwords do not match")
	}
	if len(req.Password) < 8 {
		return nil, types.Validationf("password must be at least 8 characters")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.principals.FindByEmail(ctx, email); err == nil {
		return nil, types.Conflictf("email %s is already registered", email)
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}
	if _, err := s.users.GetByCompanyName(ctx, req.CompanyName); err == nil {
		return nil, types.Conflictf("company name %q is already registered", req.CompanyName)
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}
	if req.CompanyDomain != "" {
		if _, err := s.users.GetByCompanyDomain(ctx, req.CompanyDomain); err == nil {
			return nil, types.Conflictf("company domain %q is already registered", req.CompanyDomain)
		} else if !errors.Is(err, types.ErrNotFound) {
			return nil, err
		}
	}
	if req.CompanyID != "" {
		if _, err := s.users.GetByCompanyID(ctx, req.CompanyID); err == nil {
			return nil, types.Conflictf("company ID %q is already registered", req.CompanyID)
		} else if !errors.Is(err, types.ErrNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &types.User{
		CompanyName:    req.CompanyName,
		CompanyDomain:  req.CompanyDomain,
		CompanyID:      req.CompanyID,
		CompanyAddress: req.CompanyAddress,
		FoundedYear:    req.FoundedYear,
		Website:        req.Website,
		Industry:       req.Industry,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          email,
		Password:       string(hash),
		Role:           types.ROLE_OWNER,
		JoinDate:       time.Now(),
		AccountStatus:  ACCOUNT_STATUS_PENDING,
		AccountType:    ACCOUNT_TYPE_COMPANY,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.email.SendWelcome(user.Email, user.FirstName)
	return user, nil
}

func (s *authService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, types.Validationf("email and password are required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	principal, err := s.principals.FindByEmail(ctx, email)
	if errors.Is(err, types.ErrNotFound) {
		return nil, types.NotFoundf("no account found for %s", email)
	}
	if err != nil {
		return nil, err
	}

	if employee, ok := principal.(*types.Employee); ok && employee.MustChangePassword {
		if employee.PasswordExpiresAt != nil && time.Now().After(*employee.PasswordExpiresAt) {
			return nil, types.Forbiddenf("temporary password has expired, ask your administrator to add you again")
		}
		return nil, types.Forbiddenf("password change required before first login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash()), []byte(req.Password)); err != nil {
		return nil, types.Forbiddenf("incorrect password")
	}

	if principal.Security().TwoFactorEnabled {
		return &types.LoginResponse{
			AccountType:       accountType(principal),
			RequiresTwoFactor: true,
		}, nil
	}

	token, err := s.issueToken(principal)
	if err != nil {
		return nil, err
	}
	if err := s.touchLogin(ctx, principal, token); err != nil {
		return nil, err
	}

	return &types.LoginResponse{
		AccessToken: token,
		AccountType: accountType(principal),
		Account:     principal,
	}, nil
}

// issueToken reuses the stored token while its signature and expiry are
// still good, otherwise signs a fresh 7-day one.
func (s *authService) issueToken(principal types.Principal) (string, error) {
	var stored string
	switch p := principal.(type) {
	case *types.User:
		stored = p.Token
	case *types.Employee:
		stored = p.Token
	}
	if stored != "" && s.jwt.Valid(stored) {
		return stored, nil
	}
	return s.jwt.GenerateLoginToken(principal)
}

func (s *authService) touchLogin(ctx context.Context, principal types.Principal, token string) error {
	now := time.Now()
	switch p := principal.(type) {
	case *types.User:
		p.Token = token
		p.LastLogin = now
		if p.AccountStatus != ACCOUNT_STATUS_ACTIVE {
			p.AccountStatus = ACCOUNT_STATUS_ACTIVE
		}
	case *types.Employee:
		p.Token = token
		p.LastLogin = now
	}
	return s.principals.Save(ctx, principal)
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*types.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, req *types.UpdateProfileRequest) (*types.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.CompanyName != "" {
		user.CompanyName = req.CompanyName
	}
	if req.CompanyDomain != "" {
		user.CompanyDomain = req.CompanyDomain
	}
	if req.CompanyAddress != "" {
		user.CompanyAddress = req.CompanyAddress
	}
	if req.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Website != "" {
		user.Website = req.Website
	}
	if req.Industry != "" {
		user.Industry = req.Industry
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.AccountType != "" {
		user.AccountType = req.AccountType
	}
	if req.CompanyLogo != "" {
		user.CompanyLogo = req.CompanyLogo
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func accountType(principal types.Principal) string {
	if _, ok := principal.(*types.User); ok {
		return ACCOUNT_TYPE_COMPANY
	}
	return ACCOUNT_TYPE_EMPLOYEE
}
