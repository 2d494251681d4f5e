package repository

import (
	"context"
	"errors"

	"github.com/webblaze/projectflow-be/types"
)

// PrincipalRepo resolves an account across both collections, owner first
// then employee, and saves through whichever kind it found. The OTP and
// 2FA flows are written once against this instead of twice per kind.
type PrincipalRepo interface {
	FindByEmail(ctx context.Context, email string) (types.Principal, error)
	FindByID(ctx context.Context, id string) (types.Principal, error)
	Save(ctx context.Context, principal types.Principal) error
}

type principalRepo struct {
	users     UserRepo
	employees EmployeeRepo
}

func NewPrincipalRepo(users UserRepo, employees EmployeeRepo) PrincipalRepo {
	return &principalRepo{
		users:     users,
		employees: employees,
	}
}

func (r *principalRepo) FindByEmail(ctx context.Context, email string) (types.Principal, error) {
	user, err := r.users.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}
	employee, err := r.employees.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *principalRepo) FindByID(ctx context.Context, id string) (types.Principal, error) {
	user, err := r.users.GetByID(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}
	employee, err := r.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *principalRepo) Save(ctx context.Context, principal types.Principal) error {
	switch p := principal.(type) {
	case *types.User:
		return r.users.Update(ctx, p)
	case *types.Employee:
		return r.employees.Update(ctx, p)
	default:
		return types.ErrNotFound
	}
}
