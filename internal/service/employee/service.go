package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/luocityspa/staff-portal/internal/domain/employee"
	"github.com/luocityspa/staff-portal/internal/domain/identity"
	"github.com/luocityspa/staff-portal/internal/domain/request"
	"github.com/luocityspa/staff-portal/internal/pkg/database"
	"github.com/luocityspa/staff-portal/internal/pkg/sse"
	"github.com/luocityspa/staff-portal/internal/pkg/validator"
	"github.com/luocityspa/staff-portal/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db            *database.DB
	employeeRepo  employee.Repository
	identityStore identity.Store
	leaveRepo     request.LeaveRepository
	overtimeRepo  request.OvertimeRepository
	hub           *sse.Hub
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.Repository,
	identityStore identity.Store,
	leaveRepository request.LeaveRepository,
	overtimeRepository request.OvertimeRepository,
	hub *sse.Hub,
) employee.Service {
	return &EmployeeServiceImpl{
		db:            db,
		employeeRepo:  employeeRepository,
		identityStore: identityStore,
		leaveRepo:     leaveRepository,
		overtimeRepo:  overtimeRepository,
		hub:           hub,
	}
}

// inTx runs fn inside one database transaction when a pool is
// configured; repositories pick the transaction up from the context.
func (s *EmployeeServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

// List implements employee.Service. The filter runs in memory over the
// full roster, matching what HR sees in the admin table.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return filter.Apply(employees), nil
}

// GetByID implements employee.Service.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// GetByUserID implements employee.Service.
func (s *EmployeeServiceImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return s.employeeRepo.GetByUserID(ctx, userID)
}

// Create implements employee.Service. The identity account and the
// profile are written in one transaction so a profile never exists
// without a login.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	codeTaken, err := s.employeeRepo.ExistsByCode(ctx, req.EmployeeCode, "")
	if err != nil {
		return employee.Employee{}, fmt.Errorf("check employee code: %w", err)
	}
	if codeTaken {
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}

	emailTaken, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return employee.Employee{}, fmt.Errorf("check email: %w", err)
	}
	if emailTaken {
		return employee.Employee{}, employee.ErrEmailExists
	}

	hireDate := time.Now()
	if req.HireDate != "" {
		hireDate, _ = validator.IsValidDate(req.HireDate)
	}

	var created employee.Employee
	err = s.inTx(ctx, func(ctx context.Context) error {
		principal, err := s.identityStore.CreateAccount(ctx, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, identity.ErrEmailTaken) {
				return employee.ErrEmailExists
			}
			return fmt.Errorf("create identity account: %w", err)
		}

		created, err = s.employeeRepo.Create(ctx, employee.Employee{
			EmployeeCode: req.EmployeeCode,
			FullName:     req.FullName,
			Email:        req.Email,
			Department:   req.Department,
			Role:         employee.Role(req.Role),
			Position:     req.Position,
			HireDate:     hireDate,
			UserID:       principal.ID,
		})
		if err != nil {
			return fmt.Errorf("create employee profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	s.hub.Publish(sse.TopicEmployees, sse.Event{
		Topic: sse.TopicEmployees,
		Event: "employee.created",
		Data:  created,
	})

	return created, nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return employee.Employee{}, err
	}

	if req.EmployeeCode != nil {
		codeTaken, err := s.employeeRepo.ExistsByCode(ctx, *req.EmployeeCode, id)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("check employee code: %w", err)
		}
		if codeTaken {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}

	if err := s.employeeRepo.Update(ctx, id, req); err != nil {
		return employee.Employee{}, fmt.Errorf("update employee: %w", err)
	}

	updated, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	s.hub.Publish(sse.TopicEmployees, sse.Event{
		Topic: sse.TopicEmployees,
		Event: "employee.updated",
		Data:  updated,
	})

	return updated, nil
}

// Delete implements employee.Service. The cascade removes the profile,
// the identity account and every request the employee ever filed, keyed
// by employee code. There is no rollback across stores; a failure
// surfaces naming the stage that broke so the rest can be retried.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) (employee.DeleteSummary, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.DeleteSummary{}, err
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return employee.DeleteSummary{}, fmt.Errorf("delete employee profile: %w", err)
	}

	if err := s.identityStore.DeleteAccount(ctx, emp.UserID); err != nil {
		// A missing account just means there is nothing left to remove.
		if !errors.Is(err, identity.ErrAccountNotFound) {
			return employee.DeleteSummary{}, fmt.Errorf("delete identity account: %w", err)
		}
	}

	var deletedLeaves, deletedOvertimes int

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.leaveRepo.DeleteByEmployeeCode(gCtx, emp.EmployeeCode)
		if err != nil {
			return fmt.Errorf("delete leave requests: %w", err)
		}
		deletedLeaves = n
		return nil
	})
	g.Go(func() error {
		n, err := s.overtimeRepo.DeleteByEmployeeCode(gCtx, emp.EmployeeCode)
		if err != nil {
			return fmt.Errorf("delete overtime requests: %w", err)
		}
		deletedOvertimes = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return employee.DeleteSummary{}, err
	}

	summary := employee.DeleteSummary{
		Success:         true,
		Message:         fmt.Sprintf("Employee %s and all associated data deleted successfully", emp.FullName),
		DeletedRequests: deletedLeaves + deletedOvertimes,
	}

	s.hub.Publish(sse.TopicEmployees, sse.Event{
		Topic: sse.TopicEmployees,
		Event: "employee.deleted",
		Data:  emp,
	})

	return summary, nil
}
