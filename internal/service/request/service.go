package request

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/luocityspa/staff-portal/internal/domain/employee"
	"github.com/luocityspa/staff-portal/internal/domain/request"
	"github.com/luocityspa/staff-portal/internal/pkg/sse"
	"github.com/luocityspa/staff-portal/internal/pkg/validator"
)

type RequestServiceImpl struct {
	employeeRepo  employee.Repository
	leaveRepo     request.LeaveRepository
	overtimeRepo  request.OvertimeRepository
	hub           *sse.Hub
	allowRedecide bool
}

func NewRequestService(
	employeeRepository employee.Repository,
	leaveRepository request.LeaveRepository,
	overtimeRepository request.OvertimeRepository,
	hub *sse.Hub,
	allowRedecide bool,
) request.Service {
	return &RequestServiceImpl{
		employeeRepo:  employeeRepository,
		leaveRepo:     leaveRepository,
		overtimeRepo:  overtimeRepository,
		hub:           hub,
		allowRedecide: allowRedecide,
	}
}

// SubmitLeave implements request.Service. The submitter's profile is
// copied onto the request so listings stay self-contained.
func (s *RequestServiceImpl) SubmitLeave(ctx context.Context, userID string, req request.SubmitLeaveRequest) (request.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return request.LeaveRequest{}, err
	}

	profile, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return request.LeaveRequest{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.leaveRepo.Create(ctx, request.LeaveRequest{
		EmployeeCode: profile.EmployeeCode,
		EmployeeName: profile.FullName,
		Department:   profile.Department,
		Position:     profile.Position,
		LeaveType:    req.LeaveType,
		StartDate:    start,
		EndDate:      end,
		TotalDays:    request.LeaveTotalDays(start, end),
		Reason:       req.Reason,
		Status:       request.StatusPending,
	})
	if err != nil {
		return request.LeaveRequest{}, fmt.Errorf("create leave request: %w", err)
	}

	s.publish("request.submitted", request.Item{Kind: request.KindLeave, Leave: &created})

	return created, nil
}

// SubmitOvertime implements request.Service.
func (s *RequestServiceImpl) SubmitOvertime(ctx context.Context, userID string, req request.SubmitOvertimeRequest) (request.OvertimeRequest, error) {
	if err := req.Validate(); err != nil {
		return request.OvertimeRequest{}, err
	}

	profile, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return request.OvertimeRequest{}, err
	}

	start, _ := validator.IsValidDateTime(req.StartTime)
	end, _ := validator.IsValidDateTime(req.EndTime)

	created, err := s.overtimeRepo.Create(ctx, request.OvertimeRequest{
		EmployeeCode:   profile.EmployeeCode,
		EmployeeName:   profile.FullName,
		Department:     profile.Department,
		Position:       profile.Position,
		AdjustmentType: req.AdjustmentType,
		StartTime:      start,
		EndTime:        end,
		TotalHours:     request.OvertimeTotalHours(start, end),
		Reason:         req.Reason,
		Status:         request.StatusPending,
	})
	if err != nil {
		return request.OvertimeRequest{}, fmt.Errorf("create overtime request: %w", err)
	}

	s.publish("request.submitted", request.Item{Kind: request.KindOvertime, Overtime: &created})

	return created, nil
}

// ListMine implements request.Service.
func (s *RequestServiceImpl) ListMine(ctx context.Context, employeeCode string) ([]request.Item, error) {
	return s.merged(ctx,
		func(ctx context.Context) ([]request.LeaveRequest, error) {
			return s.leaveRepo.ListByEmployeeCode(ctx, employeeCode)
		},
		func(ctx context.Context) ([]request.OvertimeRequest, error) {
			return s.overtimeRepo.ListByEmployeeCode(ctx, employeeCode)
		},
	)
}

// ListPendingByDepartment implements request.Service.
func (s *RequestServiceImpl) ListPendingByDepartment(ctx context.Context, department string) ([]request.Item, error) {
	return s.merged(ctx,
		func(ctx context.Context) ([]request.LeaveRequest, error) {
			return s.leaveRepo.ListPendingByDepartment(ctx, department)
		},
		func(ctx context.Context) ([]request.OvertimeRequest, error) {
			return s.overtimeRepo.ListPendingByDepartment(ctx, department)
		},
	)
}

// ListAll implements request.Service. The filter runs in memory over
// the merged listing.
func (s *RequestServiceImpl) ListAll(ctx context.Context, filter request.Filter) ([]request.Item, error) {
	items, err := s.merged(ctx, s.leaveRepo.ListAll, s.overtimeRepo.ListAll)
	if err != nil {
		return nil, err
	}
	return filter.Apply(items), nil
}

// merged queries both request kinds concurrently and returns one list
// ordered newest first.
func (s *RequestServiceImpl) merged(
	ctx context.Context,
	listLeaves func(context.Context) ([]request.LeaveRequest, error),
	listOvertimes func(context.Context) ([]request.OvertimeRequest, error),
) ([]request.Item, error) {
	var (
		leaves    []request.LeaveRequest
		overtimes []request.OvertimeRequest
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leaves, err = listLeaves(gCtx)
		if err != nil {
			return fmt.Errorf("list leave requests: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		overtimes, err = listOvertimes(gCtx)
		if err != nil {
			return fmt.Errorf("list overtime requests: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return request.Merge(leaves, overtimes), nil
}

// Get implements request.Service.
func (s *RequestServiceImpl) Get(ctx context.Context, kind request.Kind, id string) (request.Item, error) {
	switch kind {
	case request.KindLeave:
		lr, err := s.leaveRepo.GetByID(ctx, id)
		if err != nil {
			return request.Item{}, err
		}
		return request.Item{Kind: request.KindLeave, Leave: &lr}, nil

	case request.KindOvertime:
		ot, err := s.overtimeRepo.GetByID(ctx, id)
		if err != nil {
			return request.Item{}, err
		}
		return request.Item{Kind: request.KindOvertime, Overtime: &ot}, nil

	default:
		return request.Item{}, request.ErrRequestNotFound
	}
}

// Decide implements request.Service.
func (s *RequestServiceImpl) Decide(ctx context.Context, kind request.Kind, id string, status request.Status, decidedBy string) (request.Item, error) {
	if !status.Decided() {
		return request.Item{}, request.ErrInvalidDecision
	}

	var item request.Item

	switch kind {
	case request.KindLeave:
		existing, err := s.leaveRepo.GetByID(ctx, id)
		if err != nil {
			return request.Item{}, err
		}
		if existing.Status.Decided() && !s.allowRedecide {
			return request.Item{}, request.ErrRequestAlreadyDecided
		}
		updated, err := s.leaveRepo.UpdateStatus(ctx, id, status, decidedBy)
		if err != nil {
			return request.Item{}, fmt.Errorf("update leave request status: %w", err)
		}
		item = request.Item{Kind: request.KindLeave, Leave: &updated}

	case request.KindOvertime:
		existing, err := s.overtimeRepo.GetByID(ctx, id)
		if err != nil {
			return request.Item{}, err
		}
		if existing.Status.Decided() && !s.allowRedecide {
			return request.Item{}, request.ErrRequestAlreadyDecided
		}
		updated, err := s.overtimeRepo.UpdateStatus(ctx, id, status, decidedBy)
		if err != nil {
			return request.Item{}, fmt.Errorf("update overtime request status: %w", err)
		}
		item = request.Item{Kind: request.KindOvertime, Overtime: &updated}

	default:
		return request.Item{}, request.ErrRequestNotFound
	}

	s.publish("request.decided", item)

	return item, nil
}

func (s *RequestServiceImpl) publish(event string, item request.Item) {
	s.hub.Publish(sse.TopicRequests, sse.Event{
		Topic: sse.TopicRequests,
		Event: event,
		Data:  item,
	})
}
