package request

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployeeCode(ctx context.Context, employeeCode string) ([]LeaveRequest, error)
	ListPendingByDepartment(ctx context.Context, department string) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string) (LeaveRequest, error)
	DeleteByEmployeeCode(ctx context.Context, employeeCode string) (int, error)
}

type OvertimeRepository interface {
	Create(ctx context.Context, req OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)
	ListByEmployeeCode(ctx context.Context, employeeCode string) ([]OvertimeRequest, error)
	ListPendingByDepartment(ctx context.Context, department string) ([]OvertimeRequest, error)
	ListAll(ctx context.Context) ([]OvertimeRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string) (OvertimeRequest, error)
	DeleteByEmployeeCode(ctx context.Context, employeeCode string) (int, error)
}
