package request

import "context"

type Service interface {
	SubmitLeave(ctx context.Context, userID string, req SubmitLeaveRequest) (LeaveRequest, error)
	SubmitOvertime(ctx context.Context, userID string, req SubmitOvertimeRequest) (OvertimeRequest, error)
	ListMine(ctx context.Context, employeeCode string) ([]Item, error)
	ListPendingByDepartment(ctx context.Context, department string) ([]Item, error)
	ListAll(ctx context.Context, filter Filter) ([]Item, error)
	Get(ctx context.Context, kind Kind, id string) (Item, error)
	Decide(ctx context.Context, kind Kind, id string, status Status, decidedBy string) (Item, error)
}
