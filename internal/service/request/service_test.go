package request

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luocityspa/staff-portal/internal/domain/employee"
	"github.com/luocityspa/staff-portal/internal/domain/request"
	"github.com/luocityspa/staff-portal/internal/pkg/sse"
)

type fakeEmployeeRepo struct {
	byUserID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	emp, ok := f.byUserID[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeEmployeeRepo) ExistsByCode(ctx context.Context, code, excludeID string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	return false, nil
}

type fakeLeaveRepo struct {
	requests []request.LeaveRequest
	nextID   int
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req request.LeaveRequest) (request.LeaveRequest, error) {
	f.nextID++
	req.ID = "leave-" + strconv.Itoa(f.nextID)
	req.SubmittedAt = time.Now()
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (request.LeaveRequest, error) {
	for _, req := range f.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return request.LeaveRequest{}, request.ErrRequestNotFound
}

func (f *fakeLeaveRepo) ListByEmployeeCode(ctx context.Context, code string) ([]request.LeaveRequest, error) {
	var out []request.LeaveRequest
	for _, req := range f.requests {
		if req.EmployeeCode == code {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListPendingByDepartment(ctx context.Context, department string) ([]request.LeaveRequest, error) {
	var out []request.LeaveRequest
	for _, req := range f.requests {
		if req.Department == department && req.Status == request.StatusPending {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListAll(ctx context.Context) ([]request.LeaveRequest, error) {
	return f.requests, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status request.Status, decidedBy string) (request.LeaveRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			now := time.Now()
			f.requests[i].Status = status
			f.requests[i].ApprovedAt = &now
			f.requests[i].ApprovedBy = decidedBy
			return f.requests[i], nil
		}
	}
	return request.LeaveRequest{}, request.ErrRequestNotFound
}

func (f *fakeLeaveRepo) DeleteByEmployeeCode(ctx context.Context, code string) (int, error) {
	var kept []request.LeaveRequest
	deleted := 0
	for _, req := range f.requests {
		if req.EmployeeCode == code {
			deleted++
		} else {
			kept = append(kept, req)
		}
	}
	f.requests = kept
	return deleted, nil
}

type fakeOvertimeRepo struct {
	requests []request.OvertimeRequest
	nextID   int
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, req request.OvertimeRequest) (request.OvertimeRequest, error) {
	f.nextID++
	req.ID = "ot-" + strconv.Itoa(f.nextID)
	req.SubmittedAt = time.Now()
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeOvertimeRepo) GetByID(ctx context.Context, id string) (request.OvertimeRequest, error) {
	for _, req := range f.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return request.OvertimeRequest{}, request.ErrRequestNotFound
}

func (f *fakeOvertimeRepo) ListByEmployeeCode(ctx context.Context, code string) ([]request.OvertimeRequest, error) {
	var out []request.OvertimeRequest
	for _, req := range f.requests {
		if req.EmployeeCode == code {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) ListPendingByDepartment(ctx context.Context, department string) ([]request.OvertimeRequest, error) {
	var out []request.OvertimeRequest
	for _, req := range f.requests {
		if req.Department == department && req.Status == request.StatusPending {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) ListAll(ctx context.Context) ([]request.OvertimeRequest, error) {
	return f.requests, nil
}

func (f *fakeOvertimeRepo) UpdateStatus(ctx context.Context, id string, status request.Status, decidedBy string) (request.OvertimeRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			now := time.Now()
			f.requests[i].Status = status
			f.requests[i].ApprovedAt = &now
			f.requests[i].ApprovedBy = decidedBy
			return f.requests[i], nil
		}
	}
	return request.OvertimeRequest{}, request.ErrRequestNotFound
}

func (f *fakeOvertimeRepo) DeleteByEmployeeCode(ctx context.Context, code string) (int, error) {
	var kept []request.OvertimeRequest
	deleted := 0
	for _, req := range f.requests {
		if req.EmployeeCode == code {
			deleted++
		} else {
			kept = append(kept, req)
		}
	}
	f.requests = kept
	return deleted, nil
}

func newTestService(allowRedecide bool) (request.Service, *fakeLeaveRepo, *fakeOvertimeRepo) {
	empRepo := &fakeEmployeeRepo{
		byUserID: map[string]employee.Employee{
			"user-1": {
				ID:           "emp-1",
				EmployeeCode: "EMP-001",
				FullName:     "Alice Wong",
				Department:   "Massage",
				Position:     "Therapist",
				Role:         employee.RoleEmployee,
			},
		},
	}
	leaveRepo := &fakeLeaveRepo{}
	overtimeRepo := &fakeOvertimeRepo{}
	svc := NewRequestService(empRepo, leaveRepo, overtimeRepo, sse.NewHub(), allowRedecide)
	return svc, leaveRepo, overtimeRepo
}

func TestSubmitLeave_DenormalizesProfileAndDerivesDuration(t *testing.T) {
	svc, _, _ := newTestService(true)

	created, err := svc.SubmitLeave(context.Background(), "user-1", request.SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP-001", created.EmployeeCode)
	assert.Equal(t, "Alice Wong", created.EmployeeName)
	assert.Equal(t, "Massage", created.Department)
	assert.Equal(t, 3, created.TotalDays)
	assert.Equal(t, request.StatusPending, created.Status)
	assert.NotEmpty(t, created.ID)
}

func TestSubmitLeave_RejectsInvalidPayload(t *testing.T) {
	svc, leaveRepo, _ := newTestService(true)

	_, err := svc.SubmitLeave(context.Background(), "user-1", request.SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: "2024-03-12",
		EndDate:   "2024-03-10",
		Reason:    "backwards",
	})
	assert.Error(t, err)
	assert.Empty(t, leaveRepo.requests)
}

func TestSubmitLeave_UnknownUser(t *testing.T) {
	svc, _, _ := newTestService(true)

	_, err := svc.SubmitLeave(context.Background(), "user-unknown", request.SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "family trip",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSubmitOvertime_DerivesHours(t *testing.T) {
	svc, _, _ := newTestService(true)

	created, err := svc.SubmitOvertime(context.Background(), "user-1", request.SubmitOvertimeRequest{
		AdjustmentType: "Overtime",
		StartTime:      "2024-03-10T18:00:00Z",
		EndTime:        "2024-03-10T21:30:00Z",
		Reason:         "inventory count",
	})
	require.NoError(t, err)

	assert.Equal(t, "Overtime", created.AdjustmentType)
	assert.Equal(t, "3.5", created.TotalHours.String())
	assert.Equal(t, request.StatusPending, created.Status)
}

func TestListMine_MergesBothKinds(t *testing.T) {
	svc, _, _ := newTestService(true)
	ctx := context.Background()

	_, err := svc.SubmitLeave(ctx, "user-1", request.SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	_, err = svc.SubmitOvertime(ctx, "user-1", request.SubmitOvertimeRequest{
		AdjustmentType: "Overtime",
		StartTime:      "2024-03-10T18:00:00Z",
		EndTime:        "2024-03-10T20:00:00Z",
		Reason:         "inventory count",
	})
	require.NoError(t, err)

	items, err := svc.ListMine(ctx, "EMP-001")
	require.NoError(t, err)
	require.Len(t, items, 2)

	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].SubmittedAt().After(items[i-1].SubmittedAt()))
	}
}

func TestGet_ReturnsItemByKind(t *testing.T) {
	svc, _, _ := newTestService(true)
	ctx := context.Background()

	created, err := svc.SubmitLeave(ctx, "user-1", request.SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	item, err := svc.Get(ctx, request.KindLeave, created.ID)
	require.NoError(t, err)
	assert.Equal(t, request.KindLeave, item.Kind)
	assert.Equal(t, "Massage", item.Department())

	_, err = svc.Get(ctx, request.KindOvertime, created.ID)
	assert.ErrorIs(t, err, request.ErrRequestNotFound)

	_, err = svc.Get(ctx, request.Kind("vacation"), created.ID)
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestDecide_ApprovesPendingLeave(t *testing.T) {
	svc, leaveRepo, _ := newTestService(false)
	ctx := context.Background()

	created, err := svc.SubmitLeave(ctx, "user-1", request.SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	item, err := svc.Decide(ctx, request.KindLeave, created.ID, request.StatusApproved, "Bob Chen")
	require.NoError(t, err)

	assert.Equal(t, request.StatusApproved, item.Leave.Status)
	assert.Equal(t, "Bob Chen", item.Leave.ApprovedBy)
	assert.NotNil(t, item.Leave.ApprovedAt)
	assert.Equal(t, request.StatusApproved, leaveRepo.requests[0].Status)
}

func TestDecide_AlreadyDecided(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked by default policy off", func(t *testing.T) {
		svc, _, _ := newTestService(false)
		created, err := svc.SubmitLeave(ctx, "user-1", request.SubmitLeaveRequest{
			LeaveType: "annual",
			StartDate: "2024-03-10",
			EndDate:   "2024-03-12",
			Reason:    "family trip",
		})
		require.NoError(t, err)

		_, err = svc.Decide(ctx, request.KindLeave, created.ID, request.StatusApproved, "Bob Chen")
		require.NoError(t, err)

		_, err = svc.Decide(ctx, request.KindLeave, created.ID, request.StatusRejected, "Bob Chen")
		assert.ErrorIs(t, err, request.ErrRequestAlreadyDecided)
	})

	t.Run("allowed when redecide enabled", func(t *testing.T) {
		svc, _, _ := newTestService(true)
		created, err := svc.SubmitLeave(ctx, "user-1", request.SubmitLeaveRequest{
			LeaveType: "annual",
			StartDate: "2024-03-10",
			EndDate:   "2024-03-12",
			Reason:    "family trip",
		})
		require.NoError(t, err)

		_, err = svc.Decide(ctx, request.KindLeave, created.ID, request.StatusApproved, "Bob Chen")
		require.NoError(t, err)

		item, err := svc.Decide(ctx, request.KindLeave, created.ID, request.StatusRejected, "Bob Chen")
		require.NoError(t, err)
		assert.Equal(t, request.StatusRejected, item.Leave.Status)
	})
}

func TestDecide_RejectsNonTerminalStatus(t *testing.T) {
	svc, _, _ := newTestService(true)

	_, err := svc.Decide(context.Background(), request.KindLeave, "leave-1", request.StatusPending, "Bob Chen")
	assert.ErrorIs(t, err, request.ErrInvalidDecision)
}

func TestDecide_NotFound(t *testing.T) {
	svc, _, _ := newTestService(true)

	_, err := svc.Decide(context.Background(), request.KindOvertime, "missing", request.StatusApproved, "Bob Chen")
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}
