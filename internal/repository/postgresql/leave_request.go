package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/luocityspa/staff-portal/internal/domain/request"
	"github.com/luocityspa/staff-portal/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) request.LeaveRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveColumns = `
	lr.id, lr.employee_code, lr.employee_name, lr.department, lr.position,
	lr.leave_type, lr.start_date, lr.end_date, lr.total_days, lr.reason,
	lr.status, lr.submitted_at, lr.approved_at, COALESCE(lr.approved_by, '')
`

func scanLeaveRequest(row pgx.Row) (request.LeaveRequest, error) {
	var lr request.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeCode,
		&lr.EmployeeName,
		&lr.Department,
		&lr.Position,
		&lr.LeaveType,
		&lr.StartDate,
		&lr.EndDate,
		&lr.TotalDays,
		&lr.Reason,
		&lr.Status,
		&lr.SubmittedAt,
		&lr.ApprovedAt,
		&lr.ApprovedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return request.LeaveRequest{}, request.ErrRequestNotFound
	}
	if err != nil {
		return request.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req request.LeaveRequest) (request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_code, employee_name, department, position,
			leave_type, start_date, end_date, total_days, reason,
			status, submitted_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			$10, NOW()
		) RETURNING id, submitted_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeCode, req.EmployeeName, req.Department, req.Position,
		req.LeaveType, req.StartDate, req.EndDate, req.TotalDays, req.Reason,
		req.Status,
	).Scan(&req.ID, &req.SubmittedAt)
	if err != nil {
		return request.LeaveRequest{}, err
	}

	return req, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests lr WHERE lr.id = $1`

	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

func (r *leaveRequestRepositoryImpl) ListByEmployeeCode(ctx context.Context, employeeCode string) ([]request.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		WHERE lr.employee_code = $1
		ORDER BY lr.submitted_at DESC
	`
	return r.list(ctx, query, employeeCode)
}

func (r *leaveRequestRepositoryImpl) ListPendingByDepartment(ctx context.Context, department string) ([]request.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		WHERE lr.department = $1 AND lr.status = 'pending'
		ORDER BY lr.submitted_at DESC
	`
	return r.list(ctx, query, department)
}

func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]request.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		ORDER BY lr.submitted_at DESC
	`
	return r.list(ctx, query)
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []request.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status request.Status, decidedBy string) (request.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests lr
		SET status = $2, approved_at = NOW(), approved_by = $3
		WHERE lr.id = $1
		RETURNING ` + leaveColumns

	return scanLeaveRequest(q.QueryRow(ctx, query, id, status, decidedBy))
}

func (r *leaveRequestRepositoryImpl) DeleteByEmployeeCode(ctx context.Context, employeeCode string) (int, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE employee_code = $1`, employeeCode)
	if err != nil {
		return 0, err
	}

	return int(commandTag.RowsAffected()), nil
}
