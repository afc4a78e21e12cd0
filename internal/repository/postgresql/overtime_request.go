package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/luocityspa/staff-portal/internal/domain/request"
	"github.com/luocityspa/staff-portal/internal/pkg/database"
)

type overtimeRequestRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) request.OvertimeRepository {
	return &overtimeRequestRepositoryImpl{db: db}
}

const overtimeColumns = `
	ot.id, ot.employee_code, ot.employee_name, ot.department, ot.position,
	ot.adjustment_type, ot.start_time, ot.end_time, ot.total_hours, ot.reason,
	ot.status, ot.submitted_at, ot.approved_at, COALESCE(ot.approved_by, '')
`

func scanOvertimeRequest(row pgx.Row) (request.OvertimeRequest, error) {
	var ot request.OvertimeRequest
	err := row.Scan(
		&ot.ID,
		&ot.EmployeeCode,
		&ot.EmployeeName,
		&ot.Department,
		&ot.Position,
		&ot.AdjustmentType,
		&ot.StartTime,
		&ot.EndTime,
		&ot.TotalHours,
		&ot.Reason,
		&ot.Status,
		&ot.SubmittedAt,
		&ot.ApprovedAt,
		&ot.ApprovedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return request.OvertimeRequest{}, request.ErrRequestNotFound
	}
	if err != nil {
		return request.OvertimeRequest{}, err
	}
	return ot, nil
}

func (r *overtimeRequestRepositoryImpl) Create(ctx context.Context, req request.OvertimeRequest) (request.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (
			id, employee_code, employee_name, department, position,
			adjustment_type, start_time, end_time, total_hours, reason,
			status, submitted_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			$10, NOW()
		) RETURNING id, submitted_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeCode, req.EmployeeName, req.Department, req.Position,
		req.AdjustmentType, req.StartTime, req.EndTime, req.TotalHours, req.Reason,
		req.Status,
	).Scan(&req.ID, &req.SubmittedAt)
	if err != nil {
		return request.OvertimeRequest{}, err
	}

	return req, nil
}

func (r *overtimeRequestRepositoryImpl) GetByID(ctx context.Context, id string) (request.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_requests ot WHERE ot.id = $1`

	return scanOvertimeRequest(q.QueryRow(ctx, query, id))
}

func (r *overtimeRequestRepositoryImpl) ListByEmployeeCode(ctx context.Context, employeeCode string) ([]request.OvertimeRequest, error) {
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests ot
		WHERE ot.employee_code = $1
		ORDER BY ot.submitted_at DESC
	`
	return r.list(ctx, query, employeeCode)
}

func (r *overtimeRequestRepositoryImpl) ListPendingByDepartment(ctx context.Context, department string) ([]request.OvertimeRequest, error) {
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests ot
		WHERE ot.department = $1 AND ot.status = 'pending'
		ORDER BY ot.submitted_at DESC
	`
	return r.list(ctx, query, department)
}

func (r *overtimeRequestRepositoryImpl) ListAll(ctx context.Context) ([]request.OvertimeRequest, error) {
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests ot
		ORDER BY ot.submitted_at DESC
	`
	return r.list(ctx, query)
}

func (r *overtimeRequestRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]request.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []request.OvertimeRequest
	for rows.Next() {
		ot, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, ot)
	}

	return requests, rows.Err()
}

func (r *overtimeRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status request.Status, decidedBy string) (request.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests ot
		SET status = $2, approved_at = NOW(), approved_by = $3
		WHERE ot.id = $1
		RETURNING ` + overtimeColumns

	return scanOvertimeRequest(q.QueryRow(ctx, query, id, status, decidedBy))
}

func (r *overtimeRequestRepositoryImpl) DeleteByEmployeeCode(ctx context.Context, employeeCode string) (int, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM overtime_requests WHERE employee_code = $1`, employeeCode)
	if err != nil {
		return 0, err
	}

	return int(commandTag.RowsAffected()), nil
}
