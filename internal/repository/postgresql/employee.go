package postgresql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/luocityspa/staff-portal/internal/domain/employee"
	"github.com/luocityspa/staff-portal/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.full_name, e.email, e.department, e.role,
	e.position, e.hire_date, e.user_id, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.EmployeeCode,
		&emp.FullName,
		&emp.Email,
		&emp.Department,
		&emp.Role,
		&emp.Position,
		&emp.HireDate,
		&emp.UserID,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.id = $1`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.user_id = $1`

	return scanEmployee(q.QueryRow(ctx, query, userID))
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.email = $1`

	return scanEmployee(q.QueryRow(ctx, query, email))
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e ORDER BY e.full_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_code, full_name, email, department, role,
			position, hire_date, user_id, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeCode, newEmployee.FullName, newEmployee.Email,
		newEmployee.Department, newEmployee.Role,
		newEmployee.Position, newEmployee.HireDate, newEmployee.UserID,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return newEmployee, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(argIndex))
		args = append(args, value)
		argIndex++
	}

	if req.EmployeeCode != nil {
		addSet("employee_code", *req.EmployeeCode)
	}
	if req.FullName != nil {
		addSet("full_name", *req.FullName)
	}
	if req.Department != nil {
		addSet("department", *req.Department)
	}
	if req.Role != nil {
		addSet("role", *req.Role)
	}
	if req.Position != nil {
		addSet("position", *req.Position)
	}
	if req.HireDate != nil {
		addSet("hire_date", *req.HireDate)
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")

	query := `UPDATE employees SET ` + strings.Join(setClauses, ", ") +
		` WHERE id = $` + strconv.Itoa(argIndex)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepositoryImpl) ExistsByCode(ctx context.Context, employeeCode string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE employee_code = $1 AND ($2 = '' OR id != $2)
		)
	`
	err := q.QueryRow(ctx, query, employeeCode, excludeID).Scan(&exists)
	return exists, err
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE email = $1 AND ($2 = '' OR id != $2)
		)
	`
	err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists)
	return exists, err
}
