package employee

import "time"

// Employee is the staff profile document. EmployeeCode is the
// human-assigned business identifier; ID is the store-assigned record
// identifier. Requests reference employees by EmployeeCode, so the
// deletion cascade keys on it rather than on ID.
type Employee struct {
	ID           string    `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	Role         Role      `json:"role"`
	Position     string    `json:"position"`
	HireDate     time.Time `json:"hire_date"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Role string

const (
	RoleEmployee Role = "Employee"
	RoleHead     Role = "Head"
	RoleHR       Role = "HR"
)

// CanDecide reports whether the role may approve or reject requests.
func (r Role) CanDecide() bool {
	return r == RoleHead || r == RoleHR
}

// ValidRoles lists the accepted role values for validation.
func ValidRoles() []string {
	return []string{string(RoleEmployee), string(RoleHead), string(RoleHR)}
}

// DeleteSummary reports the outcome of a cascading employee deletion.
type DeleteSummary struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	DeletedRequests int    `json:"deleted_requests"`
}
