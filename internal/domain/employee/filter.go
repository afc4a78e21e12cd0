package employee

import (
	"strings"
	"time"
)

// Filter is the HR roster filter. Empty fields impose no constraint.
// Apply is pure and order-preserving, so reapplying the same filter to
// its own output is a no-op.
type Filter struct {
	Search     string // matches name, employee code or email, case-insensitive
	Department string
	Role       string
	HireDate   string // exact calendar day, YYYY-MM-DD
}

func (f Filter) Apply(employees []Employee) []Employee {
	out := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if f.matches(emp) {
			out = append(out, emp)
		}
	}
	return out
}

func (f Filter) matches(emp Employee) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(emp.FullName), needle) &&
			!strings.Contains(strings.ToLower(emp.EmployeeCode), needle) &&
			!strings.Contains(strings.ToLower(emp.Email), needle) {
			return false
		}
	}
	if f.Department != "" && emp.Department != f.Department {
		return false
	}
	if f.Role != "" && string(emp.Role) != f.Role {
		return false
	}
	if f.HireDate != "" {
		want, err := time.Parse("2006-01-02", f.HireDate)
		if err != nil {
			return false
		}
		y1, m1, d1 := emp.HireDate.Date()
		y2, m2, d2 := want.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			return false
		}
	}
	return true
}
