package request

import (
	"strings"
	"time"
)

// Filter narrows a merged request listing. Empty fields impose no
// constraint. Apply is pure and order-preserving.
type Filter struct {
	Search     string // matches employee name or code, case-insensitive
	Department string
	Status     string
	Kind       string
	From       string // requests starting on or after this day, YYYY-MM-DD
	To         string // requests starting on or before this day, YYYY-MM-DD
}

func (f Filter) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if f.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func (f Filter) matches(item Item) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.EmployeeName()), needle) &&
			!strings.Contains(strings.ToLower(item.EmployeeCode()), needle) {
			return false
		}
	}
	if f.Department != "" && item.Department() != f.Department {
		return false
	}
	if f.Status != "" && string(item.Status()) != f.Status {
		return false
	}
	if f.Kind != "" && string(item.Kind) != f.Kind {
		return false
	}
	if f.From != "" {
		from, err := time.Parse("2006-01-02", f.From)
		if err != nil || item.StartsAt().Before(from) {
			return false
		}
	}
	if f.To != "" {
		to, err := time.Parse("2006-01-02", f.To)
		if err != nil || item.StartsAt().After(to.Add(24*time.Hour-time.Nanosecond)) {
			return false
		}
	}
	return true
}
