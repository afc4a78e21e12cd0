package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Decided reports whether the status is a terminal decision.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

func ValidStatuses() []string {
	return []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}
}

type Kind string

const (
	KindLeave    Kind = "leave"
	KindOvertime Kind = "overtime"
)

// LeaveRequest denormalizes the submitter's profile so lists render
// without joining the roster, and so requests survive profile edits
// with the values current at submission time.
type LeaveRequest struct {
	ID           string     `json:"id"`
	EmployeeCode string     `json:"employee_code"`
	EmployeeName string     `json:"employee_name"`
	Department   string     `json:"department"`
	Position     string     `json:"position"`
	LeaveType    string     `json:"leave_type"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	TotalDays    int        `json:"total_days"`
	Reason       string     `json:"reason"`
	Status       Status     `json:"status"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	ApprovedBy   string     `json:"approved_by,omitempty"`
}

// ApprovedBy and ApprovedAt record the decider for rejections too; the
// field names follow the stored records, not the verdict.
type OvertimeRequest struct {
	ID             string          `json:"id"`
	EmployeeCode   string          `json:"employee_code"`
	EmployeeName   string          `json:"employee_name"`
	Department     string          `json:"department"`
	Position       string          `json:"position"`
	AdjustmentType string          `json:"adjustment_type"`
	StartTime      time.Time       `json:"start_time"`
	EndTime        time.Time       `json:"end_time"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	Reason         string          `json:"reason"`
	Status         Status          `json:"status"`
	SubmittedAt    time.Time       `json:"submitted_at"`
	ApprovedAt     *time.Time      `json:"approved_at,omitempty"`
	ApprovedBy     string          `json:"approved_by,omitempty"`
}

// Item is one entry of a merged leave/overtime listing. Exactly one of
// Leave or Overtime is set, matching Kind.
type Item struct {
	Kind     Kind             `json:"kind"`
	Leave    *LeaveRequest    `json:"leave,omitempty"`
	Overtime *OvertimeRequest `json:"overtime,omitempty"`
}

func (i Item) SubmittedAt() time.Time {
	if i.Kind == KindLeave {
		return i.Leave.SubmittedAt
	}
	return i.Overtime.SubmittedAt
}

func (i Item) Status() Status {
	if i.Kind == KindLeave {
		return i.Leave.Status
	}
	return i.Overtime.Status
}

func (i Item) EmployeeCode() string {
	if i.Kind == KindLeave {
		return i.Leave.EmployeeCode
	}
	return i.Overtime.EmployeeCode
}

func (i Item) EmployeeName() string {
	if i.Kind == KindLeave {
		return i.Leave.EmployeeName
	}
	return i.Overtime.EmployeeName
}

func (i Item) Department() string {
	if i.Kind == KindLeave {
		return i.Leave.Department
	}
	return i.Overtime.Department
}

func (i Item) StartsAt() time.Time {
	if i.Kind == KindLeave {
		return i.Leave.StartDate
	}
	return i.Overtime.StartTime
}
