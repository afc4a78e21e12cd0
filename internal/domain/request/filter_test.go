package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func itemsFixture() []Item {
	leaves := []LeaveRequest{
		{
			ID:           "l1",
			EmployeeCode: "EMP-001",
			EmployeeName: "Alice Wong",
			Department:   "Massage",
			Status:       StatusPending,
			StartDate:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			SubmittedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "l2",
			EmployeeCode: "EMP-002",
			EmployeeName: "Bob Chen",
			Department:   "Reception",
			Status:       StatusApproved,
			StartDate:    time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			SubmittedAt:  time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		},
	}
	overtimes := []OvertimeRequest{
		{
			ID:           "o1",
			EmployeeCode: "EMP-001",
			EmployeeName: "Alice Wong",
			Department:   "Massage",
			Status:       StatusRejected,
			StartTime:    time.Date(2024, 3, 20, 18, 0, 0, 0, time.UTC),
			SubmittedAt:  time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC),
		},
	}
	return Merge(leaves, overtimes)
}

func TestRequestFilter_Empty(t *testing.T) {
	items := itemsFixture()
	assert.Equal(t, items, Filter{}.Apply(items))
}

func TestRequestFilter_SearchByNameOrCode(t *testing.T) {
	items := itemsFixture()

	got := Filter{Search: "alice"}.Apply(items)
	assert.Len(t, got, 2)

	got = Filter{Search: "EMP-002"}.Apply(items)
	assert.Len(t, got, 1)
	assert.Equal(t, "l2", got[0].Leave.ID)
}

func TestRequestFilter_StatusAndKind(t *testing.T) {
	items := itemsFixture()

	pending := Filter{Status: "pending"}.Apply(items)
	assert.Len(t, pending, 1)
	assert.Equal(t, "l1", pending[0].Leave.ID)

	overtime := Filter{Kind: "overtime"}.Apply(items)
	assert.Len(t, overtime, 1)
	assert.Equal(t, "o1", overtime[0].Overtime.ID)
}

func TestRequestFilter_DateRange(t *testing.T) {
	items := itemsFixture()

	got := Filter{From: "2024-03-15", To: "2024-03-25"}.Apply(items)
	assert.Len(t, got, 1)
	assert.Equal(t, KindOvertime, got[0].Kind)

	// To is inclusive of the whole day the overtime starts on.
	got = Filter{To: "2024-03-20"}.Apply(items)
	assert.Len(t, got, 2)
}

func TestRequestFilter_Idempotent(t *testing.T) {
	items := itemsFixture()
	f := Filter{Department: "Massage"}
	once := f.Apply(items)
	assert.Equal(t, once, f.Apply(once))
}
