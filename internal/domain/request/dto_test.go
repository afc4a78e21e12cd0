package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luocityspa/staff-portal/internal/pkg/validator"
)

func TestSubmitLeaveRequest_Validate(t *testing.T) {
	valid := SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "family trip",
	}
	assert.NoError(t, valid.Validate())

	reversed := valid
	reversed.EndDate = "2024-03-09"
	err := reversed.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "end_date")

	// End must be strictly after start, for both kinds.
	sameDay := valid
	sameDay.EndDate = sameDay.StartDate
	err = sameDay.Validate()
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "end_date")

	empty := SubmitLeaveRequest{}
	err = empty.Validate()
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "leave_type")
	assert.Contains(t, m, "start_date")
	assert.Contains(t, m, "end_date")
	assert.Contains(t, m, "reason")
}

func TestSubmitOvertimeRequest_Validate(t *testing.T) {
	valid := SubmitOvertimeRequest{
		AdjustmentType: "Overtime",
		StartTime:      "2024-03-10T18:00:00Z",
		EndTime:        "2024-03-10T21:30:00Z",
		Reason:         "inventory count",
	}
	assert.NoError(t, valid.Validate())

	local := valid
	local.StartTime = "2024-03-10T18:00"
	local.EndTime = "2024-03-10T21:30"
	assert.NoError(t, local.Validate())

	var verrs validator.ValidationErrors

	equal := valid
	equal.EndTime = equal.StartTime
	err := equal.Validate()
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "end_time")

	garbage := valid
	garbage.StartTime = "yesterday evening"
	err = garbage.Validate()
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "start_time")

	empty := SubmitOvertimeRequest{}
	err = empty.Validate()
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "adjustment_type")
}
