package request

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// LeaveTotalDays counts the calendar days a leave spans, inclusive of
// both endpoints. Partial days round up before the inclusive day is
// added, so 2024-01-01 through 2024-01-03 is 3 days.
func LeaveTotalDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

// OvertimeTotalHours measures the overtime span in hours, rounded to
// two decimal places.
func OvertimeTotalHours(start, end time.Time) decimal.Decimal {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return decimal.NewFromInt(diff.Milliseconds()).
		Div(decimal.NewFromInt(int64(time.Hour / time.Millisecond))).
		Round(2)
}
