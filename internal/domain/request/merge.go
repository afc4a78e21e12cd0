package request

import "sort"

// Merge combines leave and overtime requests into one list ordered by
// submission time, newest first. The sort is stable so requests with
// identical timestamps keep their input order (leaves before overtimes).
func Merge(leaves []LeaveRequest, overtimes []OvertimeRequest) []Item {
	items := make([]Item, 0, len(leaves)+len(overtimes))
	for i := range leaves {
		items = append(items, Item{Kind: KindLeave, Leave: &leaves[i]})
	}
	for i := range overtimes {
		items = append(items, Item{Kind: KindOvertime, Overtime: &overtimes[i]})
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].SubmittedAt().After(items[b].SubmittedAt())
	})

	return items
}
