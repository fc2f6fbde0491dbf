package analytics

import (
	"sort"
	"time"
)

// Streak reports consecutive-day streaks over the given timestamps.
// current is the length of the run still alive on today's date,
// meaning its last day is today or yesterday; longest is the longest
// run anywhere in the history, counted even when the current run is
// broken. Timestamps are collapsed to unique UTC calendar days first.
func Streak(dates []time.Time, today time.Time) (current, longest int) {
	days := uniqueDays(dates)
	if len(days) == 0 {
		return 0, 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	ref := DayOf(today)
	alive := days[0].Equal(ref) || days[0].Equal(ref.AddDate(0, 0, -1))

	run := 1
	newest := true
	for i := 1; i <= len(days); i++ {
		if i < len(days) && days[i-1].Sub(days[i]) == 24*time.Hour {
			run++
			continue
		}
		if newest && alive {
			current = run
		}
		newest = false
		if run > longest {
			longest = run
		}
		run = 1
	}
	return current, longest
}

func uniqueDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := DayOf(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	return days
}
