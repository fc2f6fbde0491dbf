package analytics

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestStreakEmpty(t *testing.T) {
	current, longest := Streak(nil, day(2025, time.March, 10))
	if current != 0 || longest != 0 {
		t.Fatalf("Streak(nil) = (%d, %d), want (0, 0)", current, longest)
	}
}

func TestStreakSingleDay(t *testing.T) {
	today := day(2025, time.March, 10)

	current, longest := Streak([]time.Time{today}, today)
	if current != 1 || longest != 1 {
		t.Errorf("today only: got (%d, %d), want (1, 1)", current, longest)
	}

	current, longest = Streak([]time.Time{today.AddDate(0, 0, -2)}, today)
	if current != 0 || longest != 1 {
		t.Errorf("two days ago: got (%d, %d), want (0, 1)", current, longest)
	}
}

func TestStreakRunEndingToday(t *testing.T) {
	today := day(2025, time.March, 10)
	var dates []time.Time
	for i := 0; i < 5; i++ {
		dates = append(dates, today.AddDate(0, 0, -i))
	}

	current, longest := Streak(dates, today)
	if current != 5 || longest != 5 {
		t.Fatalf("five-day run: got (%d, %d), want (5, 5)", current, longest)
	}

	// A stray day two days before the run start changes nothing.
	current, longest = Streak(append(dates, today.AddDate(0, 0, -6)), today)
	if current != 5 || longest != 5 {
		t.Fatalf("five-day run plus stray: got (%d, %d), want (5, 5)", current, longest)
	}
}

func TestStreakRunEndingYesterday(t *testing.T) {
	today := day(2025, time.March, 10)
	dates := []time.Time{day(2025, time.March, 9), day(2025, time.March, 8)}

	current, longest := Streak(dates, today)
	if current != 2 || longest != 2 {
		t.Fatalf("run ending yesterday: got (%d, %d), want (2, 2)", current, longest)
	}
}

func TestStreakLongestSurvivesBrokenCurrent(t *testing.T) {
	today := day(2025, time.March, 20)
	dates := []time.Time{
		day(2025, time.March, 1),
		day(2025, time.March, 2),
		day(2025, time.March, 3),
		day(2025, time.March, 4),
		day(2025, time.March, 10),
	}

	current, longest := Streak(dates, today)
	if current != 0 {
		t.Errorf("current = %d, want 0", current)
	}
	if longest != 4 {
		t.Errorf("longest = %d, want 4", longest)
	}
}

func TestStreakCollapsesDuplicateTimestamps(t *testing.T) {
	today := day(2025, time.March, 10)
	dates := []time.Time{
		at(2025, time.March, 10, 8, 0),
		at(2025, time.March, 10, 21, 30),
		at(2025, time.March, 9, 12, 0),
	}

	current, longest := Streak(dates, today)
	if current != 2 || longest != 2 {
		t.Fatalf("duplicate days: got (%d, %d), want (2, 2)", current, longest)
	}
}

func TestStreakLongestNeverBelowCurrent(t *testing.T) {
	today := day(2025, time.March, 10)
	sets := [][]time.Time{
		{today},
		{today, today.AddDate(0, 0, -1)},
		{today, today.AddDate(0, 0, -1), today.AddDate(0, 0, -5)},
		{today.AddDate(0, 0, -1), today.AddDate(0, 0, -2), today.AddDate(0, 0, -3)},
		{today.AddDate(0, 0, -10)},
	}
	for i, dates := range sets {
		current, longest := Streak(dates, today)
		if longest < current {
			t.Errorf("set %d: longest %d < current %d", i, longest, current)
		}
	}
}
