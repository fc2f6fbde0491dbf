package analytics

import (
	"fmt"
	"sort"
	"strconv"

	"studydesk/internal/model"
)

// MoodPoint is one raw entry in the recent-moods listing.
type MoodPoint struct {
	Date      string `json:"date"`
	Mood      string `json:"mood"`
	MoodLevel int    `json:"mood_level"`
}

// TrendPoint is one step of the rolling mood average.
type TrendPoint struct {
	Date        string  `json:"date"`
	AverageMood float64 `json:"average_mood"`
}

// MoodReport aggregates a window of mood entries.
type MoodReport struct {
	MoodDistribution map[string]int     `json:"mood_distribution"`
	WeeklyAverages   map[string]float64 `json:"weekly_averages"`
	DailyMoods       []MoodPoint        `json:"daily_moods"`
	MoodTrend        []TrendPoint       `json:"mood_trend"`
	Insights         []string           `json:"insights"`
	AverageMood      float64            `json:"average_mood"`
	TotalEntries     int                `json:"total_entries"`
}

// BuildMoodReport turns a window of mood entries into the category
// histogram, per-ISO-week averages, the last seven raw entries, a
// seven-entry trailing rolling average and a handful of insight
// lines. The caller supplies the window; empty input yields a
// zero-valued report.
func BuildMoodReport(entries []model.MoodEntry) MoodReport {
	report := MoodReport{
		MoodDistribution: map[string]int{},
		WeeklyAverages:   map[string]float64{},
		DailyMoods:       []MoodPoint{},
		MoodTrend:        []TrendPoint{},
		Insights:         []string{},
	}
	if len(entries) == 0 {
		return report
	}

	sorted := make([]model.MoodEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	weekSum := map[int]float64{}
	weekCount := map[int]int{}
	var total float64
	for _, e := range sorted {
		report.MoodDistribution[e.Mood]++
		week := WeekOf(e.CreatedAt)
		weekSum[week] += float64(e.MoodLevel)
		weekCount[week]++
		total += float64(e.MoodLevel)
	}
	for week, sum := range weekSum {
		report.WeeklyAverages[strconv.Itoa(week)] = Round2(sum / float64(weekCount[week]))
	}

	tail := sorted
	if len(tail) > 7 {
		tail = tail[len(tail)-7:]
	}
	for _, e := range tail {
		report.DailyMoods = append(report.DailyMoods, MoodPoint{
			Date:      DateKey(e.CreatedAt),
			Mood:      e.Mood,
			MoodLevel: e.MoodLevel,
		})
	}

	levels := make([]float64, len(sorted))
	for i, e := range sorted {
		levels[i] = float64(e.MoodLevel)
	}
	for i, avg := range RollingMean(levels, 7) {
		report.MoodTrend = append(report.MoodTrend, TrendPoint{
			Date:        DateKey(sorted[i].CreatedAt),
			AverageMood: Round2(avg),
		})
	}

	avg := total / float64(len(sorted))
	report.AverageMood = Round2(avg)
	report.TotalEntries = len(sorted)
	report.Insights = moodInsights(sorted, avg)
	return report
}

func moodInsights(sorted []model.MoodEntry, avg float64) []string {
	insights := []string{fmt.Sprintf("Your average mood level is %.1f/10", avg)}

	if mood := mostFrequentMood(sorted); mood != "" {
		insights = append(insights, "Your most common mood is "+mood)
	}

	if len(sorted) >= 7 {
		recent := meanLevel(sorted[len(sorted)-7:])
		earliest := meanLevel(sorted[:7])
		switch {
		case recent > earliest+0.5:
			insights = append(insights, "Your mood has been improving recently! 📈")
		case recent < earliest-0.5:
			insights = append(insights, "Your mood has been declining recently. Consider taking a break! 📉")
		}
	}

	if best, worst, ok := weekdayExtremes(sorted); ok {
		insights = append(insights, fmt.Sprintf("You feel best on %ss and worst on %ss", best, worst))
	}
	return insights
}

// mostFrequentMood picks the category that reaches the top count
// first, which keeps ties deterministic over the chronological scan.
func mostFrequentMood(entries []model.MoodEntry) string {
	counts := map[string]int{}
	best := ""
	bestCount := 0
	for _, e := range entries {
		counts[e.Mood]++
		if counts[e.Mood] > bestCount {
			best = e.Mood
			bestCount = counts[e.Mood]
		}
	}
	return best
}

func meanLevel(entries []model.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += float64(e.MoodLevel)
	}
	return sum / float64(len(entries))
}

// weekdayExtremes finds the weekdays with the highest and lowest mean
// level, scanning Monday through Sunday so ties resolve the same way
// every time.
func weekdayExtremes(entries []model.MoodEntry) (best, worst string, ok bool) {
	var sums [7]float64
	var counts [7]int
	for _, e := range entries {
		idx := WeekdayIndex(e.CreatedAt)
		sums[idx] += float64(e.MoodLevel)
		counts[idx]++
	}

	bestIdx, worstIdx := -1, -1
	var bestAvg, worstAvg float64
	for i := 0; i < 7; i++ {
		if counts[i] == 0 {
			continue
		}
		avg := sums[i] / float64(counts[i])
		if bestIdx < 0 || avg > bestAvg {
			bestIdx, bestAvg = i, avg
		}
		if worstIdx < 0 || avg < worstAvg {
			worstIdx, worstAvg = i, avg
		}
	}
	if bestIdx < 0 {
		return "", "", false
	}
	return WeekdayName(bestIdx), WeekdayName(worstIdx), true
}
