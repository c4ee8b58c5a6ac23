package reminder

import (
	"time"

	"github.com/pathakanu/myStreak/internal/model"
)

// ComputeStats derives the dashboard figures from reminders. It does not
// modify its input.
//
// LongestStreak reports the highest completion count, not the highest streak.
func ComputeStats(reminders []model.Reminder, now time.Time, loc *time.Location) model.DashboardStats {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	stats := model.DashboardStats{
		TotalReminders:    len(reminders),
		CategoryBreakdown: make(map[string]int),
		PriorityBreakdown: make(map[model.Priority]int),
	}

	completions := 0
	for _, r := range reminders {
		if r.LastCompleted != nil && !r.LastCompleted.Before(midnight) {
			stats.CompletedToday++
		}
		stats.CurrentStreak = max(stats.CurrentStreak, r.Streak)
		stats.LongestStreak = max(stats.LongestStreak, r.CompletionCount)
		completions += r.CompletionCount
		stats.CategoryBreakdown[r.Category]++
		stats.PriorityBreakdown[r.Priority]++
	}
	if len(reminders) > 0 {
		stats.CompletionRate = float64(completions) / float64(len(reminders))
	}
	return stats
}
