package model

// DashboardStats is derived from the reminder collection and never persisted.
type DashboardStats struct {
	TotalReminders int `json:"totalReminders"`
	CompletedToday int `json:"completedToday"`
	CurrentStreak  int `json:"currentStreak"`
	// LongestStreak is the highest completion count across reminders.
	LongestStreak     int              `json:"longestStreak"`
	CompletionRate    float64          `json:"completionRate"`
	CategoryBreakdown map[string]int   `json:"categoryBreakdown"`
	PriorityBreakdown map[Priority]int `json:"priorityBreakdown"`
}
