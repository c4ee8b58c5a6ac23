package model

import "time"

// Frequency describes how often a reminder recurs. It is informational only
// and does not take part in due detection.
type Frequency string

const (
	FrequencyHourly   Frequency = "hourly"
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyCustom   Frequency = "custom"
	FrequencyBiennial Frequency = "biennial"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom, FrequencyBiennial:
		return true
	}
	return false
}

// Priority ranks a reminder.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// MaxProgress is the ceiling for Reminder.Progress.
const MaxProgress = 100

// ProgressStep is added to Reminder.Progress on each completion.
const ProgressStep = 10

// Reminder represents a recurring task definition.
type Reminder struct {
	ID              string     `json:"id"`
	Message         string     `json:"message"`
	Frequency       Frequency  `json:"frequency"`
	Category        string     `json:"category"`
	Priority        Priority   `json:"priority"`
	CustomDays      []int      `json:"customDays,omitempty"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	CompletionCount int        `json:"completionCount"`
	Streak          int        `json:"streak"`
	Progress        int        `json:"progress"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastCompleted   *time.Time `json:"lastCompleted,omitempty"`
}

// IsDue reports whether the reminder has a due date at or before now.
func (r Reminder) IsDue(now time.Time) bool {
	return r.DueDate != nil && !r.DueDate.After(now)
}

// Clone returns a deep copy so callers never share pointers with the store.
func (r Reminder) Clone() Reminder {
	out := r
	if r.DueDate != nil {
		due := *r.DueDate
		out.DueDate = &due
	}
	if r.LastCompleted != nil {
		last := *r.LastCompleted
		out.LastCompleted = &last
	}
	if r.CustomDays != nil {
		out.CustomDays = append([]int(nil), r.CustomDays...)
	}
	return out
}

// Draft carries the user-supplied fields of a new reminder.
type Draft struct {
	Message    string     `json:"message"`
	Frequency  Frequency  `json:"frequency"`
	Category   string     `json:"category"`
	Priority   Priority   `json:"priority"`
	CustomDays []int      `json:"customDays,omitempty"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
}

// Patch lists the fields an edit may change. Nil fields are left untouched.
type Patch struct {
	Message    *string    `json:"message,omitempty"`
	Frequency  *Frequency `json:"frequency,omitempty"`
	Category   *string    `json:"category,omitempty"`
	Priority   *Priority  `json:"priority,omitempty"`
	CustomDays []int      `json:"customDays,omitempty"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
}

// Apply merges the patch into r.
func (p Patch) Apply(r *Reminder) {
	if p.Message != nil {
		r.Message = *p.Message
	}
	if p.Frequency != nil {
		r.Frequency = *p.Frequency
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Priority != nil {
		r.Priority = *p.Priority
	}
	if p.CustomDays != nil {
		r.CustomDays = append([]int(nil), p.CustomDays...)
	}
	if p.DueDate != nil {
		due := *p.DueDate
		r.DueDate = &due
	}
}
