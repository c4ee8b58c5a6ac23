package reminder

import (
	"strings"

	"github.com/pathakanu/myStreak/internal/model"
)

// FilterAll disables a category or priority constraint.
const FilterAll = "All"

// Filter narrows a reminder listing. The zero value matches everything.
type Filter struct {
	// Query is matched case-insensitively against the message.
	Query    string
	Category string
	Priority model.Priority
}

// Match reports whether r satisfies every constraint of f.
func (f Filter) Match(r model.Reminder) bool {
	if f.Query != "" && !strings.Contains(strings.ToLower(r.Message), strings.ToLower(f.Query)) {
		return false
	}
	if f.Category != "" && f.Category != FilterAll && r.Category != f.Category {
		return false
	}
	if f.Priority != "" && f.Priority != FilterAll && r.Priority != f.Priority {
		return false
	}
	return true
}
