package reminder

import (
	"context"
	"time"

	"github.com/pathakanu/myStreak/internal/model"
)

// CheckResult describes one due check.
type CheckResult struct {
	// Scanned is false when the check interval had not yet elapsed.
	Scanned bool
	// Due is the number of reminders found due.
	Due int
	// Alert is the reminder published by this check, if any.
	Alert *model.Reminder
}

// CheckDue runs the due check at now. When at least Profile.CheckInterval
// minutes have passed since the last check it picks one due reminder at
// random, publishes it as the current alert, and stamps the profile with now.
// Otherwise nothing changes.
func (s *Store) CheckDue(ctx context.Context, now time.Time) (CheckResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.profile.LastCheck()) < s.profile.Interval() {
		return CheckResult{}, nil
	}

	result := CheckResult{Scanned: true}
	var due []int
	for i := range s.reminders {
		if s.reminders[i].IsDue(now) {
			due = append(due, i)
		}
	}
	result.Due = len(due)
	if len(due) > 0 {
		r := s.reminders[due[s.pick(len(due))]]
		s.publish(r, "scheduler")
		out := r.Clone()
		result.Alert = &out
	}

	s.profile.LastCheckTime = now.UnixMilli()
	return result, s.saveProfile(ctx)
}

// publish overwrites the alert slot. Callers hold s.mu.
func (s *Store) publish(r model.Reminder, source string) {
	alert := r.Clone()
	s.alert = &alert
	s.metrics.AlertPublished(source)
}

// CurrentAlert returns the active alert, or nil.
func (s *Store) CurrentAlert() *model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.alert == nil {
		return nil
	}
	out := s.alert.Clone()
	return &out
}

// DismissAlert clears the alert slot.
func (s *Store) DismissAlert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alert = nil
}

// CompleteAlert completes the reminder shown in the alert slot and clears
// the slot. It returns nil when no alert is active or the reminder has since
// been deleted.
func (s *Store) CompleteAlert(ctx context.Context) (*model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.alert == nil {
		return nil, nil
	}
	id := s.alert.ID
	s.alert = nil

	r, err := s.complete(ctx, id)
	if r == nil {
		return nil, err
	}
	out := r.Clone()
	return &out, err
}
