package model

import "time"

// DefaultCheckInterval is the number of minutes between due scans.
const DefaultCheckInterval = 60

// Profile holds the scheduler bookkeeping.
type Profile struct {
	// CheckInterval is in minutes.
	CheckInterval int `json:"checkInterval"`
	// LastCheckTime is a Unix timestamp in milliseconds.
	LastCheckTime int64 `json:"lastCheckTime"`
}

// NewProfile returns the default profile stamped at now.
func NewProfile(checkInterval int, now time.Time) Profile {
	if checkInterval < 1 {
		checkInterval = DefaultCheckInterval
	}
	return Profile{CheckInterval: checkInterval, LastCheckTime: now.UnixMilli()}
}

// LastCheck returns LastCheckTime as a time.Time.
func (p Profile) LastCheck() time.Time {
	return time.UnixMilli(p.LastCheckTime)
}

// Interval returns CheckInterval as a duration.
func (p Profile) Interval() time.Duration {
	return time.Duration(p.CheckInterval) * time.Minute
}

// ProfilePatch lists the profile fields a user may change.
type ProfilePatch struct {
	CheckInterval *int `json:"checkInterval,omitempty"`
}

// State is the persisted snapshot owned by the reminder store.
type State struct {
	Reminders []Reminder
	// Profile is nil when nothing has been stored yet.
	Profile *Profile
}
