package storage

import (
	"context"
	"errors"

	"github.com/pathakanu/myStreak/internal/model"
)

// StateRepository maps the reminder store snapshot onto the "reminders" and
// "profile" keys.
type StateRepository struct {
	kv KV
}

// NewStateRepository returns a repository backed by kv.
func NewStateRepository(kv KV) *StateRepository {
	return &StateRepository{kv: kv}
}

// Load reads both keys. A key that cannot be read or decoded is left at its
// zero value and its error is joined into the result, so callers always get
// a usable state.
func (r *StateRepository) Load(ctx context.Context) (model.State, error) {
	var (
		state model.State
		errs  []error
	)

	var reminders []model.Reminder
	if _, err := GetJSON(ctx, r.kv, KeyReminders, &reminders); err != nil {
		errs = append(errs, err)
	} else {
		state.Reminders = reminders
	}

	var profile model.Profile
	found, err := GetJSON(ctx, r.kv, KeyProfile, &profile)
	switch {
	case err != nil:
		errs = append(errs, err)
	case found:
		state.Profile = &profile
	}

	return state, errors.Join(errs...)
}

// SaveReminders writes the full collection.
func (r *StateRepository) SaveReminders(ctx context.Context, reminders []model.Reminder) error {
	if reminders == nil {
		reminders = []model.Reminder{}
	}
	return SetJSON(ctx, r.kv, KeyReminders, reminders)
}

// SaveProfile writes the profile.
func (r *StateRepository) SaveProfile(ctx context.Context, profile model.Profile) error {
	return SetJSON(ctx, r.kv, KeyProfile, profile)
}
