package reminder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pathakanu/myStreak/internal/metrics"
	"github.com/pathakanu/myStreak/internal/model"
)

// Repository persists the store snapshot.
type Repository interface {
	Load(ctx context.Context) (model.State, error)
	SaveReminders(ctx context.Context, reminders []model.Reminder) error
	SaveProfile(ctx context.Context, profile model.Profile) error
}

// Store owns the reminder collection, the scheduler profile and the current
// alert. All access goes through its methods, which are safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	repo    Repository
	logger  *log.Logger
	metrics *metrics.Metrics

	now             func() time.Time
	location        *time.Location
	pick            func(n int) int
	newID           func() string
	defaultInterval int

	reminders []model.Reminder
	profile   model.Profile
	alert     *model.Reminder
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the zone used for calendar-day arithmetic.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithPicker replaces the random index source. pick(n) must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *Store) { s.pick = pick }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithMetrics records store activity.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithDefaultCheckInterval sets the interval, in minutes, of a freshly created profile.
func WithDefaultCheckInterval(minutes int) Option {
	return func(s *Store) { s.defaultInterval = minutes }
}

// Open loads the persisted state and returns a ready store. Unreadable data
// is logged and replaced by an empty collection or a default profile.
func Open(ctx context.Context, repo Repository, logger *log.Logger, opts ...Option) *Store {
	s := &Store{
		repo:            repo,
		logger:          logger,
		now:             time.Now,
		location:        time.Local,
		pick:            rand.Intn,
		newID:           uuid.NewString,
		defaultInterval: model.DefaultCheckInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	state, err := repo.Load(ctx)
	if err != nil {
		s.logger.Printf("store: load state, falling back to defaults: %v", err)
	}
	s.reminders = state.Reminders
	if state.Profile != nil && state.Profile.CheckInterval > 0 {
		s.profile = *state.Profile
	} else {
		s.profile = model.NewProfile(s.defaultInterval, s.now())
		if err := s.repo.SaveProfile(ctx, s.profile); err != nil {
			s.logger.Printf("store: save default profile: %v", err)
		}
	}
	s.metrics.SetReminders(len(s.reminders))
	return s
}

// Add creates a reminder from draft and appends it to the collection.
func (s *Store) Add(ctx context.Context, draft model.Draft) (model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := model.Reminder{
		ID:         s.newID(),
		Message:    draft.Message,
		Frequency:  draft.Frequency,
		Category:   draft.Category,
		Priority:   draft.Priority,
		CustomDays: append([]int(nil), draft.CustomDays...),
		CreatedAt:  s.now(),
	}
	if draft.DueDate != nil {
		due := *draft.DueDate
		r.DueDate = &due
	}
	s.reminders = append(s.reminders, r)
	s.metrics.ReminderCreated()
	s.metrics.SetReminders(len(s.reminders))

	return r.Clone(), s.saveReminders(ctx)
}

// Edit merges patch into the reminder with id. It returns nil, and changes
// nothing, when id is unknown.
func (s *Store) Edit(ctx context.Context, id string, patch model.Patch) (*model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	patch.Apply(&s.reminders[i])
	out := s.reminders[i].Clone()
	return &out, s.saveReminders(ctx)
}

// Delete removes the reminder with id and reports whether it existed.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
	s.metrics.ReminderDeleted()
	s.metrics.SetReminders(len(s.reminders))
	return true, s.saveReminders(ctx)
}

// Complete records a completion for the reminder with id. It returns nil,
// and changes nothing, when id is unknown.
func (s *Store) Complete(ctx context.Context, id string) (*model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.complete(ctx, id)
	if r == nil {
		return nil, err
	}
	out := r.Clone()
	return &out, err
}

func (s *Store) complete(ctx context.Context, id string) (*model.Reminder, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	now := s.now()
	r := &s.reminders[i]
	r.CompletionCount++
	r.Streak = nextStreak(r.LastCompleted, r.Streak, now, s.location)
	r.Progress = min(r.Progress+model.ProgressStep, model.MaxProgress)
	r.LastCompleted = &now
	s.metrics.ReminderCompleted()
	return r, s.saveReminders(ctx)
}

// nextStreak continues the streak when the previous completion fell on the
// calendar day before now, and restarts it at 1 otherwise.
func nextStreak(last *time.Time, streak int, now time.Time, loc *time.Location) int {
	if last == nil {
		return 1
	}
	yesterday := now.In(loc).AddDate(0, 0, -1)
	if sameDay(last.In(loc), yesterday) {
		return streak + 1
	}
	return 1
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Get returns the reminder with id, or nil.
func (s *Store) Get(id string) *model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	out := s.reminders[i].Clone()
	return &out
}

// List returns the reminders matching filter in insertion order.
func (s *Store) List(filter Filter) []model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		if filter.Match(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Categories returns the distinct reminder categories in first-seen order.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.reminders))
	var out []string
	for _, r := range s.reminders {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}

// Stats computes the dashboard statistics for the current collection.
func (s *Store) Stats() model.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeStats(s.reminders, s.now(), s.location)
}

// Random returns a uniformly chosen reminder, or nil when the store is empty.
func (s *Store) Random() *model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.reminders) == 0 {
		return nil
	}
	out := s.reminders[s.pick(len(s.reminders))].Clone()
	return &out
}

// ShowRandom picks a random reminder and publishes it as the current alert.
func (s *Store) ShowRandom() *model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.reminders) == 0 {
		return nil
	}
	r := s.reminders[s.pick(len(s.reminders))]
	s.publish(r, "random")
	out := r.Clone()
	return &out
}

// Profile returns the scheduler profile.
func (s *Store) Profile() model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile applies patch and persists the profile. Intervals below one
// minute are ignored.
func (s *Store) UpdateProfile(ctx context.Context, patch model.ProfilePatch) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.CheckInterval != nil && *patch.CheckInterval >= 1 {
		s.profile.CheckInterval = *patch.CheckInterval
	}
	return s.profile, s.saveProfile(ctx)
}

func (s *Store) indexOf(id string) int {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) saveReminders(ctx context.Context) error {
	if err := s.repo.SaveReminders(ctx, s.reminders); err != nil {
		return fmt.Errorf("store: save reminders: %w", err)
	}
	return nil
}

func (s *Store) saveProfile(ctx context.Context) error {
	if err := s.repo.SaveProfile(ctx, s.profile); err != nil {
		return fmt.Errorf("store: save profile: %w", err)
	}
	return nil
}
