package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pathakanu/myStreak/internal/database"
	"github.com/pathakanu/myStreak/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestGormKV(t *testing.T) *GormKV {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite memory: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewGormKV(db)
}

func backends(t *testing.T) map[string]KV {
	return map[string]KV{
		"memory": NewMemoryKV(),
		"gorm":   newTestGormKV(t),
	}
}

func TestKVGetMissing(t *testing.T) {
	t.Parallel()
	for name, kv := range backends(t) {
		if _, err := kv.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s: Get missing = %v, want ErrNotFound", name, err)
		}
	}
}

func TestKVSetOverwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for name, kv := range backends(t) {
		if err := kv.Set(ctx, KeyProfile, []byte(`{"checkInterval":5}`)); err != nil {
			t.Fatalf("%s: first set: %v", name, err)
		}
		if err := kv.Set(ctx, KeyProfile, []byte(`{"checkInterval":30}`)); err != nil {
			t.Fatalf("%s: second set: %v", name, err)
		}
		got, err := kv.Get(ctx, KeyProfile)
		if err != nil {
			t.Fatalf("%s: get: %v", name, err)
		}
		if string(got) != `{"checkInterval":30}` {
			t.Fatalf("%s: got %s, want overwritten value", name, got)
		}
	}
}

func TestGetJSONDecodeError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := NewMemoryKV()
	_ = kv.Set(ctx, KeyCategories, []byte("{not json"))

	var colors model.CategoryColors
	found, err := GetJSON(ctx, kv, KeyCategories, &colors)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if found {
		t.Fatalf("found should be false on decode error")
	}
}

func TestStateRepositoryRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewStateRepository(newTestGormKV(t))

	state, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(state.Reminders) != 0 || state.Profile != nil {
		t.Fatalf("expected empty state, got %+v", state)
	}

	due := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	reminders := []model.Reminder{{
		ID:        "a1",
		Message:   "drink water",
		Frequency: model.FrequencyHourly,
		Category:  "Health",
		Priority:  model.PriorityHigh,
		DueDate:   &due,
		CreatedAt: due.Add(-time.Hour),
	}}
	if err := repo.SaveReminders(ctx, reminders); err != nil {
		t.Fatalf("save reminders: %v", err)
	}
	if err := repo.SaveProfile(ctx, model.Profile{CheckInterval: 15, LastCheckTime: 1234}); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	state, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(state.Reminders) != 1 || state.Reminders[0].Message != "drink water" {
		t.Fatalf("unexpected reminders: %+v", state.Reminders)
	}
	if !state.Reminders[0].DueDate.Equal(due) {
		t.Fatalf("due date = %v, want %v", state.Reminders[0].DueDate, due)
	}
	if state.Profile == nil || state.Profile.CheckInterval != 15 || state.Profile.LastCheckTime != 1234 {
		t.Fatalf("unexpected profile: %+v", state.Profile)
	}
}

func TestStateRepositoryMalformedFallsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := NewMemoryKV()
	_ = kv.Set(ctx, KeyReminders, []byte(`[{"id": 7`))
	_ = kv.Set(ctx, KeyProfile, []byte(`{"checkInterval":20,"lastCheckTime":99}`))

	state, err := NewStateRepository(kv).Load(ctx)
	if err == nil {
		t.Fatalf("expected error for malformed reminders")
	}
	if state.Reminders != nil {
		t.Fatalf("malformed reminders should load as empty, got %+v", state.Reminders)
	}
	if state.Profile == nil || state.Profile.CheckInterval != 20 {
		t.Fatalf("profile should still load, got %+v", state.Profile)
	}
}

func TestSaveRemindersWritesEmptyArray(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := NewMemoryKV()
	if err := NewStateRepository(kv).SaveReminders(ctx, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := kv.Get(ctx, KeyReminders)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("got %s, want []", raw)
	}
}
