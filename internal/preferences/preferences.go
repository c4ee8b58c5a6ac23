// Package preferences keeps the category palette and app settings.
package preferences

import (
	"context"
	"fmt"
	"log"
	"maps"
	"sync"

	"github.com/pathakanu/myStreak/internal/model"
	"github.com/pathakanu/myStreak/internal/storage"
)

// Service owns the "categories" and "appSettings" keys.
type Service struct {
	mu         sync.Mutex
	kv         storage.KV
	logger     *log.Logger
	categories model.CategoryColors
	settings   model.AppSettings
}

// Load reads the stored preferences, falling back to the defaults for
// anything missing or unreadable.
func Load(ctx context.Context, kv storage.KV, logger *log.Logger) *Service {
	s := &Service{
		kv:         kv,
		logger:     logger,
		categories: model.DefaultCategories(),
		settings:   model.DefaultAppSettings(),
	}

	var categories model.CategoryColors
	if found, err := storage.GetJSON(ctx, kv, storage.KeyCategories, &categories); err != nil {
		logger.Printf("preferences: load categories: %v", err)
	} else if found && categories != nil {
		s.categories = categories
	}

	settings := model.DefaultAppSettings()
	if found, err := storage.GetJSON(ctx, kv, storage.KeyAppSettings, &settings); err != nil {
		logger.Printf("preferences: load settings: %v", err)
	} else if found {
		s.settings = settings
	}
	return s
}

// Categories returns a copy of the palette.
func (s *Service) Categories() model.CategoryColors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.categories)
}

// SetCategory adds or recolours a category.
func (s *Service) SetCategory(ctx context.Context, name, color string) (model.CategoryColors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[name] = color
	return maps.Clone(s.categories), s.saveCategories(ctx)
}

// RemoveCategory deletes a category and reports whether it existed.
func (s *Service) RemoveCategory(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[name]; !ok {
		return false, nil
	}
	delete(s.categories, name)
	return true, s.saveCategories(ctx)
}

// Settings returns the current app settings.
func (s *Service) Settings() model.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings merges patch into the settings and persists them.
func (s *Service) UpdateSettings(ctx context.Context, patch model.SettingsPatch) (model.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.DarkMode != nil {
		s.settings.DarkMode = *patch.DarkMode
	}
	if patch.AlertSound != nil {
		s.settings.AlertSound = *patch.AlertSound
	}
	if patch.NotificationsEnabled != nil {
		s.settings.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if err := storage.SetJSON(ctx, s.kv, storage.KeyAppSettings, s.settings); err != nil {
		return s.settings, fmt.Errorf("preferences: save settings: %w", err)
	}
	return s.settings, nil
}

func (s *Service) saveCategories(ctx context.Context) error {
	if err := storage.SetJSON(ctx, s.kv, storage.KeyCategories, s.categories); err != nil {
		return fmt.Errorf("preferences: save categories: %w", err)
	}
	return nil
}
