package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathakanu/myStreak/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKV stores values in the entries table.
type GormKV struct {
	db *gorm.DB
}

// NewGormKV wraps a migrated GORM connection.
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

// Get returns the raw value stored at key.
func (s *GormKV) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.Entry
	err := s.db.WithContext(ctx).Where(&model.Entry{Key: key}).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

// Set inserts or replaces the value at key.
func (s *GormKV) Set(ctx context.Context, key string, value []byte) error {
	entry := model.Entry{Key: key, Value: string(value)}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
