package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stajdefterim/backend/internal/models"
)

type Settings struct {
	db *gorm.DB
}

func NewSettings(db *gorm.DB) *Settings {
	return &Settings{db: db}
}

// GetByUserID returns the user's notification settings or ErrNotFound.
// The scheduler relies on the ErrNotFound case: a user with no settings
// row receives no scheduled email.
func (r *Settings) GetByUserID(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settings).Error
	if err != nil {
		return nil, asNotFound(err)
	}
	return &settings, nil
}

// GetOrCreate returns the settings row, creating one with every toggle
// enabled when the user has none yet. Only the API read path creates
// rows lazily; the scheduler never does.
func (r *Settings) GetOrCreate(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	settings, err := r.GetByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	created := &models.NotificationSettings{
		ID:                 uuid.NewString(),
		UserID:             userID,
		EmailNotifications: true,
		PushNotifications:  true,
		DailyReminders:     true,
		WeeklyReports:      true,
		TaskDeadlines:      true,
	}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Settings) Upsert(ctx context.Context, userID string, updates map[string]interface{}) (*models.NotificationSettings, error) {
	delete(updates, "user_id")

	existing, err := r.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if err := r.db.WithContext(ctx).
			Model(&models.NotificationSettings{}).
			Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
		return r.GetByUserID(ctx, userID)
	}

	if _, err := r.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.NotificationSettings{}).
			Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByUserID(ctx, userID)
}
