package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stajdefterim/backend/internal/models"
)

type Progress struct {
	db *gorm.DB
}

func NewProgress(db *gorm.DB) *Progress {
	return &Progress{db: db}
}

func (r *Progress) ListByInternship(ctx context.Context, userID, internshipID string) ([]models.DailyProgress, error) {
	var entries []models.DailyProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND internship_id = ?", userID, internshipID).
		Order("day_number ASC").
		Find(&entries).Error
	return entries, err
}

// Upsert records progress for a day, replacing any earlier entry for the
// same internship day.
func (r *Progress) Upsert(ctx context.Context, entry *models.DailyProgress) error {
	var existing models.DailyProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND internship_id = ? AND day_number = ?",
			entry.UserID, entry.InternshipID, entry.DayNumber).
		First(&existing).Error
	switch {
	case err == nil:
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(entry).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		return r.db.WithContext(ctx).Create(entry).Error
	default:
		return err
	}
}

func (r *Progress) Delete(ctx context.Context, userID, internshipID string, dayNumber int) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND internship_id = ? AND day_number = ?", userID, internshipID, dayNumber).
		Delete(&models.DailyProgress{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SumExpSince totals experience points earned for an internship on or
// after the given time.
func (r *Progress) SumExpSince(ctx context.Context, userID, internshipID string, since time.Time) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.DailyProgress{}).
		Where("user_id = ? AND internship_id = ? AND created_at >= ?", userID, internshipID, since).
		Select("COALESCE(SUM(earned_exp), 0)").
		Scan(&total).Error
	return int(total), err
}
