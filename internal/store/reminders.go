package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stajdefterim/backend/internal/models"
)

type Reminders struct {
	db *gorm.DB
}

func NewReminders(db *gorm.DB) *Reminders {
	return &Reminders{db: db}
}

// ReminderFilter narrows a reminder listing.
type ReminderFilter struct {
	InternshipID string
	ActiveOnly   bool
	UpcomingOnly bool
}

func (r *Reminders) ListByUser(ctx context.Context, userID string, filter ReminderFilter) ([]models.Reminder, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.InternshipID != "" {
		query = query.Where("internship_id = ?", filter.InternshipID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.UpcomingOnly {
		now := time.Now()
		query = query.Where("reminder_date >= ? AND reminder_date <= ?", now, now.AddDate(0, 0, 7))
	}
	var reminders []models.Reminder
	err := query.Order("reminder_date ASC").Find(&reminders).Error
	return reminders, err
}

// ListUpcoming returns the next active reminders within seven days.
func (r *Reminders) ListUpcoming(ctx context.Context, userID string, limit int) ([]models.Reminder, error) {
	now := time.Now()
	var reminders []models.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Where("reminder_date >= ? AND reminder_date <= ?", now, now.AddDate(0, 0, 7)).
		Order("reminder_date ASC").
		Limit(limit).
		Find(&reminders).Error
	return reminders, err
}

func (r *Reminders) GetOwned(ctx context.Context, id, userID string) (*models.Reminder, error) {
	var reminder models.Reminder
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&reminder).Error
	if err != nil {
		return nil, asNotFound(err)
	}
	return &reminder, nil
}

func (r *Reminders) Create(ctx context.Context, reminder *models.Reminder) error {
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *Reminders) Update(ctx context.Context, id, userID string, updates map[string]interface{}) (*models.Reminder, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetOwned(ctx, id, userID)
}

func (r *Reminders) Complete(ctx context.Context, id, userID string) (*models.Reminder, error) {
	return r.Update(ctx, id, userID, map[string]interface{}{"is_completed": true})
}

func (r *Reminders) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Reminder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListEligible returns the reminders due for email dispatch: active, not
// completed, not yet sent, and scheduled at or before now. No ordering is
// imposed beyond what the database returns.
func (r *Reminders) ListEligible(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.WithContext(ctx).
		Where("reminder_date <= ? AND is_active = ? AND is_completed = ? AND email_sent = ?",
			now, true, false, false).
		Find(&reminders).Error
	return reminders, err
}

// MarkSent flags a reminder as delivered. The poller calls this exactly
// once per successful send; the flag keeps the reminder out of every
// later eligible set.
func (r *Reminders) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"email_sent":    true,
			"email_sent_at": sentAt,
		}).Error
}
