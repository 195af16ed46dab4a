package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stajdefterim/backend/internal/models"
)

type Notes struct {
	db *gorm.DB
}

func NewNotes(db *gorm.DB) *Notes {
	return &Notes{db: db}
}

// NoteFilter narrows a note listing. Zero values are ignored.
type NoteFilter struct {
	InternshipID string
	DayNumber    int
	Topic        string
}

func (r *Notes) ListByUser(ctx context.Context, userID string, filter NoteFilter) ([]models.Note, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.InternshipID != "" {
		query = query.Where("internship_id = ?", filter.InternshipID)
	}
	if filter.DayNumber > 0 {
		query = query.Where("day_number = ?", filter.DayNumber)
	}
	if filter.Topic != "" {
		query = query.Where("topic LIKE ?", "%"+filter.Topic+"%")
	}
	var notes []models.Note
	err := query.Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func (r *Notes) Create(ctx context.Context, note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *Notes) Update(ctx context.Context, id, userID string, updates map[string]interface{}) (*models.Note, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var note models.Note
	if err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &note, nil
}

func (r *Notes) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListSince returns an internship's notes created on or after the given
// time, newest last, used by the daily summary email.
func (r *Notes) ListSince(ctx context.Context, userID, internshipID string, since time.Time) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND internship_id = ? AND created_at >= ?", userID, internshipID, since).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}
