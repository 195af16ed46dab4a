package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stajdefterim/backend/internal/models"
)

type VoiceNotes struct {
	db *gorm.DB
}

func NewVoiceNotes(db *gorm.DB) *VoiceNotes {
	return &VoiceNotes{db: db}
}

func (r *VoiceNotes) ListByDay(ctx context.Context, userID, internshipID string, dayNumber int) ([]models.VoiceNote, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND internship_id = ?", userID, internshipID)
	if dayNumber > 0 {
		query = query.Where("day_number = ?", dayNumber)
	}
	var notes []models.VoiceNote
	err := query.Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func (r *VoiceNotes) Create(ctx context.Context, note *models.VoiceNote) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *VoiceNotes) Update(ctx context.Context, id, userID string, updates map[string]interface{}) (*models.VoiceNote, error) {
	res := r.db.WithContext(ctx).
		Model(&models.VoiceNote{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var note models.VoiceNote
	if err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &note, nil
}

func (r *VoiceNotes) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.VoiceNote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
