package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stajdefterim/backend/internal/models"
)

type Internships struct {
	db *gorm.DB
}

func NewInternships(db *gorm.DB) *Internships {
	return &Internships{db: db}
}

func (r *Internships) ListByUser(ctx context.Context, userID string) ([]models.Internship, error) {
	var internships []models.Internship
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&internships).Error
	return internships, err
}

func (r *Internships) GetActive(ctx context.Context, userID string) (*models.Internship, error) {
	var internship models.Internship
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&internship).Error
	if err != nil {
		return nil, asNotFound(err)
	}
	return &internship, nil
}

func (r *Internships) GetByID(ctx context.Context, id string) (*models.Internship, error) {
	var internship models.Internship
	if err := r.db.WithContext(ctx).First(&internship, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &internship, nil
}

func (r *Internships) GetOwned(ctx context.Context, id, userID string) (*models.Internship, error) {
	var internship models.Internship
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&internship).Error
	if err != nil {
		return nil, asNotFound(err)
	}
	return &internship, nil
}

// Create deactivates the user's other internships so that at most one
// internship is active at a time.
func (r *Internships) Create(ctx context.Context, internship *models.Internship) error {
	if internship.ID == "" {
		internship.ID = uuid.NewString()
	}
	internship.IsActive = true
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Internship{}).
			Where("user_id = ?", internship.UserID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(internship).Error
	})
}

// SetActive makes the given internship the user's single active one.
func (r *Internships) SetActive(ctx context.Context, id, userID string) (*models.Internship, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Internship{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Internship{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetOwned(ctx, id, userID)
}

func (r *Internships) Update(ctx context.Context, id, userID string, updates map[string]interface{}) (*models.Internship, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Internship{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Internships) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Internship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
