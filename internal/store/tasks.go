package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stajdefterim/backend/internal/models"
)

type Tasks struct {
	db *gorm.DB
}

func NewTasks(db *gorm.DB) *Tasks {
	return &Tasks{db: db}
}

func (r *Tasks) ListByUser(ctx context.Context, userID, internshipID string) ([]models.Task, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if internshipID != "" {
		query = query.Where("internship_id = ?", internshipID)
	}
	var tasks []models.Task
	err := query.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *Tasks) GetOwned(ctx context.Context, id, userID string) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, asNotFound(err)
	}
	return &task, nil
}

func (r *Tasks) Create(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *Tasks) Update(ctx context.Context, id, userID string, updates map[string]interface{}) (*models.Task, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Task{}).
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

func (r *Tasks) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates completion and priority counts for the task list screens.
type TaskStats struct {
	Total      int64            `json:"total"`
	Completed  int64            `json:"completed"`
	Pending    int64            `json:"pending"`
	ByPriority map[string]int64 `json:"by_priority"`
}

func (r *Tasks) Stats(ctx context.Context, userID, internshipID string) (*TaskStats, error) {
	query := r.db.WithContext(ctx).Model(&models.Task{}).Where("user_id = ?", userID)
	if internshipID != "" {
		query = query.Where("internship_id = ?", internshipID)
	}

	var tasks []models.Task
	if err := query.Select("completed", "priority").Find(&tasks).Error; err != nil {
		return nil, err
	}

	stats := &TaskStats{ByPriority: map[string]int64{
		models.PriorityUrgent:    0,
		models.PriorityImportant: 0,
		models.PriorityMedium:    0,
		models.PriorityLow:       0,
	}}
	for _, task := range tasks {
		stats.Total++
		if task.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
		if _, ok := stats.ByPriority[task.Priority]; ok {
			stats.ByPriority[task.Priority]++
		}
	}
	return stats, nil
}

// CountCompletedSince counts tasks for an internship completed on or after
// the given time, used by the daily summary email.
func (r *Tasks) CountCompletedSince(ctx context.Context, userID, internshipID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("user_id = ? AND internship_id = ? AND completed = ? AND updated_at >= ?",
			userID, internshipID, true, since).
		Count(&count).Error
	return count, err
}
