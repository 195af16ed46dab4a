package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stajdefterim/backend/internal/middleware"
	"github.com/stajdefterim/backend/internal/models"
	"github.com/stajdefterim/backend/internal/store"
)

var validReminderTypes = map[string]bool{
	models.ReminderTypeCustom:       true,
	models.ReminderTypeDaily:        true,
	models.ReminderTypeWeekly:       true,
	models.ReminderTypeTaskDeadline: true,
}

// ReminderHandler exposes reminder CRUD and the per-user notification
// settings the dispatch pipeline reads.
type ReminderHandler struct {
	reminders *store.Reminders
	settings  *store.CachedSettings
	logger    *zap.Logger
}

func NewReminderHandler(reminders *store.Reminders, settings *store.CachedSettings, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{reminders: reminders, settings: settings, logger: logger}
}

func (h *ReminderHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	filter := store.ReminderFilter{
		InternshipID: c.Query("internship_id"),
		ActiveOnly:   c.Query("active") == "true",
		UpcomingOnly: c.Query("upcoming") == "true",
	}
	reminders, err := h.reminders.ListByUser(c.Request.Context(), user.ID, filter)
	if err != nil {
		h.logger.Error("reminders fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch reminders",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"reminders": reminders},
	})
}

func (h *ReminderHandler) Upcoming(c *gin.Context) {
	user := middleware.CurrentUser(c)

	reminders, err := h.reminders.ListUpcoming(c.Request.Context(), user.ID, 10)
	if err != nil {
		h.logger.Error("upcoming reminders fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch upcoming reminders",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"reminders": reminders},
	})
}

type createReminderRequest struct {
	Title             string    `json:"title" binding:"required"`
	Description       string    `json:"description"`
	ReminderType      string    `json:"reminder_type"`
	ReminderDate      time.Time `json:"reminder_date" binding:"required"`
	InternshipID      *string   `json:"internship_id"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern *string   `json:"recurrence_pattern"`
	Priority          string    `json:"priority"`
	NotificationTime  string    `json:"notification_time"`
}

func (h *ReminderHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Title and reminder date are required",
		})
		return
	}
	if req.ReminderType == "" {
		req.ReminderType = models.ReminderTypeCustom
	}
	if !validReminderTypes[req.ReminderType] {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Invalid reminder type",
		})
		return
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}
	if req.NotificationTime == "" {
		req.NotificationTime = "09:00:00"
	}

	reminder := &models.Reminder{
		UserID:            user.ID,
		InternshipID:      req.InternshipID,
		Title:             req.Title,
		Description:       req.Description,
		ReminderType:      req.ReminderType,
		ReminderDate:      req.ReminderDate,
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: req.RecurrencePattern,
		Priority:          req.Priority,
		NotificationTime:  req.NotificationTime,
		IsActive:          true,
	}
	if err := h.reminders.Create(c.Request.Context(), reminder); err != nil {
		h.logger.Error("reminder creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to create reminder",
		})
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    gin.H{"reminder": reminder},
	})
}

func (h *ReminderHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}
	delete(updates, "id")
	delete(updates, "user_id")
	delete(updates, "email_sent")
	delete(updates, "email_sent_at")
	if rt, ok := updates["reminder_type"].(string); ok && !validReminderTypes[rt] {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Invalid reminder type",
		})
		return
	}

	reminder, err := h.reminders.Update(c.Request.Context(), c.Param("id"), user.ID, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Reminder not found",
			})
			return
		}
		h.logger.Error("reminder update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to update reminder",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"reminder": reminder},
	})
}

func (h *ReminderHandler) Complete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	reminder, err := h.reminders.Complete(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Reminder not found",
			})
			return
		}
		h.logger.Error("reminder completion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to complete reminder",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"reminder": reminder},
		Message: "Reminder marked as completed",
	})
}

func (h *ReminderHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.reminders.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Reminder not found",
			})
			return
		}
		h.logger.Error("reminder deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to delete reminder",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Reminder deleted successfully",
	})
}

// GetSettings returns the caller's notification settings, creating the
// default row on first read.
func (h *ReminderHandler) GetSettings(c *gin.Context) {
	user := middleware.CurrentUser(c)

	settings, err := h.settings.GetOrCreate(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("notification settings fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch notification settings",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"settings": settings},
	})
}

type updateSettingsRequest struct {
	EmailNotifications *bool `json:"email_notifications"`
	PushNotifications  *bool `json:"push_notifications"`
	DailyReminders     *bool `json:"daily_reminders"`
	WeeklyReports      *bool `json:"weekly_reports"`
	TaskDeadlines      *bool `json:"task_deadlines"`
}

func (h *ReminderHandler) UpdateSettings(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	updates := map[string]interface{}{}
	if req.EmailNotifications != nil {
		updates["email_notifications"] = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		updates["push_notifications"] = *req.PushNotifications
	}
	if req.DailyReminders != nil {
		updates["daily_reminders"] = *req.DailyReminders
	}
	if req.WeeklyReports != nil {
		updates["weekly_reports"] = *req.WeeklyReports
	}
	if req.TaskDeadlines != nil {
		updates["task_deadlines"] = *req.TaskDeadlines
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Nothing to update",
		})
		return
	}

	settings, err := h.settings.Upsert(c.Request.Context(), user.ID, updates)
	if err != nil {
		h.logger.Error("notification settings update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to update notification settings",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"settings": settings},
	})
}
