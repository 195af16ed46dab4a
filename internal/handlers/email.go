package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stajdefterim/backend/internal/mail"
	"github.com/stajdefterim/backend/internal/middleware"
	"github.com/stajdefterim/backend/internal/models"
	"github.com/stajdefterim/backend/internal/store"
)

// EmailHandler drives on-demand sends over the same mailer the
// scheduler uses.
type EmailHandler struct {
	mailer      *mail.Mailer
	reminders   *store.Reminders
	tasks       *store.Tasks
	notes       *store.Notes
	progress    *store.Progress
	internships *store.Internships
	logger      *zap.Logger
}

func NewEmailHandler(
	mailer *mail.Mailer,
	reminders *store.Reminders,
	tasks *store.Tasks,
	notes *store.Notes,
	progress *store.Progress,
	internships *store.Internships,
	logger *zap.Logger,
) *EmailHandler {
	return &EmailHandler{
		mailer:      mailer,
		reminders:   reminders,
		tasks:       tasks,
		notes:       notes,
		progress:    progress,
		internships: internships,
		logger:      logger,
	}
}

func (h *EmailHandler) SendTest(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "User email not found",
		})
		return
	}

	name := user.Name
	if name == "" {
		name = "Kullanıcı"
	}
	result := h.mailer.Send(c.Request.Context(), user.Email, mail.TestEmail{
		Name:   name,
		Email:  user.Email,
		SentAt: time.Now(),
	})
	if !result.Success {
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Test e-postası gönderilemedi",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"message_id": result.MessageID},
		Message: "Test e-postası başarıyla gönderildi",
	})
}

func (h *EmailHandler) SendReminder(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "User email not found",
		})
		return
	}

	reminder, err := h.reminders.GetOwned(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Reminder not found",
			})
			return
		}
		h.logger.Error("reminder fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Hatırlatıcı e-postası gönderilemedi",
		})
		return
	}

	email := mail.ReminderEmail{
		Title:        reminder.Title,
		Description:  reminder.Description,
		ReminderDate: reminder.ReminderDate,
	}
	if reminder.InternshipID != nil {
		if internship, err := h.internships.GetOwned(c.Request.Context(), *reminder.InternshipID, user.ID); err == nil {
			email.Internship = &mail.InternshipSummary{
				CompanyName: internship.CompanyName,
				Department:  internship.Department,
			}
		}
	}

	result := h.mailer.Send(c.Request.Context(), user.Email, email)
	if !result.Success {
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Hatırlatıcı e-postası gönderilemedi",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"message_id": result.MessageID},
		Message: "Hatırlatıcı e-postası başarıyla gönderildi",
	})
}

type taskDeadlineRequest struct {
	TaskID  string `json:"task_id" binding:"required"`
	Message string `json:"message"`
}

func (h *EmailHandler) SendTaskDeadline(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "User email not found",
		})
		return
	}

	var req taskDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Task ID is required",
		})
		return
	}

	task, err := h.tasks.GetOwned(c.Request.Context(), req.TaskID, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Task not found",
			})
			return
		}
		h.logger.Error("task fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Görev deadline e-postası gönderilemedi",
		})
		return
	}

	note := req.Message
	if note == "" {
		note = "Görev teslim tarihi yaklaşıyor!"
	}
	email := mail.TaskDeadlineEmail{
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Note:        note,
	}
	if task.EndDate != nil {
		email.EndDate = *task.EndDate
	}
	if task.InternshipID != nil {
		if internship, err := h.internships.GetOwned(c.Request.Context(), *task.InternshipID, user.ID); err == nil {
			email.Internship = &mail.InternshipSummary{
				CompanyName: internship.CompanyName,
				Department:  internship.Department,
			}
		}
	}

	result := h.mailer.Send(c.Request.Context(), user.Email, email)
	if !result.Success {
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Görev deadline e-postası gönderilemedi",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"message_id": result.MessageID},
		Message: "Görev deadline e-postası başarıyla gönderildi",
	})
}

type dailySummaryRequest struct {
	InternshipID string `json:"internship_id" binding:"required"`
	DayNumber    int    `json:"day_number"`
}

func (h *EmailHandler) SendDailySummary(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "User email not found",
		})
		return
	}

	var req dailySummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Internship ID is required",
		})
		return
	}

	ctx := c.Request.Context()
	internship, err := h.internships.GetOwned(ctx, req.InternshipID, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Internship not found",
			})
			return
		}
		h.logger.Error("internship fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Günlük özet e-postası gönderilemedi",
		})
		return
	}

	// The summary covers everything recorded since local midnight.
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	completedTasks, err := h.tasks.CountCompletedSince(ctx, user.ID, req.InternshipID, midnight)
	if err != nil {
		h.logger.Error("completed task count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Günlük özet e-postası gönderilemedi",
		})
		return
	}
	todayNotes, err := h.notes.ListSince(ctx, user.ID, req.InternshipID, midnight)
	if err != nil {
		h.logger.Error("notes fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Günlük özet e-postası gönderilemedi",
		})
		return
	}
	earnedExp, err := h.progress.SumExpSince(ctx, user.ID, req.InternshipID, midnight)
	if err != nil {
		h.logger.Error("progress sum failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Günlük özet e-postası gönderilemedi",
		})
		return
	}

	summaries := make([]mail.NoteSummary, 0, len(todayNotes))
	for _, note := range todayNotes {
		summaries = append(summaries, mail.NoteSummary{Topic: note.Topic, Content: note.Content})
	}

	result := h.mailer.Send(ctx, user.Email, mail.DailySummaryEmail{
		Internship: mail.InternshipSummary{
			CompanyName: internship.CompanyName,
			Department:  internship.Department,
		},
		Date:           now,
		DayNumber:      req.DayNumber,
		CompletedTasks: int(completedTasks),
		TotalNotes:     len(todayNotes),
		EarnedExp:      earnedExp,
		TodayNotes:     summaries,
	})
	if !result.Success {
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Günlük özet e-postası gönderilemedi",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"message_id": result.MessageID},
		Message: "Günlük özet e-postası başarıyla gönderildi",
	})
}

// Status reports whether the outbound mail transport is reachable.
func (h *EmailHandler) Status(c *gin.Context) {
	result := h.mailer.VerifyConnection(c.Request.Context())
	if !result.Success {
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Data:    gin.H{"status": "disconnected"},
			Error:   result.Error,
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"status": "connected"},
		Message: "E-posta servisi aktif",
	})
}
