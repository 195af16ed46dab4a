package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stajdefterim/backend/internal/middleware"
	"github.com/stajdefterim/backend/internal/models"
	"github.com/stajdefterim/backend/internal/store"
)

type ProgressHandler struct {
	progress *store.Progress
	logger   *zap.Logger
}

func NewProgressHandler(progress *store.Progress, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{progress: progress, logger: logger}
}

func (h *ProgressHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	entries, err := h.progress.ListByInternship(c.Request.Context(), user.ID, c.Param("internship_id"))
	if err != nil {
		h.logger.Error("daily progress fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch daily progress",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"daily_progress": entries},
	})
}

type completeDayRequest struct {
	InternshipID         string `json:"internship_id" binding:"required"`
	DayNumber            int    `json:"day_number" binding:"required"`
	CompletedTasks       int    `json:"completed_tasks"`
	EarnedCredits        int    `json:"earned_credits"`
	EarnedExp            int    `json:"earned_exp"`
	CompletionPercentage int    `json:"completion_percentage"`
}

// CompleteDay creates or updates the progress entry for a day.
func (h *ProgressHandler) CompleteDay(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req completeDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Internship ID and day number are required",
		})
		return
	}

	entry := &models.DailyProgress{
		UserID:               user.ID,
		InternshipID:         req.InternshipID,
		DayNumber:            req.DayNumber,
		CompletedTasks:       req.CompletedTasks,
		EarnedCredits:        req.EarnedCredits,
		EarnedExp:            req.EarnedExp,
		CompletionPercentage: req.CompletionPercentage,
	}
	if err := h.progress.Upsert(c.Request.Context(), entry); err != nil {
		h.logger.Error("daily progress save failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to save daily progress",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"daily_progress": entry},
	})
}

func (h *ProgressHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	dayNumber, err := strconv.Atoi(c.Param("day_number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Invalid day number",
		})
		return
	}

	if err := h.progress.Delete(c.Request.Context(), user.ID, c.Param("internship_id"), dayNumber); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Daily progress not found",
			})
			return
		}
		h.logger.Error("daily progress deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to delete daily progress",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Daily progress deleted successfully",
	})
}
