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

var validPriorities = map[string]bool{
	models.PriorityUrgent:    true,
	models.PriorityImportant: true,
	models.PriorityMedium:    true,
	models.PriorityLow:       true,
}

type TaskHandler struct {
	tasks  *store.Tasks
	logger *zap.Logger
}

func NewTaskHandler(tasks *store.Tasks, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, logger: logger}
}

func (h *TaskHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tasks, err := h.tasks.ListByUser(c.Request.Context(), user.ID, c.Query("internship_id"))
	if err != nil {
		h.logger.Error("tasks fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch tasks",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"tasks": tasks},
	})
}

func (h *TaskHandler) Stats(c *gin.Context) {
	user := middleware.CurrentUser(c)

	stats, err := h.tasks.Stats(c.Request.Context(), user.ID, c.Query("internship_id"))
	if err != nil {
		h.logger.Error("task stats fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch task statistics",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"stats": stats},
	})
}

type createTaskRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	InternshipID *string    `json:"internship_id"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Task title is required",
		})
		return
	}
	if req.Priority != "" && !validPriorities[req.Priority] {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Invalid priority. Must be one of: acil, onemli, orta, dusuk",
		})
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	task := &models.Task{
		UserID:       user.ID,
		InternshipID: req.InternshipID,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if err := h.tasks.Create(c.Request.Context(), task); err != nil {
		h.logger.Error("task creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to create task",
		})
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    gin.H{"task": task},
	})
}

func (h *TaskHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}
	delete(updates, "user_id")
	delete(updates, "id")
	if priority, ok := updates["priority"].(string); ok && !validPriorities[priority] {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Invalid priority. Must be one of: acil, onemli, orta, dusuk",
		})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), c.Param("id"), user.ID, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Task not found",
			})
			return
		}
		h.logger.Error("task update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to update task",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"task": task},
	})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.tasks.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Task not found",
			})
			return
		}
		h.logger.Error("task deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to delete task",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}
