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

type NoteHandler struct {
	notes  *store.Notes
	logger *zap.Logger
}

func NewNoteHandler(notes *store.Notes, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, logger: logger}
}

func (h *NoteHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	filter := store.NoteFilter{
		InternshipID: c.Query("internship_id"),
		Topic:        c.Query("topic"),
	}
	if day := c.Query("day_number"); day != "" {
		if n, err := strconv.Atoi(day); err == nil {
			filter.DayNumber = n
		}
	}

	notes, err := h.notes.ListByUser(c.Request.Context(), user.ID, filter)
	if err != nil {
		h.logger.Error("notes fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch notes",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"notes": notes},
	})
}

type createNoteRequest struct {
	Topic        string  `json:"topic" binding:"required"`
	Content      string  `json:"content" binding:"required"`
	DayNumber    *int    `json:"day_number"`
	InternshipID *string `json:"internship_id"`
}

func (h *NoteHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Topic and content are required",
		})
		return
	}

	note := &models.Note{
		UserID:       user.ID,
		InternshipID: req.InternshipID,
		Topic:        req.Topic,
		Content:      req.Content,
		DayNumber:    req.DayNumber,
	}
	if err := h.notes.Create(c.Request.Context(), note); err != nil {
		h.logger.Error("note creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to create note",
		})
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    gin.H{"note": note},
	})
}

func (h *NoteHandler) Update(c *gin.Context) {
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

	note, err := h.notes.Update(c.Request.Context(), c.Param("id"), user.ID, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Note not found",
			})
			return
		}
		h.logger.Error("note update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to update note",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"note": note},
	})
}

func (h *NoteHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.notes.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Note not found",
			})
			return
		}
		h.logger.Error("note deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to delete note",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Note deleted successfully",
	})
}
