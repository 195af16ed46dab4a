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

type VoiceNoteHandler struct {
	voiceNotes *store.VoiceNotes
	logger     *zap.Logger
}

func NewVoiceNoteHandler(voiceNotes *store.VoiceNotes, logger *zap.Logger) *VoiceNoteHandler {
	return &VoiceNoteHandler{voiceNotes: voiceNotes, logger: logger}
}

// List returns the voice notes for an internship, optionally narrowed
// to one day.
func (h *VoiceNoteHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	dayNumber := 0
	if day := c.Param("day_number"); day != "" {
		n, err := strconv.Atoi(day)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{
				Success: false,
				Error:   "Invalid day number",
			})
			return
		}
		dayNumber = n
	}

	notes, err := h.voiceNotes.ListByDay(c.Request.Context(), user.ID, c.Param("internship_id"), dayNumber)
	if err != nil {
		h.logger.Error("voice notes fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch voice notes",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"voice_notes": notes},
	})
}

type createVoiceNoteRequest struct {
	InternshipID    string `json:"internship_id" binding:"required"`
	DayNumber       int    `json:"day_number" binding:"required"`
	Topic           string `json:"topic"`
	FilePath        string `json:"file_path" binding:"required"`
	DurationSeconds int    `json:"duration_seconds"`
}

func (h *VoiceNoteHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createVoiceNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Internship ID, day number, and file path are required",
		})
		return
	}

	note := &models.VoiceNote{
		UserID:          user.ID,
		InternshipID:    req.InternshipID,
		DayNumber:       req.DayNumber,
		Topic:           req.Topic,
		FilePath:        req.FilePath,
		DurationSeconds: req.DurationSeconds,
	}
	if err := h.voiceNotes.Create(c.Request.Context(), note); err != nil {
		h.logger.Error("voice note creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to create voice note",
		})
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    gin.H{"voice_note": note},
	})
}

type updateVoiceNoteRequest struct {
	Topic           *string `json:"topic"`
	DurationSeconds *int    `json:"duration_seconds"`
}

func (h *VoiceNoteHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req updateVoiceNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	updates := map[string]interface{}{}
	if req.Topic != nil {
		updates["topic"] = *req.Topic
	}
	if req.DurationSeconds != nil {
		updates["duration_seconds"] = *req.DurationSeconds
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Nothing to update",
		})
		return
	}

	note, err := h.voiceNotes.Update(c.Request.Context(), c.Param("id"), user.ID, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Voice note not found",
			})
			return
		}
		h.logger.Error("voice note update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to update voice note",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"voice_note": note},
	})
}

func (h *VoiceNoteHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.voiceNotes.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Voice note not found",
			})
			return
		}
		h.logger.Error("voice note deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to delete voice note",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Voice note deleted successfully",
	})
}
