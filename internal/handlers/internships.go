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

type InternshipHandler struct {
	internships *store.Internships
	logger      *zap.Logger
}

func NewInternshipHandler(internships *store.Internships, logger *zap.Logger) *InternshipHandler {
	return &InternshipHandler{internships: internships, logger: logger}
}

func (h *InternshipHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	internships, err := h.internships.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("internships fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch internships",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"internships": internships},
	})
}

func (h *InternshipHandler) Active(c *gin.Context) {
	user := middleware.CurrentUser(c)

	internship, err := h.internships.GetActive(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, models.APIResponse{
				Success: true,
				Data:    gin.H{"internship": nil},
			})
			return
		}
		h.logger.Error("active internship fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch active internship",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"internship": internship},
	})
}

type createInternshipRequest struct {
	CompanyName     string     `json:"company_name" binding:"required"`
	Department      string     `json:"department" binding:"required"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	SupervisorName  string     `json:"supervisor_name"`
	SupervisorEmail string     `json:"supervisor_email"`
	Description     string     `json:"description"`
}

func (h *InternshipHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Company name and department are required",
		})
		return
	}

	internship := &models.Internship{
		UserID:          user.ID,
		CompanyName:     req.CompanyName,
		Department:      req.Department,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		SupervisorName:  req.SupervisorName,
		SupervisorEmail: req.SupervisorEmail,
		Description:     req.Description,
	}
	if err := h.internships.Create(c.Request.Context(), internship); err != nil {
		h.logger.Error("internship creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to create internship",
		})
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    gin.H{"internship": internship},
	})
}

// SetActive switches which internship the user is currently on.
func (h *InternshipHandler) SetActive(c *gin.Context) {
	user := middleware.CurrentUser(c)

	internship, err := h.internships.SetActive(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Internship not found",
			})
			return
		}
		h.logger.Error("internship activation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to set active internship",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"internship": internship},
	})
}

func (h *InternshipHandler) Update(c *gin.Context) {
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

	internship, err := h.internships.Update(c.Request.Context(), c.Param("id"), user.ID, updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Internship not found",
			})
			return
		}
		h.logger.Error("internship update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to update internship",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"internship": internship},
	})
}

func (h *InternshipHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.internships.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.APIResponse{
				Success: false,
				Error:   "Internship not found",
			})
			return
		}
		h.logger.Error("internship deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to delete internship",
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Internship deleted successfully",
	})
}
