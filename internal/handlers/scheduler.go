package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stajdefterim/backend/internal/models"
	"github.com/stajdefterim/backend/internal/scheduler"
)

// SchedulerHandler exposes the poller's admin surface.
type SchedulerHandler struct {
	scheduler *scheduler.Scheduler
	logger    *zap.Logger
}

func NewSchedulerHandler(s *scheduler.Scheduler, logger *zap.Logger) *SchedulerHandler {
	return &SchedulerHandler{scheduler: s, logger: logger}
}

func (h *SchedulerHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"scheduler": h.scheduler.Status()},
	})
}

func (h *SchedulerHandler) Start(c *gin.Context) {
	h.scheduler.Start()
	h.logger.Info("scheduler started via admin endpoint")
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"scheduler": h.scheduler.Status()},
		Message: "Scheduler started",
	})
}

func (h *SchedulerHandler) Stop(c *gin.Context) {
	h.scheduler.Stop()
	h.logger.Info("scheduler stopped via admin endpoint")
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    gin.H{"scheduler": h.scheduler.Status()},
		Message: "Scheduler stopped",
	})
}
