package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stajdefterim/backend/internal/mail"
	"github.com/stajdefterim/backend/internal/queue"
	"github.com/stajdefterim/backend/internal/scheduler"
)

type HealthHandler struct {
	db        *gorm.DB
	redis     *redis.Client       // optional
	queue     *queue.RabbitClient // optional
	mailer    *mail.Mailer
	scheduler *scheduler.Scheduler
}

func NewHealthHandler(
	db *gorm.DB,
	redisClient *redis.Client,
	queueClient *queue.RabbitClient,
	mailer *mail.Mailer,
	s *scheduler.Scheduler,
) *HealthHandler {
	return &HealthHandler{
		db:        db,
		redis:     redisClient,
		queue:     queueClient,
		mailer:    mailer,
		scheduler: s,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)

	// Check database
	if sqlDB, err := h.db.DB(); err == nil && sqlDB.PingContext(ctx) == nil {
		checks["database"] = "healthy"
	} else {
		checks["database"] = "unhealthy"
	}

	// Check Redis (optional dependency)
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err == nil {
			checks["redis"] = "healthy"
		} else {
			checks["redis"] = "degraded"
		}
	}

	// Check RabbitMQ (optional dependency)
	if h.queue != nil {
		if h.queue.IsConnected() {
			checks["rabbitmq"] = "healthy"
		} else {
			checks["rabbitmq"] = "degraded"
		}
	}

	// Check SMTP (circuit breaker aware)
	if result := h.mailer.VerifyConnection(ctx); result.Success {
		checks["mail"] = "healthy"
	} else {
		checks["mail"] = "degraded"
	}

	// Check scheduler
	if h.scheduler.Status().IsRunning {
		checks["scheduler"] = "healthy"
	} else {
		checks["scheduler"] = "stopped"
	}

	overallStatus := "healthy"
	for _, status := range checks {
		if status == "unhealthy" {
			overallStatus = "unhealthy"
			break
		} else if status == "degraded" {
			overallStatus = "degraded"
		}
	}

	statusCode := http.StatusOK
	if overallStatus == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"status":    overallStatus,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
		"version":   "1.0.0",
	})
}
