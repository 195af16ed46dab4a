package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stajdefterim/backend/internal/auth"
	"github.com/stajdefterim/backend/internal/config"
	"github.com/stajdefterim/backend/internal/handlers"
	"github.com/stajdefterim/backend/internal/mail"
	"github.com/stajdefterim/backend/internal/middleware"
	"github.com/stajdefterim/backend/internal/queue"
	"github.com/stajdefterim/backend/internal/scheduler"
	"github.com/stajdefterim/backend/internal/store"
	"github.com/stajdefterim/backend/pkg/redisclient"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to init logger", err)
	}
	defer logger.Sync()

	db, err := store.Open(cfg.Database)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	users := store.NewUsers(db)
	internships := store.NewInternships(db)
	tasks := store.NewTasks(db)
	notes := store.NewNotes(db)
	progress := store.NewProgress(db)
	voiceNotes := store.NewVoiceNotes(db)
	reminders := store.NewReminders(db)
	settings := store.NewSettings(db)

	// Redis and RabbitMQ are optional: the cache degrades to direct
	// reads and push events are simply skipped without a broker.
	redisClient, err := redisclient.Connect(cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, settings cache disabled", zap.Error(err))
		redisClient = nil
	}
	cachedSettings := store.NewCachedSettings(settings, redisClient, cfg.Redis.SettingsTTL, logger)

	var rabbitClient *queue.RabbitClient
	if cfg.RabbitMQ.URL != "" {
		rabbitClient, err = queue.NewRabbitClient(cfg.RabbitMQ)
		if err != nil {
			logger.Warn("rabbitmq unavailable, push events disabled", zap.Error(err))
			rabbitClient = nil
		} else {
			defer rabbitClient.CloseConnection()
		}
	}

	transport, err := mail.NewSMTPTransport(cfg.SMTP)
	if err != nil {
		logger.Fatal("smtp transport init failed", zap.Error(err))
	}
	mailer := mail.NewMailer(transport, logger)

	var push scheduler.PushPublisher
	if rabbitClient != nil {
		push = rabbitClient
	}
	emailScheduler := scheduler.New(cfg.Scheduler, reminders, users, cachedSettings, internships, mailer, push, logger)
	emailScheduler.Start()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authHandler := handlers.NewAuthHandler(users, tokens, logger)
	internshipHandler := handlers.NewInternshipHandler(internships, logger)
	taskHandler := handlers.NewTaskHandler(tasks, logger)
	noteHandler := handlers.NewNoteHandler(notes, logger)
	progressHandler := handlers.NewProgressHandler(progress, logger)
	voiceNoteHandler := handlers.NewVoiceNoteHandler(voiceNotes, logger)
	reminderHandler := handlers.NewReminderHandler(reminders, cachedSettings, logger)
	emailHandler := handlers.NewEmailHandler(mailer, reminders, tasks, notes, progress, internships, logger)
	schedulerHandler := handlers.NewSchedulerHandler(emailScheduler, logger)
	healthHandler := handlers.NewHealthHandler(db, redisClient, rabbitClient, mailer, emailScheduler)

	r := gin.Default()
	r.Use(middleware.CorrelationID())

	r.GET("/health", healthHandler.HealthCheck)

	api := r.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authorized := api.Group("")
	authorized.Use(middleware.Auth(tokens, users))
	{
		authorized.GET("/auth/profile", authHandler.Profile)
		authorized.PUT("/auth/profile", authHandler.UpdateProfile)
		authorized.GET("/auth/verify", authHandler.Verify)

		authorized.GET("/internships", internshipHandler.List)
		authorized.GET("/internships/active", internshipHandler.Active)
		authorized.PUT("/internships/set-active/:id", internshipHandler.SetActive)
		authorized.POST("/internships", internshipHandler.Create)
		authorized.PUT("/internships/:id", internshipHandler.Update)
		authorized.DELETE("/internships/:id", internshipHandler.Delete)

		authorized.GET("/tasks", taskHandler.List)
		authorized.GET("/tasks/stats", taskHandler.Stats)
		authorized.POST("/tasks", taskHandler.Create)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)

		authorized.GET("/notes", noteHandler.List)
		authorized.POST("/notes", noteHandler.Create)
		authorized.PUT("/notes/:id", noteHandler.Update)
		authorized.DELETE("/notes/:id", noteHandler.Delete)

		authorized.GET("/daily-progress/:internship_id", progressHandler.List)
		authorized.POST("/daily-progress", progressHandler.CompleteDay)
		authorized.DELETE("/daily-progress/:internship_id/:day_number", progressHandler.Delete)

		authorized.GET("/voice-notes/:internship_id", voiceNoteHandler.List)
		authorized.GET("/voice-notes/:internship_id/:day_number", voiceNoteHandler.List)
		authorized.POST("/voice-notes", voiceNoteHandler.Create)
		authorized.PUT("/voice-notes/:id", voiceNoteHandler.Update)
		authorized.DELETE("/voice-notes/:id", voiceNoteHandler.Delete)

		authorized.GET("/reminders", reminderHandler.List)
		authorized.GET("/reminders/upcoming", reminderHandler.Upcoming)
		authorized.POST("/reminders", reminderHandler.Create)
		authorized.PUT("/reminders/:id", reminderHandler.Update)
		authorized.PATCH("/reminders/:id/complete", reminderHandler.Complete)
		authorized.DELETE("/reminders/:id", reminderHandler.Delete)

		authorized.GET("/reminders/settings", reminderHandler.GetSettings)
		authorized.PUT("/reminders/settings", reminderHandler.UpdateSettings)

		authorized.POST("/reminders/email/test", emailHandler.SendTest)
		authorized.POST("/reminders/email/reminder/:id", emailHandler.SendReminder)
		authorized.POST("/reminders/email/task-deadline", emailHandler.SendTaskDeadline)
		authorized.POST("/reminders/email/daily-summary", emailHandler.SendDailySummary)
		authorized.GET("/reminders/email/status", emailHandler.Status)

		authorized.GET("/scheduler/status", schedulerHandler.Status)
		authorized.POST("/scheduler/start", schedulerHandler.Start)
		authorized.POST("/scheduler/stop", schedulerHandler.Stop)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	waitForShutdown(server, emailScheduler, logger)
}

func waitForShutdown(server *http.Server, emailScheduler *scheduler.Scheduler, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	emailScheduler.Stop()
}
