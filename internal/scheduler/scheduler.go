// Package scheduler runs the periodic reminder poll that turns due
// reminders into emails.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/stajdefterim/backend/internal/config"
	"github.com/stajdefterim/backend/internal/mail"
	"github.com/stajdefterim/backend/internal/models"
	"github.com/stajdefterim/backend/internal/queue"
	"github.com/stajdefterim/backend/internal/store"
)

type ReminderStore interface {
	ListEligible(ctx context.Context, now time.Time) ([]models.Reminder, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
}

type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type SettingsStore interface {
	GetByUserID(ctx context.Context, userID string) (*models.NotificationSettings, error)
}

type InternshipStore interface {
	GetByID(ctx context.Context, id string) (*models.Internship, error)
}

type Sender interface {
	Send(ctx context.Context, to string, email mail.Email) mail.Result
}

type PushPublisher interface {
	PublishPush(ctx context.Context, event queue.PushEvent) error
}

// Status reports whether the poller runs and when it fires next.
type Status struct {
	IsRunning bool       `json:"is_running"`
	NextRun   *time.Time `json:"next_run,omitempty"`
}

// Scheduler polls for eligible reminders on a fixed interval and
// dispatches each at most once. Reminders within a tick are processed
// sequentially; one reminder's failure never aborts the rest.
type Scheduler struct {
	reminders   ReminderStore
	users       UserStore
	settings    SettingsStore
	internships InternshipStore
	mailer      Sender
	push        PushPublisher // optional, nil disables push events

	spec   string
	cron   *cron.Cron
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	running bool
	entryID cron.EntryID
}

func New(
	cfg config.SchedulerConfig,
	reminders ReminderStore,
	users UserStore,
	settings SettingsStore,
	internships InternshipStore,
	mailer Sender,
	push PushPublisher,
	logger *zap.Logger,
) *Scheduler {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid scheduler timezone, using system local",
			zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.Local
	}
	return &Scheduler{
		reminders:   reminders,
		users:       users,
		settings:    settings,
		internships: internships,
		mailer:      mailer,
		push:        push,
		spec:        cfg.Spec,
		// SkipIfStillRunning keeps a slow tick from overlapping the next
		// one; a second concurrent tick could double-send a reminder.
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
		now:    time.Now,
	}
}

// Start begins the periodic poll. Calling Start while already running is
// a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.logger.Info("scheduled email service already running")
		return
	}

	entryID, err := s.cron.AddFunc(s.spec, func() {
		s.tick(context.Background())
	})
	if err != nil {
		s.logger.Error("scheduled email service failed to start",
			zap.String("spec", s.spec), zap.Error(err))
		return
	}
	s.entryID = entryID
	s.cron.Start()
	s.running = true
	s.logger.Info("scheduled email service started", zap.String("spec", s.spec))
}

// Stop halts future ticks. A tick already in flight runs to completion.
// Safe to call when not running.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.cron.Stop()
	s.cron.Remove(s.entryID)
	s.running = false
	s.logger.Info("scheduled email service stopped")
}

func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return Status{}
	}
	next := s.cron.Entry(s.entryID).Next
	return Status{IsRunning: true, NextRun: &next}
}

// tick queries the eligible set and dispatches each reminder in turn.
// A store read failure aborts the whole tick; the next interval retries.
func (s *Scheduler) tick(ctx context.Context) {
	now := s.now()
	reminders, err := s.reminders.ListEligible(ctx, now)
	if err != nil {
		s.logger.Error("eligible reminder query failed", zap.Error(err))
		return
	}
	if len(reminders) == 0 {
		return
	}

	s.logger.Info("dispatching due reminders", zap.Int("count", len(reminders)))
	for _, reminder := range reminders {
		s.dispatchOne(ctx, reminder)
	}
}

// dispatchOne sends the email for a single eligible reminder and marks it
// sent on success. Any skip or failure leaves the reminder untouched so
// the next tick picks it up again.
func (s *Scheduler) dispatchOne(ctx context.Context, reminder models.Reminder) {
	user, err := s.users.GetByID(ctx, reminder.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("no user for reminder",
				zap.String("reminder_id", reminder.ID),
				zap.String("user_id", reminder.UserID))
		} else {
			s.logger.Error("user lookup failed",
				zap.String("reminder_id", reminder.ID), zap.Error(err))
		}
		return
	}
	if user.Email == "" {
		s.logger.Warn("user has no email address", zap.String("reminder_id", reminder.ID))
		return
	}

	settings, err := s.settings.GetByUserID(ctx, reminder.UserID)
	if err != nil {
		// A user without a settings row gets no scheduled email; the row
		// is created lazily by the API read path, not here.
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("no notification settings for user",
				zap.String("user_id", reminder.UserID))
		} else {
			s.logger.Error("settings lookup failed",
				zap.String("user_id", reminder.UserID), zap.Error(err))
		}
		return
	}

	if !settings.CategoryEnabled(reminder.ReminderType) {
		s.logger.Info("email suppressed by notification settings",
			zap.String("reminder_id", reminder.ID),
			zap.String("reminder_type", reminder.ReminderType),
			zap.String("user_id", reminder.UserID))
		return
	}

	var internship *mail.InternshipSummary
	if reminder.InternshipID != nil {
		in, err := s.internships.GetByID(ctx, *reminder.InternshipID)
		switch {
		case err == nil:
			internship = &mail.InternshipSummary{
				CompanyName: in.CompanyName,
				Department:  in.Department,
			}
		case errors.Is(err, store.ErrNotFound):
			// Tolerated; the email simply omits the internship line.
		default:
			s.logger.Warn("internship lookup failed",
				zap.String("reminder_id", reminder.ID), zap.Error(err))
		}
	}

	result := s.mailer.Send(ctx, user.Email, mail.ReminderEmail{
		Title:        reminder.Title,
		Description:  reminder.Description,
		ReminderDate: reminder.ReminderDate,
		Internship:   internship,
	})
	if !result.Success {
		s.logger.Error("scheduled email failed",
			zap.String("reminder_id", reminder.ID),
			zap.String("error", result.Error))
		return
	}

	sentAt := s.now()
	if err := s.reminders.MarkSent(ctx, reminder.ID, sentAt); err != nil {
		s.logger.Error("failed to mark reminder sent",
			zap.String("reminder_id", reminder.ID), zap.Error(err))
		return
	}
	s.logger.Info("scheduled email sent",
		zap.String("reminder_id", reminder.ID),
		zap.String("to", user.Email))

	if s.push != nil && settings.PushNotifications {
		event := queue.PushEvent{
			UserID:     reminder.UserID,
			ReminderID: reminder.ID,
			Title:      reminder.Title,
			Body:       reminder.Description,
			SentAt:     sentAt,
		}
		if err := s.push.PublishPush(ctx, event); err != nil {
			s.logger.Warn("push event publish failed",
				zap.String("reminder_id", reminder.ID), zap.Error(err))
		}
	}
}
