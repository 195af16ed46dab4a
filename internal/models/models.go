package models

import "time"

// Reminder types understood by the notification pipeline.
const (
	ReminderTypeCustom       = "custom"
	ReminderTypeDaily        = "daily"
	ReminderTypeWeekly       = "weekly"
	ReminderTypeTaskDeadline = "task_deadline"
)

// Task priorities.
const (
	PriorityUrgent    = "acil"
	PriorityImportant = "onemli"
	PriorityMedium    = "orta"
	PriorityLow       = "dusuk"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"not null" json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Internship struct {
	ID              string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID          string     `gorm:"index;not null" json:"user_id"`
	CompanyName     string     `gorm:"not null" json:"company_name"`
	Department      string     `gorm:"not null" json:"department"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	SupervisorName  string     `json:"supervisor_name,omitempty"`
	SupervisorEmail string     `json:"supervisor_email,omitempty"`
	Description     string     `json:"description,omitempty"`
	IsActive        bool       `gorm:"index" json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type Task struct {
	ID           string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       string     `gorm:"index;not null" json:"user_id"`
	InternshipID *string    `gorm:"index" json:"internship_id,omitempty"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description,omitempty"`
	Priority     string     `gorm:"default:orta" json:"priority"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Completed    bool       `gorm:"index" json:"completed"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Note struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       string    `gorm:"index;not null" json:"user_id"`
	InternshipID *string   `gorm:"index" json:"internship_id,omitempty"`
	Topic        string    `gorm:"not null" json:"topic"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	DayNumber    *int      `json:"day_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type DailyProgress struct {
	ID                   string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID               string    `gorm:"index;not null" json:"user_id"`
	InternshipID         string    `gorm:"index;not null" json:"internship_id"`
	DayNumber            int       `gorm:"not null" json:"day_number"`
	CompletedTasks       int       `json:"completed_tasks"`
	EarnedCredits        int       `json:"earned_credits"`
	EarnedExp            int       `json:"earned_exp"`
	CompletionPercentage int       `json:"completion_percentage"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type VoiceNote struct {
	ID              string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID          string    `gorm:"index;not null" json:"user_id"`
	InternshipID    string    `gorm:"index;not null" json:"internship_id"`
	DayNumber       int       `gorm:"not null" json:"day_number"`
	Topic           string    `json:"topic,omitempty"`
	FilePath        string    `gorm:"not null" json:"file_path"`
	DurationSeconds int       `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

// Reminder is a user-scheduled notification with a target delivery time.
// A reminder is eligible for email dispatch while it is active, not
// completed, not yet sent, and its reminder date has passed.
type Reminder struct {
	ID                string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID            string     `gorm:"index;not null" json:"user_id"`
	InternshipID      *string    `gorm:"index" json:"internship_id,omitempty"`
	Title             string     `gorm:"not null" json:"title"`
	Description       string     `json:"description,omitempty"`
	ReminderType      string     `gorm:"default:custom" json:"reminder_type"`
	ReminderDate      time.Time  `gorm:"index;not null" json:"reminder_date"`
	IsRecurring       bool       `json:"is_recurring"`
	RecurrencePattern *string    `json:"recurrence_pattern,omitempty"`
	Priority          string     `gorm:"default:medium" json:"priority"`
	NotificationTime  string     `gorm:"default:09:00:00" json:"notification_time"`
	IsActive          bool       `gorm:"default:true" json:"is_active"`
	IsCompleted       bool       `json:"is_completed"`
	EmailSent         bool       `json:"email_sent"`
	EmailSentAt       *time.Time `json:"email_sent_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// NotificationSettings holds the per-user toggles gating email categories.
// At most one row exists per user; the row is created lazily with all
// toggles enabled the first time settings are read over the API.
type NotificationSettings struct {
	ID                 string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID             string    `gorm:"uniqueIndex;not null" json:"user_id"`
	EmailNotifications bool      `gorm:"default:true" json:"email_notifications"`
	PushNotifications  bool      `gorm:"default:true" json:"push_notifications"`
	DailyReminders     bool      `gorm:"default:true" json:"daily_reminders"`
	WeeklyReports      bool      `gorm:"default:true" json:"weekly_reports"`
	TaskDeadlines      bool      `gorm:"default:true" json:"task_deadlines"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CategoryEnabled reports whether the settings allow an email of the
// given reminder type. The master switch applies to every type; custom
// reminders have no category flag of their own.
func (s NotificationSettings) CategoryEnabled(reminderType string) bool {
	if !s.EmailNotifications {
		return false
	}
	switch reminderType {
	case ReminderTypeDaily:
		return s.DailyReminders
	case ReminderTypeWeekly:
		return s.WeeklyReports
	case ReminderTypeTaskDeadline:
		return s.TaskDeadlines
	default:
		return true
	}
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}
