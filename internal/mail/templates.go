package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Message is a rendered email ready for transport.
type Message struct {
	Subject string
	HTML    string
}

// Email is the closed set of messages the dispatcher can send. Each kind
// carries its own render function, so there is no unknown-template
// failure path at runtime.
type Email interface {
	Template() string
	Render() (Message, error)
}

type InternshipSummary struct {
	CompanyName string
	Department  string
}

type NoteSummary struct {
	Topic   string
	Content string
}

const noteContentLimit = 150

// truncateContent caps note content for the daily summary, appending an
// ellipsis marker when the original exceeds the limit.
func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= noteContentLimit {
		return content
	}
	return string(runes[:noteContentLimit]) + "..."
}

var priorityMarkers = map[string]string{
	"acil":   "🚨",
	"onemli": "⚡",
	"orta":   "📋",
	"dusuk":  "📝",
}

const defaultPriorityMarker = "📋"

var templates = template.Must(template.New("emails").Funcs(template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("02.01.2006")
	},
	"formatDateTime": func(t time.Time) string {
		return t.Format("02.01.2006 15:04")
	},
	"upper": strings.ToUpper,
}).Parse(templateSource))

func render(name string, subject string, data interface{}) (Message, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return Message{}, fmt.Errorf("render %s template: %w", name, err)
	}
	return Message{Subject: subject, HTML: buf.String()}, nil
}

// ReminderEmail notifies the user that a scheduled reminder is due.
type ReminderEmail struct {
	Title        string
	Description  string
	ReminderDate time.Time
	Internship   *InternshipSummary
}

func (e ReminderEmail) Template() string { return "reminder" }

func (e ReminderEmail) Render() (Message, error) {
	return render("reminder", fmt.Sprintf("🔔 Hatırlatıcı: %s", e.Title), e)
}

// TaskDeadlineEmail warns the user about an approaching task deadline.
type TaskDeadlineEmail struct {
	Title       string
	Description string
	EndDate     time.Time
	Priority    string
	Note        string
	Internship  *InternshipSummary
}

func (e TaskDeadlineEmail) Template() string { return "taskDeadline" }

// PriorityMarker maps the task priority to its visual marker, falling
// back to the medium marker for unrecognized values.
func (e TaskDeadlineEmail) PriorityMarker() string {
	if marker, ok := priorityMarkers[e.Priority]; ok {
		return marker
	}
	return defaultPriorityMarker
}

func (e TaskDeadlineEmail) Render() (Message, error) {
	return render("taskDeadline", fmt.Sprintf("⚡ Görev Teslim Hatırlatıcısı: %s", e.Title), e)
}

// DailySummaryEmail recaps one internship day.
type DailySummaryEmail struct {
	Internship     InternshipSummary
	Date           time.Time
	DayNumber      int
	CompletedTasks int
	TotalNotes     int
	EarnedExp      int
	TodayNotes     []NoteSummary
}

func (e DailySummaryEmail) Template() string { return "dailySummary" }

// VisibleNotes limits the rendered list to the first three notes, each
// with truncated content.
func (e DailySummaryEmail) VisibleNotes() []NoteSummary {
	notes := e.TodayNotes
	if len(notes) > 3 {
		notes = notes[:3]
	}
	visible := make([]NoteSummary, 0, len(notes))
	for _, note := range notes {
		visible = append(visible, NoteSummary{
			Topic:   note.Topic,
			Content: truncateContent(note.Content),
		})
	}
	return visible
}

func (e DailySummaryEmail) Render() (Message, error) {
	return render("dailySummary", fmt.Sprintf("📊 Günlük Staj Özeti - %s", e.Date.Format("02.01.2006")), e)
}

// TestEmail verifies the outbound mail round trip.
type TestEmail struct {
	Name   string
	Email  string
	SentAt time.Time
}

func (e TestEmail) Template() string { return "test" }

func (e TestEmail) Render() (Message, error) {
	return render("test", "🧪 StajDefterim Test E-postası", e)
}
