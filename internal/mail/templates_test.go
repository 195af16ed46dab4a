package mail

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderEmail_Render(t *testing.T) {
	email := ReminderEmail{
		Title:        "Staj defterini doldur",
		Description:  "Bugünün kayıtlarını gir",
		ReminderDate: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Internship: &InternshipSummary{
			CompanyName: "Acme",
			Department:  "Backend",
		},
	}

	msg, err := email.Render()
	require.NoError(t, err)

	assert.Equal(t, "🔔 Hatırlatıcı: Staj defterini doldur", msg.Subject)
	assert.Contains(t, msg.HTML, "Staj defterini doldur")
	assert.Contains(t, msg.HTML, "Bugünün kayıtlarını gir")
	assert.Contains(t, msg.HTML, "Acme")
	assert.Contains(t, msg.HTML, "Backend")
}

func TestReminderEmail_RenderWithoutInternship(t *testing.T) {
	email := ReminderEmail{
		Title:        "Rapor teslimi",
		ReminderDate: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	msg, err := email.Render()
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "Staj:")
}

func TestTaskDeadlineEmail_PriorityMarker(t *testing.T) {
	cases := []struct {
		priority string
		marker   string
	}{
		{"acil", "🚨"},
		{"onemli", "⚡"},
		{"orta", "📋"},
		{"dusuk", "📝"},
		{"bilinmeyen", "📋"},
		{"", "📋"},
	}
	for _, tc := range cases {
		t.Run(tc.priority, func(t *testing.T) {
			email := TaskDeadlineEmail{Priority: tc.priority}
			assert.Equal(t, tc.marker, email.PriorityMarker())
		})
	}
}

func TestTaskDeadlineEmail_Render(t *testing.T) {
	email := TaskDeadlineEmail{
		Title:    "API dokümantasyonu",
		EndDate:  time.Date(2026, 3, 15, 17, 0, 0, 0, time.UTC),
		Priority: "acil",
		Note:     "Görev teslim tarihi yaklaşıyor!",
	}

	msg, err := email.Render()
	require.NoError(t, err)

	assert.Equal(t, "⚡ Görev Teslim Hatırlatıcısı: API dokümantasyonu", msg.Subject)
	assert.Contains(t, msg.HTML, "ACIL", "priority is rendered uppercase")
	assert.Contains(t, msg.HTML, "🚨")
	assert.Contains(t, msg.HTML, "Görev teslim tarihi yaklaşıyor!")
}

func TestDailySummaryEmail_VisibleNotesCapsAtThree(t *testing.T) {
	email := DailySummaryEmail{
		TodayNotes: []NoteSummary{
			{Topic: "bir", Content: "a"},
			{Topic: "iki", Content: "b"},
			{Topic: "üç", Content: "c"},
			{Topic: "dört", Content: "d"},
			{Topic: "beş", Content: "e"},
		},
	}

	visible := email.VisibleNotes()
	require.Len(t, visible, 3)
	assert.Equal(t, "bir", visible[0].Topic)
	assert.Equal(t, "üç", visible[2].Topic)
}

func TestDailySummaryEmail_VisibleNotesTruncatesContent(t *testing.T) {
	long := strings.Repeat("ç", 200)
	email := DailySummaryEmail{
		TodayNotes: []NoteSummary{{Topic: "uzun", Content: long}},
	}

	visible := email.VisibleNotes()
	require.Len(t, visible, 1)
	assert.Equal(t, strings.Repeat("ç", 150)+"...", visible[0].Content)
}

func TestTruncateContent(t *testing.T) {
	assert.Equal(t, "kısa not", truncateContent("kısa not"))

	exact := strings.Repeat("a", 150)
	assert.Equal(t, exact, truncateContent(exact))

	over := strings.Repeat("a", 151)
	assert.Equal(t, strings.Repeat("a", 150)+"...", truncateContent(over))
}

func TestDailySummaryEmail_Render(t *testing.T) {
	email := DailySummaryEmail{
		Internship:     InternshipSummary{CompanyName: "Acme", Department: "Backend"},
		Date:           time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		DayNumber:      12,
		CompletedTasks: 3,
		TotalNotes:     2,
		EarnedExp:      45,
		TodayNotes: []NoteSummary{
			{Topic: "Redis", Content: "Cache katmanını inceledim"},
		},
	}

	msg, err := email.Render()
	require.NoError(t, err)

	assert.Equal(t, "📊 Günlük Staj Özeti - 10.03.2026", msg.Subject)
	assert.Contains(t, msg.HTML, "Acme")
	assert.Contains(t, msg.HTML, "Redis")
	assert.Contains(t, msg.HTML, "45")
}

func TestTestEmail_Render(t *testing.T) {
	email := TestEmail{
		Name:   "Ali",
		Email:  "ali@example.com",
		SentAt: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
	}

	msg, err := email.Render()
	require.NoError(t, err)

	assert.Equal(t, "🧪 StajDefterim Test E-postası", msg.Subject)
	assert.Contains(t, msg.HTML, "Ali")
	assert.Contains(t, msg.HTML, "ali@example.com")
}
