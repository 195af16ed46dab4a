package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stajdefterim/backend/internal/config"
	"github.com/stajdefterim/backend/internal/models"
)

func openTestDB(t *testing.T) *Reminders {
	t.Helper()
	db, err := Open(config.DatabaseConfig{SQLitePath: ":memory:"})
	require.NoError(t, err)
	return NewReminders(db)
}

func seedReminder(t *testing.T, reminders *Reminders, mutate func(*models.Reminder)) *models.Reminder {
	t.Helper()
	reminder := &models.Reminder{
		UserID:       "user-1",
		Title:        "Staj defterini doldur",
		ReminderType: models.ReminderTypeCustom,
		ReminderDate: time.Now().Add(-time.Hour),
		IsActive:     true,
	}
	if mutate != nil {
		mutate(reminder)
	}
	require.NoError(t, reminders.Create(context.Background(), reminder))
	return reminder
}

func TestListEligible_ReturnsDueActiveUnsent(t *testing.T) {
	reminders := openTestDB(t)
	due := seedReminder(t, reminders, nil)

	eligible, err := reminders.ListEligible(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, due.ID, eligible[0].ID)
}

func TestListEligible_ExcludesFutureReminders(t *testing.T) {
	reminders := openTestDB(t)
	seedReminder(t, reminders, func(r *models.Reminder) {
		r.ReminderDate = time.Now().Add(time.Hour)
	})

	eligible, err := reminders.ListEligible(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestListEligible_ExcludesInactive(t *testing.T) {
	reminders := openTestDB(t)
	reminder := seedReminder(t, reminders, nil)
	ctx := context.Background()

	// The default tag would overwrite a false on insert, so deactivate
	// through an update instead.
	_, err := reminders.Update(ctx, reminder.ID, reminder.UserID, map[string]interface{}{"is_active": false})
	require.NoError(t, err)

	eligible, err := reminders.ListEligible(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestListEligible_ExcludesCompleted(t *testing.T) {
	reminders := openTestDB(t)
	seedReminder(t, reminders, func(r *models.Reminder) {
		r.IsCompleted = true
	})

	eligible, err := reminders.ListEligible(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestListEligible_ExcludesAlreadySent(t *testing.T) {
	reminders := openTestDB(t)
	seedReminder(t, reminders, func(r *models.Reminder) {
		r.EmailSent = true
	})

	eligible, err := reminders.ListEligible(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestMarkSent_RemovesFromEligibleSet(t *testing.T) {
	reminders := openTestDB(t)
	reminder := seedReminder(t, reminders, nil)
	ctx := context.Background()

	sentAt := time.Now()
	require.NoError(t, reminders.MarkSent(ctx, reminder.ID, sentAt))

	eligible, err := reminders.ListEligible(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, eligible)

	updated, err := reminders.GetOwned(ctx, reminder.ID, reminder.UserID)
	require.NoError(t, err)
	assert.True(t, updated.EmailSent)
	require.NotNil(t, updated.EmailSentAt)
	assert.WithinDuration(t, sentAt, *updated.EmailSentAt, time.Second)
}

func TestListUpcoming_SevenDayWindow(t *testing.T) {
	reminders := openTestDB(t)
	ctx := context.Background()

	within := seedReminder(t, reminders, func(r *models.Reminder) {
		r.Title = "yakın"
		r.ReminderDate = time.Now().Add(48 * time.Hour)
	})
	seedReminder(t, reminders, func(r *models.Reminder) {
		r.Title = "uzak"
		r.ReminderDate = time.Now().Add(10 * 24 * time.Hour)
	})
	seedReminder(t, reminders, func(r *models.Reminder) {
		r.Title = "geçmiş"
		r.ReminderDate = time.Now().Add(-time.Hour)
	})

	upcoming, err := reminders.ListUpcoming(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, within.ID, upcoming[0].ID)
}

func TestComplete_SetsFlag(t *testing.T) {
	reminders := openTestDB(t)
	reminder := seedReminder(t, reminders, nil)
	ctx := context.Background()

	updated, err := reminders.Complete(ctx, reminder.ID, reminder.UserID)
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
}

func TestUpdate_ScopedToOwner(t *testing.T) {
	reminders := openTestDB(t)
	reminder := seedReminder(t, reminders, nil)

	_, err := reminders.Update(context.Background(), reminder.ID, "someone-else", map[string]interface{}{"title": "ele geçirildi"})
	assert.ErrorIs(t, err, ErrNotFound)
}
