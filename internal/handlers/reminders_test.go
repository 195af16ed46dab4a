package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stajdefterim/backend/internal/config"
	"github.com/stajdefterim/backend/internal/models"
	"github.com/stajdefterim/backend/internal/store"
)

type reminderTestEnv struct {
	router    *gin.Engine
	user      *models.User
	reminders *store.Reminders
	redis     *miniredis.Miniredis
}

func setupReminderEnv(t *testing.T) *reminderTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := store.Open(config.DatabaseConfig{SQLitePath: ":memory:"})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	logger := zap.NewNop()
	users := store.NewUsers(db)
	reminders := store.NewReminders(db)
	settings := store.NewCachedSettings(store.NewSettings(db), redisClient, 5*time.Minute, logger)

	user := &models.User{ID: "user-1", Email: "ali@example.com", Name: "Ali", PasswordHash: "x"}
	require.NoError(t, users.Create(context.Background(), user))

	handler := NewReminderHandler(reminders, settings, logger)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("current_user", user)
		c.Next()
	})
	router.GET("/api/reminders", handler.List)
	router.GET("/api/reminders/upcoming", handler.Upcoming)
	router.POST("/api/reminders", handler.Create)
	router.PUT("/api/reminders/:id", handler.Update)
	router.PATCH("/api/reminders/:id/complete", handler.Complete)
	router.DELETE("/api/reminders/:id", handler.Delete)
	router.GET("/api/reminders/settings", handler.GetSettings)
	router.PUT("/api/reminders/settings", handler.UpdateSettings)

	return &reminderTestEnv{router: router, user: user, reminders: reminders, redis: mr}
}

func (env *reminderTestEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestReminderCreate(t *testing.T) {
	env := setupReminderEnv(t)

	w := env.do(t, http.MethodPost, "/api/reminders", gin.H{
		"title":         "Staj defterini doldur",
		"reminder_date": time.Now().Add(time.Hour).Format(time.RFC3339),
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	reminder := data["reminder"].(map[string]interface{})
	assert.Equal(t, "Staj defterini doldur", reminder["title"])
	assert.Equal(t, models.ReminderTypeCustom, reminder["reminder_type"])
	assert.Equal(t, false, reminder["email_sent"])
	assert.Equal(t, true, reminder["is_active"])
}

func TestReminderCreate_MissingTitleRejected(t *testing.T) {
	env := setupReminderEnv(t)

	w := env.do(t, http.MethodPost, "/api/reminders", gin.H{
		"reminder_date": time.Now().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReminderCreate_InvalidTypeRejected(t *testing.T) {
	env := setupReminderEnv(t)

	w := env.do(t, http.MethodPost, "/api/reminders", gin.H{
		"title":         "x",
		"reminder_type": "hourly",
		"reminder_date": time.Now().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReminderList(t *testing.T) {
	env := setupReminderEnv(t)
	ctx := context.Background()

	for _, title := range []string{"bir", "iki"} {
		require.NoError(t, env.reminders.Create(ctx, &models.Reminder{
			UserID:       env.user.ID,
			Title:        title,
			ReminderType: models.ReminderTypeCustom,
			ReminderDate: time.Now().Add(time.Hour),
			IsActive:     true,
		}))
	}
	// Another user's reminder stays invisible.
	require.NoError(t, env.reminders.Create(ctx, &models.Reminder{
		UserID:       "user-2",
		Title:        "gizli",
		ReminderType: models.ReminderTypeCustom,
		ReminderDate: time.Now().Add(time.Hour),
		IsActive:     true,
	}))

	w := env.do(t, http.MethodGet, "/api/reminders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	assert.Len(t, data["reminders"], 2)
}

func TestReminderComplete(t *testing.T) {
	env := setupReminderEnv(t)
	ctx := context.Background()

	reminder := &models.Reminder{
		UserID:       env.user.ID,
		Title:        "rapor",
		ReminderType: models.ReminderTypeCustom,
		ReminderDate: time.Now(),
		IsActive:     true,
	}
	require.NoError(t, env.reminders.Create(ctx, reminder))

	w := env.do(t, http.MethodPatch, "/api/reminders/"+reminder.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	updated, err := env.reminders.GetOwned(ctx, reminder.ID, env.user.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
}

func TestReminderUpdate_CannotTouchDispatchState(t *testing.T) {
	env := setupReminderEnv(t)
	ctx := context.Background()

	reminder := &models.Reminder{
		UserID:       env.user.ID,
		Title:        "rapor",
		ReminderType: models.ReminderTypeCustom,
		ReminderDate: time.Now(),
		IsActive:     true,
	}
	require.NoError(t, env.reminders.Create(ctx, reminder))

	w := env.do(t, http.MethodPut, "/api/reminders/"+reminder.ID, gin.H{
		"title":      "güncel rapor",
		"email_sent": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated, err := env.reminders.GetOwned(ctx, reminder.ID, env.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "güncel rapor", updated.Title)
	assert.False(t, updated.EmailSent)
}

func TestReminderDelete_NotFound(t *testing.T) {
	env := setupReminderEnv(t)

	w := env.do(t, http.MethodDelete, "/api/reminders/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationSettings_FirstReadCreatesDefaults(t *testing.T) {
	env := setupReminderEnv(t)

	w := env.do(t, http.MethodGet, "/api/reminders/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	settings := data["settings"].(map[string]interface{})
	assert.Equal(t, true, settings["email_notifications"])
	assert.Equal(t, true, settings["daily_reminders"])
	assert.Equal(t, true, settings["weekly_reports"])
	assert.Equal(t, true, settings["task_deadlines"])
}

func TestNotificationSettings_UpdateRefreshesCache(t *testing.T) {
	env := setupReminderEnv(t)

	// Prime the cache through the read path.
	w := env.do(t, http.MethodGet, "/api/reminders/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.redis.Exists("settings:"+env.user.ID))

	w = env.do(t, http.MethodPut, "/api/reminders/settings", gin.H{
		"email_notifications": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	settings := data["settings"].(map[string]interface{})
	assert.Equal(t, false, settings["email_notifications"])
	assert.Equal(t, true, settings["daily_reminders"])

	cached, err := env.redis.Get("settings:" + env.user.ID)
	require.NoError(t, err)
	var fromCache models.NotificationSettings
	require.NoError(t, json.Unmarshal([]byte(cached), &fromCache))
	assert.False(t, fromCache.EmailNotifications)
}

func TestNotificationSettings_EmptyUpdateRejected(t *testing.T) {
	env := setupReminderEnv(t)

	w := env.do(t, http.MethodPut, "/api/reminders/settings", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
