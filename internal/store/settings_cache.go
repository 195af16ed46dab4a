package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stajdefterim/backend/internal/models"
)

// CachedSettings is a read-through cache in front of the settings table.
// Cache failures degrade to direct store reads; they never fail a lookup.
type CachedSettings struct {
	inner  *Settings
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedSettings(inner *Settings, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedSettings {
	return &CachedSettings{
		inner:  inner,
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

func settingsKey(userID string) string {
	return fmt.Sprintf("settings:%s", userID)
}

func (c *CachedSettings) GetByUserID(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	if c.redis != nil {
		raw, err := c.redis.Get(ctx, settingsKey(userID)).Result()
		if err == nil {
			var settings models.NotificationSettings
			if jsonErr := json.Unmarshal([]byte(raw), &settings); jsonErr == nil {
				return &settings, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			c.logger.Warn("settings cache read failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	settings, err := c.inner.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.cache(ctx, userID, settings)
	return settings, nil
}

func (c *CachedSettings) GetOrCreate(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	settings, err := c.inner.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.cache(ctx, userID, settings)
	return settings, nil
}

func (c *CachedSettings) Upsert(ctx context.Context, userID string, updates map[string]interface{}) (*models.NotificationSettings, error) {
	settings, err := c.inner.Upsert(ctx, userID, updates)
	if err != nil {
		return nil, err
	}
	c.Invalidate(ctx, userID)
	c.cache(ctx, userID, settings)
	return settings, nil
}

func (c *CachedSettings) Invalidate(ctx context.Context, userID string) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, settingsKey(userID)).Err(); err != nil {
		c.logger.Warn("settings cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func (c *CachedSettings) cache(ctx context.Context, userID string, settings *models.NotificationSettings) {
	if c.redis == nil {
		return
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, settingsKey(userID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("settings cache write failed", zap.String("user_id", userID), zap.Error(err))
	}
}
