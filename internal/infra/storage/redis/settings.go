package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/txwatch/internal/confirmwatch"
	"github.com/gabapcia/txwatch/internal/settings"
)

// settingsKeyPrefix is the Redis key namespace for notification settings.
const settingsKeyPrefix = "settings"

// notificationLevelKey builds the Redis key storing an owner's notification
// level.
//
// Format: "settings:level:{owner}"
func notificationLevelKey(owner string) string {
	return fmt.Sprintf("%s:level:%s", settingsKeyPrefix, owner)
}

// SaveNotificationLevel stores the owner's notification level with no
// expiration, overwriting any previous value.
func (c *client) SaveNotificationLevel(ctx context.Context, owner, level string) error {
	return c.conn.Set(ctx, notificationLevelKey(owner), level, 0).Err()
}

// LoadNotificationLevel returns the owner's stored notification level, or an
// empty string when none has been saved yet.
func (c *client) LoadNotificationLevel(ctx context.Context, owner string) (string, error) {
	level, err := c.conn.Get(ctx, notificationLevelKey(owner)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}

		return "", err
	}

	return level, nil
}

// NotificationLevel implements the reconciliation engine's PolicySource on
// top of the same stored level. Unset levels come back empty; the engine
// normalizes them onto its default.
func (c *client) NotificationLevel(ctx context.Context, owner string) (confirmwatch.NotificationLevel, error) {
	level, err := c.LoadNotificationLevel(ctx, owner)
	if err != nil {
		return "", err
	}

	return confirmwatch.NotificationLevel(level), nil
}

// Compile-time assertions for the settings contracts.
var (
	_ settings.LevelStorage     = new(client)
	_ confirmwatch.PolicySource = new(client)
)
