package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/txwatch/internal/confirmwatch"
)

// notificationKeyPrefix is the Redis key namespace used to de-duplicate
// delivered notifications across process restarts.
const notificationKeyPrefix = "notification"

// notificationDedupKey builds the Redis key claiming one notification
// crossing for a watched transaction.
//
// Format: "notification:dedup:{owner}:{txid}:{confirmations}"
func notificationDedupKey(owner, txid string, confirmations int64) string {
	return fmt.Sprintf("%s:dedup:%s:%s:%d", notificationKeyPrefix, owner, txid, confirmations)
}

// ClaimNotification reserves the (owner, txid, confirmations) crossing using
// SETNX with a TTL. A second claim for the same crossing within the TTL
// returns confirmwatch.ErrAlreadyNotified, which keeps delivery at-least-once
// with restart de-duplication.
func (c *client) ClaimNotification(ctx context.Context, owner, txid string, confirmations int64, ttl time.Duration) error {
	key := notificationDedupKey(owner, txid, confirmations)

	ok, err := c.conn.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return confirmwatch.ErrAlreadyNotified
	}

	return nil
}

// Compile-time assertion to ensure *client satisfies the NotificationDedup interface.
var _ confirmwatch.NotificationDedup = new(client)
