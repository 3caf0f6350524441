package confirmwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txwatch/internal/pkg/logger"
)

// ErrAlreadyNotified is returned by NotificationDedup implementations when a
// notification for the same (owner, txid, confirmations) crossing was already
// claimed, typically by a previous process incarnation.
var ErrAlreadyNotified = errors.New("notification already delivered")

// Notifier performs one best-effort delivery attempt of a rendered message.
// Failures are reported to the caller and never retried internally.
type Notifier interface {
	Notify(ctx context.Context, owner, message string) error
}

// NotificationDedup claims a notification before it is delivered, so that the
// same confirmation crossing is not announced twice across restarts. Claims
// expire after ttl.
type NotificationDedup interface {
	// ClaimNotification reserves the (owner, txid, confirmations) crossing.
	// It returns ErrAlreadyNotified when the crossing was claimed before.
	ClaimNotification(ctx context.Context, owner, txid string, confirmations int64, ttl time.Duration) error
}

// nopNotifier drops every message. It is the engine's default, covering the
// case where no delivery credentials are configured: notifications are
// suppressed without error.
type nopNotifier struct{}

func (nopNotifier) Notify(ctx context.Context, owner, message string) error { return nil }

// nopNotificationDedup claims everything. It is the engine's default when no
// dedup backend is wired, yielding plain at-least-once delivery.
type nopNotificationDedup struct{}

func (nopNotificationDedup) ClaimNotification(ctx context.Context, owner, txid string, confirmations int64, ttl time.Duration) error {
	return nil
}

// renderConfirmedMessage announces a transaction's first observed confirmation.
func renderConfirmedMessage(txid string, blockHeight int64) string {
	return fmt.Sprintf("✅ *Transaction Confirmed!*\n\n*ID:* `%s`\n*Block:* %d", txid, blockHeight)
}

// renderNewConfirmationMessage announces a confirmation count increase.
func renderNewConfirmationMessage(txid string, confirmations int64) string {
	return fmt.Sprintf("➕ *New Confirmation!*\n\n*ID:* `%s`\n*Total Confirmations:* %d", txid, confirmations)
}

// renderWatchingConfirmedMessage announces that a newly watched transaction
// was already confirmed at add time.
func renderWatchingConfirmedMessage(txid string, confirmations int64) string {
	return fmt.Sprintf("ℹ️ *Now watching a confirmed transaction.*\n\n*ID:* `%s`\n*Confirmations:* %d", txid, confirmations)
}

// deliver claims and sends one notification. It reports whether a delivery
// attempt reached the notifier successfully. Delivery problems are logged and
// never propagate: a failed or duplicate notification must not interrupt
// reconciliation.
func (s *service) deliver(ctx context.Context, owner, txid string, confirmations int64, message string) bool {
	if err := s.dedup.ClaimNotification(ctx, owner, txid, confirmations, s.dedupTTL); err != nil {
		if errors.Is(err, ErrAlreadyNotified) {
			return false
		}

		// A failing dedup backend must not silence notifications; proceed
		// and accept the duplicate risk.
		logger.Warn(ctx, "notification dedup claim failed",
			"owner", owner,
			"tx.id", txid,
			"tx.confirmations", confirmations,
			"error", err,
		)
	}

	if err := s.notifier.Notify(ctx, owner, message); err != nil {
		logger.Error(ctx, "notification delivery failed",
			"owner", owner,
			"tx.id", txid,
			"tx.confirmations", confirmations,
			"error", err,
		)
		return false
	}

	return true
}
