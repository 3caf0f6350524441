package confirmwatch

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/gabapcia/txwatch/internal/pkg/logger"
)

// reconciliationPass carries the identity and counters of one full evaluation
// of an owner's watch set against a tip value. The counters are atomics since
// per-transaction lookups within a pass run concurrently.
type reconciliationPass struct {
	id        string // unique pass identifier (UUIDv7), used for log correlation
	owner     string
	tip       int64
	startedAt time.Time

	evaluated atomic.Int64 // entries inspected
	updated   atomic.Int64 // entries whose state changed and was persisted
	notified  atomic.Int64 // notifications delivered
	failed    atomic.Int64 // entries skipped due to lookup, provider or storage failure
}

func newReconciliationPass(owner string, tip int64) *reconciliationPass {
	return &reconciliationPass{
		id:        uuid.Must(uuid.NewV7()).String(),
		owner:     owner,
		tip:       tip,
		startedAt: time.Now().UTC(),
	}
}

// finish logs the pass summary.
func (p *reconciliationPass) finish(ctx context.Context) {
	logger.Info(ctx, "reconciliation pass finished",
		"pass.id", p.id,
		"pass.owner", p.owner,
		"pass.tip", p.tip,
		"pass.duration", time.Since(p.startedAt).String(),
		"pass.evaluated", p.evaluated.Load(),
		"pass.updated", p.updated.Load(),
		"pass.notified", p.notified.Load(),
		"pass.failed", p.failed.Load(),
	)
}
