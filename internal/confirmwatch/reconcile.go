package confirmwatch

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/txwatch/internal/pkg/logger"
	"github.com/gabapcia/txwatch/internal/pkg/types"
	"github.com/gabapcia/txwatch/internal/pkg/x/chflow"
)

// consumeTips drains the tip feed until the channel closes or ctx is
// canceled. Before each reconciliation it coalesces every buffered
// announcement down to the newest value, so a slow consumer never evaluates
// intermediate tips.
func (s *service) consumeTips(ctx context.Context, tipCh <-chan int64) {
	for {
		tip, ok := chflow.Receive(ctx, tipCh)
		if !ok {
			return
		}

		tip = drainNewest(tipCh, tip)
		s.handleTip(ctx, tip)
	}
}

// drainNewest empties every buffered value from tipCh without blocking and
// returns the highest tip seen.
func drainNewest(tipCh <-chan int64, tip int64) int64 {
	for {
		select {
		case t, ok := <-tipCh:
			if !ok {
				return tip
			}
			if t > tip {
				tip = t
			}
		default:
			return tip
		}
	}
}

// handleTip accepts a tip announcement and triggers a reconciliation across
// all owners. Stale or replayed tips are dropped: confirmation counts are
// only ever recomputed against the newest tip the engine has seen.
func (s *service) handleTip(ctx context.Context, tip int64) {
	current := s.currentTip.Load()
	if tip <= current {
		logger.Debug(ctx, "skipping stale tip announcement",
			"tip.received", tip,
			"tip.current", current,
		)
		return
	}

	s.currentTip.Store(tip)
	s.reconcileAll(ctx, tip)
}

// reconcileAll runs one reconciliation pass per owner against the given tip.
// Owners reconcile concurrently; passes for the same owner are serialized by
// the per-owner mutex. The call blocks until every owner's pass completes,
// which is what queues (and lets consumeTips coalesce) subsequent tips.
func (s *service) reconcileAll(ctx context.Context, tip int64) {
	owners, err := s.storage.ListOwners(ctx)
	if err != nil {
		// Fall back to the owners already in memory; a flaky store must
		// not stall reconciliation for active owners.
		logger.Error(ctx, "failed to list owners, falling back to in-memory owners", "error", err)
	}

	ownerSet := types.NewSet(owners...)
	ownerSet.Add(s.knownOwners()...)

	var wg sync.WaitGroup
	for owner := range ownerSet.ToIter() {
		wg.Add(1)
		go func(owner string) {
			defer wg.Done()
			s.reconcileOwner(ctx, owner, tip)
		}(owner)
	}
	wg.Wait()
}

// reconcileOwner evaluates every transaction in one owner's watch set against
// the given tip. The set is reloaded from storage first: the store is
// authoritative and other processes mutate it, so a pass must evaluate entries
// added elsewhere and must not write back entries deleted elsewhere.
// Unconfirmed entries require a remote lookup and are resolved concurrently;
// confirmed entries are pure arithmetic and evaluated inline.
func (s *service) reconcileOwner(ctx context.Context, owner string, tip int64) {
	ow := s.ownerWatch(owner)

	ow.reconcileMu.Lock()
	defer ow.reconcileMu.Unlock()

	if err := s.refreshOwner(ctx, ow, owner); err != nil {
		logger.Error(ctx, "skipping reconciliation for owner", "owner", owner, "error", err)
		return
	}

	entries := ow.set.snapshot()
	if len(entries) == 0 {
		return
	}

	pass := newReconciliationPass(owner, tip)
	level := s.notificationLevel(ctx, owner)

	var wg sync.WaitGroup
	for _, tx := range entries {
		pass.evaluated.Add(1)

		if tx.Status == StatusConfirmed && tx.BlockHeight != nil {
			s.applyConfirmedUpdate(ctx, ow, owner, tx, tip, level, pass)
			continue
		}

		wg.Add(1)
		go func(tx WatchedTransaction) {
			defer wg.Done()
			s.resolveUnconfirmed(ctx, ow, owner, tx, tip, level, pass)
		}(tx)
	}
	wg.Wait()

	pass.finish(ctx)
}

// applyConfirmedUpdate recomputes the confirmation count of an already
// confirmed transaction against the new tip. Counts only ever increase; a
// smaller or unchanged count means a stale or replayed tip and leaves the
// entry untouched.
func (s *service) applyConfirmedUpdate(ctx context.Context, ow *ownerWatch, owner string, tx WatchedTransaction, tip int64, level NotificationLevel, pass *reconciliationPass) {
	newConfirmations := tip - *tx.BlockHeight + 1
	if newConfirmations <= tx.Confirmations {
		return
	}

	updated := tx
	updated.Confirmations = newConfirmations

	if !ow.set.replace(updated) {
		// Unwatched since the snapshot was taken; drop the result.
		return
	}

	if err := s.storage.UpsertTransaction(ctx, owner, updated); err != nil {
		// Roll back the optimistic in-memory update so the increment is
		// re-evaluated on the next pass.
		ow.set.replace(tx)
		pass.failed.Add(1)
		logger.Error(ctx, "failed to persist confirmation update",
			"pass.id", pass.id,
			"owner", owner,
			"tx.id", tx.ID,
			"error", err,
		)
		return
	}

	pass.updated.Add(1)

	if shouldNotify(level, tx.Confirmations, newConfirmations) {
		if s.deliver(ctx, owner, updated.ID, newConfirmations, renderNewConfirmationMessage(updated.ID, newConfirmations)) {
			pass.notified.Add(1)
		}
	}
}

// resolveUnconfirmed looks up a pending or unconfirmed transaction and, when
// the provider reports a block, transitions it to confirmed. Lookup failures
// are non-fatal: the entry is left unchanged and the pass continues.
func (s *service) resolveUnconfirmed(ctx context.Context, ow *ownerWatch, owner string, tx WatchedTransaction, tip int64, level NotificationLevel, pass *reconciliationPass) {
	detail, err := s.lookupTransaction(ctx, tx.ID)
	if err != nil {
		pass.failed.Add(1)
		logger.Warn(ctx, "transaction lookup failed",
			"pass.id", pass.id,
			"owner", owner,
			"tx.id", tx.ID,
			"error", err,
		)
		return
	}

	if !detail.Confirmed {
		// Still waiting for a block. The first successful lookup settles a
		// pending entry into unconfirmed.
		if tx.Status != StatusPending {
			return
		}

		updated := tx
		updated.Status = StatusUnconfirmed
		if !ow.set.replace(updated) {
			return
		}

		if err := s.storage.UpsertTransaction(ctx, owner, updated); err != nil {
			ow.set.replace(tx)
			pass.failed.Add(1)
			logger.Error(ctx, "failed to persist unconfirmed transaction",
				"pass.id", pass.id,
				"owner", owner,
				"tx.id", tx.ID,
				"error", err,
			)
		}
		return
	}

	confirmations := tip - detail.BlockHeight + 1
	if confirmations <= 0 {
		// The provider reported a block above the tip we are evaluating
		// against. Skip this cycle without mutating state.
		pass.failed.Add(1)
		logger.Warn(ctx, "provider reported block height above current tip",
			"pass.id", pass.id,
			"owner", owner,
			"tx.id", tx.ID,
			"tx.blockHeight", detail.BlockHeight,
			"tip", tip,
		)
		return
	}

	blockHeight := detail.BlockHeight
	updated := tx
	updated.Status = StatusConfirmed
	updated.Confirmations = confirmations
	updated.BlockHeight = &blockHeight

	if !ow.set.replace(updated) {
		// Unwatched while the lookup was in flight; never resurrect it.
		return
	}

	if err := s.storage.UpsertTransaction(ctx, owner, updated); err != nil {
		ow.set.replace(tx)
		pass.failed.Add(1)
		logger.Error(ctx, "failed to persist confirmed transaction",
			"pass.id", pass.id,
			"owner", owner,
			"tx.id", tx.ID,
			"error", err,
		)
		return
	}

	pass.updated.Add(1)

	if confirmations == 1 && shouldNotify(level, 0, 1) {
		if s.deliver(ctx, owner, updated.ID, confirmations, renderConfirmedMessage(updated.ID, blockHeight)) {
			pass.notified.Add(1)
		}
	}
}

// lookupTransaction fetches one transaction's detail, retried when a retry
// mechanism is configured.
func (s *service) lookupTransaction(ctx context.Context, txid string) (TransactionDetail, error) {
	if s.retry == nil {
		return s.blockchain.FetchTransaction(ctx, txid)
	}

	var detail TransactionDetail
	if errs := s.retry.Execute(ctx, func() error {
		d, err := s.blockchain.FetchTransaction(ctx, txid)
		if err != nil {
			return err
		}

		detail = d
		return nil
	}); errs != nil {
		return TransactionDetail{}, errors.Join(errs...)
	}

	return detail, nil
}
