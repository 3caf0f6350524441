package confirmwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txwatch/internal/pkg/logger"
)

var (
	// ErrAlreadyWatched is returned by Watch when the owner already watches
	// the transaction id.
	ErrAlreadyWatched = errors.New("transaction is already being watched")

	// ErrNotWatched is returned when the owner does not watch the
	// transaction id, or when it was unwatched while its resolving lookup
	// was still in flight.
	ErrNotWatched = errors.New("transaction is not being watched")
)

// Watch adds a transaction id to the owner's watch set.
//
// The entry is inserted as pending immediately, so concurrent readers see it
// while the resolving remote lookup runs. The lookup then settles the entry
// into unconfirmed or confirmed and persists it. A lookup or persistence
// failure rolls the pending entry back; pending is a transient state that
// must not outlive the first lookup. If the transaction is already confirmed
// at add time, a "now watching a confirmed transaction" notification is
// emitted once, unless the owner's level is none.
func (s *service) Watch(ctx context.Context, owner, txid string) (WatchedTransaction, error) {
	ow := s.ownerWatch(owner)

	ow.reconcileMu.Lock()
	if err := s.ensureLoaded(ctx, ow, owner); err != nil {
		ow.reconcileMu.Unlock()
		return WatchedTransaction{}, err
	}

	pending := WatchedTransaction{
		ID:      txid,
		Status:  StatusPending,
		AddedAt: time.Now().UTC(),
	}
	if !ow.set.insert(pending) {
		ow.reconcileMu.Unlock()
		return WatchedTransaction{}, ErrAlreadyWatched
	}
	ow.reconcileMu.Unlock()

	// The owner lock is released during the lookup: an Unwatch may race
	// with it, in which case the lookup result is dropped below instead of
	// resurrecting the entry.
	detail, err := s.lookupTransaction(ctx, txid)
	if err != nil {
		ow.reconcileMu.Lock()
		ow.set.remove(txid)
		ow.reconcileMu.Unlock()
		return WatchedTransaction{}, err
	}

	tip := s.currentTip.Load()
	if detail.Confirmed && tip == 0 {
		// Processes that never started the engine (one-shot CLI invocations)
		// have no tip yet; fetch one so add-time state still resolves. On
		// failure the entry settles as unconfirmed and the next
		// reconciliation pass corrects it.
		fetched, err := s.fetchTip(ctx)
		if err != nil {
			logger.Warn(ctx, "failed to fetch tip height while adding transaction",
				"owner", owner,
				"tx.id", txid,
				"error", err,
			)
		} else {
			tip = fetched
		}
	}

	ow.reconcileMu.Lock()
	defer ow.reconcileMu.Unlock()

	resolved := pending
	resolved.Status = StatusUnconfirmed

	if detail.Confirmed && tip > 0 {
		if confirmations := tip - detail.BlockHeight + 1; confirmations > 0 {
			blockHeight := detail.BlockHeight
			resolved.Status = StatusConfirmed
			resolved.Confirmations = confirmations
			resolved.BlockHeight = &blockHeight
		}
	}

	if !ow.set.replace(resolved) {
		return WatchedTransaction{}, ErrNotWatched
	}

	if err := s.storage.UpsertTransaction(ctx, owner, resolved); err != nil {
		ow.set.remove(txid)
		return WatchedTransaction{}, fmt.Errorf("persisting watched transaction: %w", err)
	}

	if resolved.Status == StatusConfirmed {
		if level := s.notificationLevel(ctx, owner); level != LevelNone {
			s.deliver(ctx, owner, resolved.ID, resolved.Confirmations,
				renderWatchingConfirmedMessage(resolved.ID, resolved.Confirmations))
		}
	}

	return resolved, nil
}

// Unwatch removes a transaction id from the owner's watch set. The in-memory
// entry is removed optimistically; if the persisted delete fails, the entry
// is restored and the failure surfaced.
func (s *service) Unwatch(ctx context.Context, owner, txid string) error {
	ow := s.ownerWatch(owner)

	ow.reconcileMu.Lock()
	defer ow.reconcileMu.Unlock()

	if err := s.ensureLoaded(ctx, ow, owner); err != nil {
		return err
	}

	removed, ok := ow.set.remove(txid)
	if !ok {
		return ErrNotWatched
	}

	if err := s.storage.DeleteTransaction(ctx, owner, txid); err != nil {
		ow.set.put(removed)
		return fmt.Errorf("deleting watched transaction: %w", err)
	}

	return nil
}

// List returns the owner's watched transactions, most recently added first.
func (s *service) List(ctx context.Context, owner string) ([]WatchedTransaction, error) {
	ow := s.ownerWatch(owner)

	ow.reconcileMu.Lock()
	defer ow.reconcileMu.Unlock()

	if err := s.ensureLoaded(ctx, ow, owner); err != nil {
		return nil, err
	}

	return ow.set.snapshot(), nil
}
