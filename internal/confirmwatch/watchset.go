package confirmwatch

import (
	"sync"
)

// watchSet is the in-memory view of one owner's watched transactions. The
// persisted store remains authoritative; the set is synced from it on first
// use and again before every reconciliation pass, so mutations made by other
// processes against the shared store are always picked up.
//
// All mutating methods are existence-checked so that a result computed for an
// entry that was removed in the meantime is dropped instead of resurrecting
// the entry.
type watchSet struct {
	mu      sync.RWMutex
	loaded  bool
	entries map[string]WatchedTransaction
}

func newWatchSet() *watchSet {
	return &watchSet{
		entries: make(map[string]WatchedTransaction),
	}
}

// isLoaded reports whether the set has been hydrated from storage.
func (w *watchSet) isLoaded() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.loaded
}

// sync replaces the set's persisted view with the given storage snapshot and
// marks the set loaded. Entries added or removed through another process
// appear and disappear here accordingly. In-memory pending entries are carried
// over: they belong to an in-flight Watch in this process and are not
// persisted yet.
func (w *watchSet) sync(entries []WatchedTransaction) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := make(map[string]WatchedTransaction, len(entries))
	for _, tx := range entries {
		if tx.Status == StatusPending {
			continue
		}
		next[tx.ID] = tx
	}

	for id, tx := range w.entries {
		if tx.Status == StatusPending {
			next[id] = tx
		}
	}

	w.entries = next
	w.loaded = true
}

// get returns the entry for txid, if present.
func (w *watchSet) get(txid string) (WatchedTransaction, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	tx, ok := w.entries[txid]
	return tx, ok
}

// insert adds tx only if no entry with the same id exists yet. It reports
// whether the entry was added.
func (w *watchSet) insert(tx WatchedTransaction) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.entries[tx.ID]; exists {
		return false
	}

	w.entries[tx.ID] = tx
	return true
}

// replace overwrites the entry for tx.ID only if it still exists. It reports
// whether the write was applied; a write after a delete is a no-op.
func (w *watchSet) replace(tx WatchedTransaction) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.entries[tx.ID]; !exists {
		return false
	}

	w.entries[tx.ID] = tx
	return true
}

// put stores tx unconditionally. It is used to restore an entry after a
// failed optimistic removal.
func (w *watchSet) put(tx WatchedTransaction) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries[tx.ID] = tx
}

// remove deletes the entry for txid and returns it, so that callers can
// restore it if the persisted delete fails.
func (w *watchSet) remove(txid string) (WatchedTransaction, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	tx, ok := w.entries[txid]
	if !ok {
		return WatchedTransaction{}, false
	}

	delete(w.entries, txid)
	return tx, true
}

// snapshot returns a copy of all entries, most recently added first.
func (w *watchSet) snapshot() []WatchedTransaction {
	w.mu.RLock()
	defer w.mu.RUnlock()

	txs := make([]WatchedTransaction, 0, len(w.entries))
	for _, tx := range w.entries {
		txs = append(txs, tx)
	}

	SortNewestFirst(txs)
	return txs
}

// ownerWatch pairs an owner's in-memory watch set with the mutex that
// serializes reconciliation passes and mutations for that owner.
type ownerWatch struct {
	// reconcileMu enforces the per-owner concurrency contract: a
	// reconciliation pass and any watch set mutation for the same owner
	// never overlap.
	reconcileMu sync.Mutex

	set *watchSet
}
