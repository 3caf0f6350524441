// Package txregistry is the validated surface for managing which transactions
// an owner watches. It normalizes and validates input and delegates the
// actual watch set mutations to the reconciliation engine.
package txregistry

import (
	"context"

	"github.com/gabapcia/txwatch/internal/confirmwatch"
)

// Service registers and unregisters transactions for confirmation tracking.
type Service interface {
	// StartWatching validates the transaction id and adds it to the
	// owner's watch set, returning the resolved entry.
	//
	// Returns ErrInvalidTransactionID for malformed ids, rejected before
	// any state mutation.
	StartWatching(ctx context.Context, owner, txid string) (confirmwatch.WatchedTransaction, error)

	// StopWatching validates the transaction id and removes it from the
	// owner's watch set.
	StopWatching(ctx context.Context, owner, txid string) error

	// ListWatched returns the owner's watch set, most recently added first.
	ListWatched(ctx context.Context, owner string) ([]confirmwatch.WatchedTransaction, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	watcher WatchService
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new txregistry service delegating to the given watch service.
func New(w WatchService) *service {
	return &service{
		watcher: w,
	}
}

// StartWatching validates the input and adds the transaction to the owner's
// watch set.
func (s *service) StartWatching(ctx context.Context, owner, txid string) (confirmwatch.WatchedTransaction, error) {
	req, err := buildWatchRequest(owner, txid)
	if err != nil {
		return confirmwatch.WatchedTransaction{}, err
	}

	return s.watcher.Watch(ctx, req.Owner, req.TransactionID)
}

// StopWatching validates the input and removes the transaction from the
// owner's watch set.
func (s *service) StopWatching(ctx context.Context, owner, txid string) error {
	req, err := buildWatchRequest(owner, txid)
	if err != nil {
		return err
	}

	return s.watcher.Unwatch(ctx, req.Owner, req.TransactionID)
}

// ListWatched returns the owner's watched transactions.
func (s *service) ListWatched(ctx context.Context, owner string) ([]confirmwatch.WatchedTransaction, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}

	return s.watcher.List(ctx, owner)
}
