package txregistry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/txwatch/internal/confirmwatch"
	"github.com/gabapcia/txwatch/internal/pkg/validator"
)

var (
	// ErrInvalidTransactionID is returned when a transaction id does not
	// match the required format: exactly 64 hexadecimal characters.
	ErrInvalidTransactionID = errors.New("invalid transaction id")

	// ErrOwnerRequired is returned when no owner identity is provided.
	ErrOwnerRequired = errors.New("owner is required")
)

// watchRequest carries a validated watch/unwatch request. Transaction ids are
// accepted case-insensitively and normalized to lowercase before validation.
type watchRequest struct {
	Owner         string `validate:"required"`
	TransactionID string `validate:"required,len=64,hexadecimal"`
}

// WatchService is the subset of the reconciliation engine the registry
// delegates to once input has been validated.
type WatchService interface {
	// Watch adds the transaction to the owner's watch set and resolves its
	// current confirmation state.
	Watch(ctx context.Context, owner, txid string) (confirmwatch.WatchedTransaction, error)

	// Unwatch removes the transaction from the owner's watch set.
	Unwatch(ctx context.Context, owner, txid string) error

	// List returns the owner's watch set, most recently added first.
	List(ctx context.Context, owner string) ([]confirmwatch.WatchedTransaction, error)
}

// buildWatchRequest normalizes and validates the owner and transaction id.
// Validation failures are rejected before any state mutation.
func buildWatchRequest(owner, txid string) (watchRequest, error) {
	if strings.TrimSpace(owner) == "" {
		return watchRequest{}, ErrOwnerRequired
	}

	req := watchRequest{
		Owner:         owner,
		TransactionID: strings.ToLower(strings.TrimSpace(txid)),
	}

	if err := validator.Validate(req); err != nil {
		return watchRequest{}, fmt.Errorf("%w: %w", ErrInvalidTransactionID, err)
	}

	return req, nil
}
