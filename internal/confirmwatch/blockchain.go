package confirmwatch

import (
	"context"
	"errors"
)

// ErrTransactionNotFound is returned when the data provider has no record of
// the requested transaction id.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionDetail is the subset of a remote transaction lookup the engine
// cares about: whether the transaction has been mined, and into which block.
type TransactionDetail struct {
	Confirmed   bool  // true once the transaction is included in a block
	BlockHeight int64 // height of the including block; meaningful only when Confirmed
}

// Blockchain defines the remote blockchain data source.
//
// Lookups and tip fetches are stateless single requests; retries are the
// caller's concern. The tip subscription is a long-lived push feed that may
// silently stop delivering; the engine keeps operating off the last known tip
// until values arrive again.
type Blockchain interface {
	// FetchTransaction retrieves the confirmation detail for a single
	// transaction id. It returns ErrTransactionNotFound when the provider
	// does not know the transaction.
	FetchTransaction(ctx context.Context, txid string) (TransactionDetail, error)

	// FetchTipHeight returns the height of the most recent block known to
	// the provider.
	FetchTipHeight(ctx context.Context) (int64, error)

	// SubscribeNewTips begins streaming tip height announcements.
	//
	// It returns a receive-only channel of heights. The channel is closed
	// when ctx is canceled. Reconnection on transport failure is the
	// implementation's concern; the engine only observes silence.
	SubscribeNewTips(ctx context.Context) (<-chan int64, error)
}
