package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/txwatch/internal/confirmwatch"
)

const (
	// watchSetKeyPrefix is the Redis key namespace for persisted watch sets.
	watchSetKeyPrefix = "watchset"

	// ownersIndexKey is the Redis set holding every owner with at least one
	// persisted entry. It lets the reconciliation engine discover owners at
	// startup.
	ownersIndexKey = watchSetKeyPrefix + ":owners"
)

// watchSetKey builds the Redis key of an owner's watch set hash.
//
// Format: "watchset:storage:{owner}"
func watchSetKey(owner string) string {
	return fmt.Sprintf("%s:storage:%s", watchSetKeyPrefix, owner)
}

// watchedTransactionRecord is the persisted JSON shape of one watch set entry.
type watchedTransactionRecord struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	Confirmations int64     `json:"confirmations"`
	BlockHeight   *int64    `json:"blockHeight"`
	AddedAt       time.Time `json:"addedAt"`
}

func toRecord(tx confirmwatch.WatchedTransaction) watchedTransactionRecord {
	return watchedTransactionRecord{
		ID:            tx.ID,
		Status:        string(tx.Status),
		Confirmations: tx.Confirmations,
		BlockHeight:   tx.BlockHeight,
		AddedAt:       tx.AddedAt,
	}
}

func (r watchedTransactionRecord) toWatchedTransaction() confirmwatch.WatchedTransaction {
	return confirmwatch.WatchedTransaction{
		ID:            r.ID,
		Status:        confirmwatch.Status(r.Status),
		Confirmations: r.Confirmations,
		BlockHeight:   r.BlockHeight,
		AddedAt:       r.AddedAt,
	}
}

// ListTransactions returns every entry of the owner's watch set, most
// recently added first.
func (c *client) ListTransactions(ctx context.Context, owner string) ([]confirmwatch.WatchedTransaction, error) {
	values, err := c.conn.HVals(ctx, watchSetKey(owner)).Result()
	if err != nil {
		return nil, err
	}

	txs := make([]confirmwatch.WatchedTransaction, 0, len(values))
	for _, value := range values {
		var record watchedTransactionRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			return nil, fmt.Errorf("decoding watched transaction for owner %q: %w", owner, err)
		}

		txs = append(txs, record.toWatchedTransaction())
	}

	confirmwatch.SortNewestFirst(txs)
	return txs, nil
}

// UpsertTransaction inserts or replaces the entry for (owner, tx.ID) and
// registers the owner in the owners index.
func (c *client) UpsertTransaction(ctx context.Context, owner string, tx confirmwatch.WatchedTransaction) error {
	payload, err := json.Marshal(toRecord(tx))
	if err != nil {
		return fmt.Errorf("encoding watched transaction: %w", err)
	}

	pipe := c.conn.TxPipeline()
	pipe.HSet(ctx, watchSetKey(owner), tx.ID, payload)
	pipe.SAdd(ctx, ownersIndexKey, owner)

	_, err = pipe.Exec(ctx)
	return err
}

// DeleteTransaction removes the entry for (owner, txid). Removing an entry
// that does not exist is not an error.
func (c *client) DeleteTransaction(ctx context.Context, owner, txid string) error {
	return c.conn.HDel(ctx, watchSetKey(owner), txid).Err()
}

// ListOwners returns every owner recorded in the owners index.
func (c *client) ListOwners(ctx context.Context) ([]string, error) {
	return c.conn.SMembers(ctx, ownersIndexKey).Result()
}

// Compile-time assertion to ensure *client satisfies the WatchStorage interface.
var _ confirmwatch.WatchStorage = new(client)
