package confirmwatch

import (
	"context"
	"sort"
	"time"
)

// Status describes the confirmation lifecycle of a watched transaction.
type Status string

const (
	// StatusPending marks an entry that was just added and has not completed
	// its first remote lookup yet. Pending entries live only in memory and
	// are never persisted.
	StatusPending Status = "pending"

	// StatusUnconfirmed marks an entry whose remote lookup succeeded but
	// which has not been included in a block yet.
	StatusUnconfirmed Status = "unconfirmed"

	// StatusConfirmed marks an entry that has been included in a block.
	StatusConfirmed Status = "confirmed"
)

// WatchedTransaction is one entry of an owner's watch set: a transaction id
// plus its last known confirmation state.
type WatchedTransaction struct {
	ID            string    // 64-character lowercase hex transaction id
	Status        Status    // confirmation lifecycle state
	Confirmations int64     // 0 unless confirmed; tip - BlockHeight + 1 when confirmed
	BlockHeight   *int64    // block the transaction was included in; nil until confirmed, immutable afterwards
	AddedAt       time.Time // when the owner started watching; drives reverse-insertion ordering
}

// SortNewestFirst orders entries most recently added first, breaking AddedAt
// ties by descending id so the order stays deterministic. It is the single
// definition of the listing order shared by the engine and storage adapters.
func SortNewestFirst(txs []WatchedTransaction) {
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].AddedAt.Equal(txs[j].AddedAt) {
			return txs[i].ID > txs[j].ID
		}
		return txs[i].AddedAt.After(txs[j].AddedAt)
	})
}

// WatchStorage is the persistence contract for watch sets. Entries are keyed
// uniquely by (owner, transaction id).
type WatchStorage interface {
	// ListTransactions returns every entry watched by the given owner,
	// most recently added first.
	ListTransactions(ctx context.Context, owner string) ([]WatchedTransaction, error)

	// UpsertTransaction inserts or replaces the entry for (owner, tx.ID).
	UpsertTransaction(ctx context.Context, owner string, tx WatchedTransaction) error

	// DeleteTransaction removes the entry for (owner, txid). Deleting an
	// entry that does not exist is not an error.
	DeleteTransaction(ctx context.Context, owner, txid string) error

	// ListOwners returns every owner that currently has at least one
	// persisted entry.
	ListOwners(ctx context.Context) ([]string, error)
}
