package txregistry

import (
	"strings"
	"testing"
	"time"

	"github.com/gabapcia/txwatch/internal/confirmwatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	validTxID     = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	uppercaseTxID = "4A5E1E4BAAB89F3A32518A88C31BC87F618F76673E2CC77AB2127B7AFDEDA33B"
)

func TestService_StartWatching(t *testing.T) {
	t.Run("delegates a valid request to the watch service", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		expected := confirmwatch.WatchedTransaction{
			ID:      validTxID,
			Status:  confirmwatch.StatusUnconfirmed,
			AddedAt: time.Now().UTC(),
		}
		watcherMock.EXPECT().Watch(mock.Anything, "alice", validTxID).Return(expected, nil)

		tx, err := svc.StartWatching(t.Context(), "alice", validTxID)
		require.NoError(t, err)
		assert.Equal(t, expected, tx)
	})

	t.Run("normalizes the transaction id to lowercase", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		watcherMock.EXPECT().Watch(mock.Anything, "alice", validTxID).
			Return(confirmwatch.WatchedTransaction{ID: validTxID}, nil)

		_, err := svc.StartWatching(t.Context(), "alice", uppercaseTxID)
		assert.NoError(t, err)
	})

	t.Run("trims surrounding whitespace from the transaction id", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		watcherMock.EXPECT().Watch(mock.Anything, "alice", validTxID).
			Return(confirmwatch.WatchedTransaction{ID: validTxID}, nil)

		_, err := svc.StartWatching(t.Context(), "alice", "  "+validTxID+"\n")
		assert.NoError(t, err)
	})

	t.Run("rejects an empty owner before touching the watch service", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		_, err := svc.StartWatching(t.Context(), "   ", validTxID)
		assert.ErrorIs(t, err, ErrOwnerRequired)
	})

	t.Run("rejects malformed transaction ids before touching the watch service", func(t *testing.T) {
		testCases := []struct {
			name string
			txid string
		}{
			{name: "empty id", txid: ""},
			{name: "too short", txid: validTxID[:63]},
			{name: "too long", txid: validTxID + "a"},
			{name: "non-hex characters", txid: strings.Repeat("g", 64)},
			{name: "embedded whitespace", txid: validTxID[:32] + " " + validTxID[33:]},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				watcherMock := NewWatchServiceMock(t)
				svc := New(watcherMock)

				_, err := svc.StartWatching(t.Context(), "alice", tc.txid)
				assert.ErrorIs(t, err, ErrInvalidTransactionID)
			})
		}
	})

	t.Run("propagates watch service errors", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		watcherMock.EXPECT().Watch(mock.Anything, "alice", validTxID).
			Return(confirmwatch.WatchedTransaction{}, confirmwatch.ErrAlreadyWatched)

		_, err := svc.StartWatching(t.Context(), "alice", validTxID)
		assert.ErrorIs(t, err, confirmwatch.ErrAlreadyWatched)
	})
}

func TestService_StopWatching(t *testing.T) {
	t.Run("delegates a valid request to the watch service", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		watcherMock.EXPECT().Unwatch(mock.Anything, "alice", validTxID).Return(nil)

		assert.NoError(t, svc.StopWatching(t.Context(), "alice", uppercaseTxID))
	})

	t.Run("rejects an empty owner", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		err := svc.StopWatching(t.Context(), "", validTxID)
		assert.ErrorIs(t, err, ErrOwnerRequired)
	})

	t.Run("rejects a malformed transaction id", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		err := svc.StopWatching(t.Context(), "alice", "not-a-txid")
		assert.ErrorIs(t, err, ErrInvalidTransactionID)
	})

	t.Run("propagates watch service errors", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		watcherMock.EXPECT().Unwatch(mock.Anything, "alice", validTxID).
			Return(confirmwatch.ErrNotWatched)

		err := svc.StopWatching(t.Context(), "alice", validTxID)
		assert.ErrorIs(t, err, confirmwatch.ErrNotWatched)
	})
}

func TestService_ListWatched(t *testing.T) {
	t.Run("returns the owner's watch set", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		expected := []confirmwatch.WatchedTransaction{
			{ID: validTxID, Status: confirmwatch.StatusConfirmed, Confirmations: 3},
		}
		watcherMock.EXPECT().List(mock.Anything, "alice").Return(expected, nil)

		txs, err := svc.ListWatched(t.Context(), "alice")
		require.NoError(t, err)
		assert.Equal(t, expected, txs)
	})

	t.Run("rejects an empty owner", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		_, err := svc.ListWatched(t.Context(), "")
		assert.ErrorIs(t, err, ErrOwnerRequired)
	})

	t.Run("propagates watch service errors", func(t *testing.T) {
		watcherMock := NewWatchServiceMock(t)
		svc := New(watcherMock)

		watcherMock.EXPECT().List(mock.Anything, "alice").Return(nil, assert.AnError)

		_, err := svc.ListWatched(t.Context(), "alice")
		assert.ErrorIs(t, err, assert.AnError)
	})
}
