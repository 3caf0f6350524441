package confirmwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchSet_Sync(t *testing.T) {
	t.Run("marks the set loaded and stores entries", func(t *testing.T) {
		ws := newWatchSet()
		assert.False(t, ws.isLoaded())

		ws.sync([]WatchedTransaction{
			{ID: "tx-a", Status: StatusUnconfirmed},
			{ID: "tx-b", Status: StatusConfirmed, Confirmations: 3},
		})

		assert.True(t, ws.isLoaded())

		_, ok := ws.get("tx-a")
		assert.True(t, ok)
		_, ok = ws.get("tx-b")
		assert.True(t, ok)
	})

	t.Run("skips pending entries from the snapshot", func(t *testing.T) {
		ws := newWatchSet()
		ws.sync([]WatchedTransaction{
			{ID: "tx-pending", Status: StatusPending},
			{ID: "tx-live", Status: StatusUnconfirmed},
		})

		_, ok := ws.get("tx-pending")
		assert.False(t, ok)
		_, ok = ws.get("tx-live")
		assert.True(t, ok)
	})

	t.Run("marks an empty set loaded", func(t *testing.T) {
		ws := newWatchSet()
		ws.sync(nil)

		assert.True(t, ws.isLoaded())
		assert.Empty(t, ws.snapshot())
	})

	t.Run("drops entries missing from the snapshot", func(t *testing.T) {
		ws := newWatchSet()
		ws.sync([]WatchedTransaction{
			{ID: "tx-a", Status: StatusUnconfirmed},
			{ID: "tx-b", Status: StatusUnconfirmed},
		})

		ws.sync([]WatchedTransaction{
			{ID: "tx-b", Status: StatusUnconfirmed},
		})

		_, ok := ws.get("tx-a")
		assert.False(t, ok, "an entry deleted from storage must disappear on the next sync")
		_, ok = ws.get("tx-b")
		assert.True(t, ok)
	})

	t.Run("carries in-memory pending entries over", func(t *testing.T) {
		ws := newWatchSet()
		ws.sync(nil)
		require.True(t, ws.insert(WatchedTransaction{ID: "tx-pending", Status: StatusPending}))

		ws.sync([]WatchedTransaction{
			{ID: "tx-live", Status: StatusUnconfirmed},
		})

		tx, ok := ws.get("tx-pending")
		require.True(t, ok, "a pending entry belongs to an in-flight watch and must survive a refresh")
		assert.Equal(t, StatusPending, tx.Status)
		_, ok = ws.get("tx-live")
		assert.True(t, ok)
	})
}

func TestWatchSet_Insert(t *testing.T) {
	t.Run("adds a new entry", func(t *testing.T) {
		ws := newWatchSet()

		assert.True(t, ws.insert(WatchedTransaction{ID: "tx-a", Status: StatusPending}))

		tx, ok := ws.get("tx-a")
		require.True(t, ok)
		assert.Equal(t, StatusPending, tx.Status)
	})

	t.Run("rejects a duplicate id", func(t *testing.T) {
		ws := newWatchSet()
		require.True(t, ws.insert(WatchedTransaction{ID: "tx-a", Status: StatusUnconfirmed}))

		assert.False(t, ws.insert(WatchedTransaction{ID: "tx-a", Status: StatusPending}))

		tx, ok := ws.get("tx-a")
		require.True(t, ok)
		assert.Equal(t, StatusUnconfirmed, tx.Status, "losing insert must not overwrite the existing entry")
	})
}

func TestWatchSet_Replace(t *testing.T) {
	t.Run("overwrites an existing entry", func(t *testing.T) {
		ws := newWatchSet()
		require.True(t, ws.insert(WatchedTransaction{ID: "tx-a", Status: StatusUnconfirmed}))

		assert.True(t, ws.replace(WatchedTransaction{ID: "tx-a", Status: StatusConfirmed, Confirmations: 1}))

		tx, ok := ws.get("tx-a")
		require.True(t, ok)
		assert.Equal(t, StatusConfirmed, tx.Status)
		assert.Equal(t, int64(1), tx.Confirmations)
	})

	t.Run("write after delete is a no-op", func(t *testing.T) {
		ws := newWatchSet()
		require.True(t, ws.insert(WatchedTransaction{ID: "tx-a", Status: StatusUnconfirmed}))

		_, removed := ws.remove("tx-a")
		require.True(t, removed)

		assert.False(t, ws.replace(WatchedTransaction{ID: "tx-a", Status: StatusConfirmed, Confirmations: 1}))

		_, ok := ws.get("tx-a")
		assert.False(t, ok, "replace must not resurrect a removed entry")
	})
}

func TestWatchSet_Remove(t *testing.T) {
	t.Run("returns the removed entry", func(t *testing.T) {
		ws := newWatchSet()
		require.True(t, ws.insert(WatchedTransaction{ID: "tx-a", Status: StatusUnconfirmed}))

		tx, ok := ws.remove("tx-a")
		assert.True(t, ok)
		assert.Equal(t, "tx-a", tx.ID)

		_, ok = ws.get("tx-a")
		assert.False(t, ok)
	})

	t.Run("reports a missing entry", func(t *testing.T) {
		ws := newWatchSet()

		_, ok := ws.remove("tx-missing")
		assert.False(t, ok)
	})

	t.Run("put restores a removed entry", func(t *testing.T) {
		ws := newWatchSet()
		original := WatchedTransaction{ID: "tx-a", Status: StatusConfirmed, Confirmations: 2}
		require.True(t, ws.insert(original))

		removed, ok := ws.remove("tx-a")
		require.True(t, ok)

		ws.put(removed)

		tx, ok := ws.get("tx-a")
		require.True(t, ok)
		assert.Equal(t, original, tx)
	})
}

func TestWatchSet_Snapshot(t *testing.T) {
	t.Run("orders entries most recently added first", func(t *testing.T) {
		base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

		ws := newWatchSet()
		require.True(t, ws.insert(WatchedTransaction{ID: "tx-old", AddedAt: base}))
		require.True(t, ws.insert(WatchedTransaction{ID: "tx-mid", AddedAt: base.Add(time.Minute)}))
		require.True(t, ws.insert(WatchedTransaction{ID: "tx-new", AddedAt: base.Add(2 * time.Minute)}))

		snapshot := ws.snapshot()
		require.Len(t, snapshot, 3)
		assert.Equal(t, "tx-new", snapshot[0].ID)
		assert.Equal(t, "tx-mid", snapshot[1].ID)
		assert.Equal(t, "tx-old", snapshot[2].ID)
	})

	t.Run("breaks timestamp ties deterministically", func(t *testing.T) {
		addedAt := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

		ws := newWatchSet()
		require.True(t, ws.insert(WatchedTransaction{ID: "aa", AddedAt: addedAt}))
		require.True(t, ws.insert(WatchedTransaction{ID: "bb", AddedAt: addedAt}))

		snapshot := ws.snapshot()
		require.Len(t, snapshot, 2)
		assert.Equal(t, "bb", snapshot[0].ID)
		assert.Equal(t, "aa", snapshot[1].ID)
	})

	t.Run("returns an independent copy", func(t *testing.T) {
		ws := newWatchSet()
		require.True(t, ws.insert(WatchedTransaction{ID: "tx-a", Status: StatusUnconfirmed}))

		snapshot := ws.snapshot()
		require.Len(t, snapshot, 1)
		snapshot[0].Status = StatusConfirmed

		tx, ok := ws.get("tx-a")
		require.True(t, ok)
		assert.Equal(t, StatusUnconfirmed, tx.Status)
	})
}
