package confirmwatch

import (
	"context"
	"testing"
	"time"

	"github.com/gabapcia/txwatch/internal/pkg/logger"
	retrytest "github.com/gabapcia/txwatch/internal/pkg/resilience/retry/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init(logger.WithLevel("error")) // Use error level to reduce test output
}

func TestService_Start(t *testing.T) {
	t.Run("successful start runs an initial reconciliation", func(t *testing.T) {
		blockchainMock := NewBlockchainMock(t)
		storageMock := NewWatchStorageMock(t)

		svc := New(blockchainMock, storageMock)

		tipCh := make(chan int64)
		blockchainMock.EXPECT().SubscribeNewTips(mock.Anything).
			Return((<-chan int64)(tipCh), nil)
		blockchainMock.EXPECT().FetchTipHeight(mock.Anything).
			Return(int64(100), nil)

		// The startup pass discovers owners before evaluating anything.
		ownersListed := make(chan struct{})
		storageMock.EXPECT().ListOwners(mock.Anything).
			RunAndReturn(func(ctx context.Context) ([]string, error) {
				close(ownersListed)
				return nil, nil
			})

		err := svc.Start(t.Context())
		require.NoError(t, err)
		assert.True(t, svc.isStarted)
		assert.Equal(t, int64(100), svc.currentTip.Load())

		select {
		case <-ownersListed:
		case <-time.After(time.Second):
			t.Fatal("startup reconciliation never listed owners")
		}

		svc.Close()
		close(tipCh)
	})

	t.Run("successful start with retrying initial tip fetch", func(t *testing.T) {
		blockchainMock := NewBlockchainMock(t)
		storageMock := NewWatchStorageMock(t)
		retryMock := retrytest.NewRetry(t)

		svc := New(blockchainMock, storageMock, WithRetry(retryMock))

		tipCh := make(chan int64)
		blockchainMock.EXPECT().SubscribeNewTips(mock.Anything).
			Return((<-chan int64)(tipCh), nil)
		blockchainMock.EXPECT().FetchTipHeight(mock.Anything).
			Return(int64(42), nil)

		retryMock.EXPECT().Execute(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, operation func() error) []error {
				if err := operation(); err != nil {
					return []error{err}
				}
				return nil
			})

		storageMock.EXPECT().ListOwners(mock.Anything).Return(nil, nil).Maybe()

		err := svc.Start(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int64(42), svc.currentTip.Load())

		svc.Close()
		close(tipCh)
	})

	t.Run("fails when the tip subscription cannot be established", func(t *testing.T) {
		blockchainMock := NewBlockchainMock(t)
		storageMock := NewWatchStorageMock(t)

		svc := New(blockchainMock, storageMock)

		blockchainMock.EXPECT().SubscribeNewTips(mock.Anything).
			Return(nil, assert.AnError)

		err := svc.Start(t.Context())
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, svc.isStarted)
	})

	t.Run("fails when the initial tip fetch fails", func(t *testing.T) {
		blockchainMock := NewBlockchainMock(t)
		storageMock := NewWatchStorageMock(t)

		svc := New(blockchainMock, storageMock)

		tipCh := make(chan int64)
		blockchainMock.EXPECT().SubscribeNewTips(mock.Anything).
			Return((<-chan int64)(tipCh), nil)
		blockchainMock.EXPECT().FetchTipHeight(mock.Anything).
			Return(int64(0), assert.AnError)

		err := svc.Start(t.Context())
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, svc.isStarted)

		close(tipCh)
	})

	t.Run("fails when started twice", func(t *testing.T) {
		blockchainMock := NewBlockchainMock(t)
		storageMock := NewWatchStorageMock(t)

		svc := New(blockchainMock, storageMock)

		tipCh := make(chan int64)
		blockchainMock.EXPECT().SubscribeNewTips(mock.Anything).
			Return((<-chan int64)(tipCh), nil)
		blockchainMock.EXPECT().FetchTipHeight(mock.Anything).
			Return(int64(100), nil)
		storageMock.EXPECT().ListOwners(mock.Anything).Return(nil, nil).Maybe()

		require.NoError(t, svc.Start(t.Context()))

		err := svc.Start(t.Context())
		assert.ErrorIs(t, err, ErrServiceAlreadyStarted)

		svc.Close()
		close(tipCh)
	})
}

func TestService_Close(t *testing.T) {
	t.Run("close without start is a no-op", func(t *testing.T) {
		blockchainMock := NewBlockchainMock(t)
		storageMock := NewWatchStorageMock(t)

		svc := New(blockchainMock, storageMock)

		assert.NotPanics(t, func() {
			svc.Close()
		})
	})

	t.Run("close after start allows a restart", func(t *testing.T) {
		blockchainMock := NewBlockchainMock(t)
		storageMock := NewWatchStorageMock(t)

		svc := New(blockchainMock, storageMock)

		tipCh := make(chan int64)
		blockchainMock.EXPECT().SubscribeNewTips(mock.Anything).
			Return((<-chan int64)(tipCh), nil).Times(2)
		blockchainMock.EXPECT().FetchTipHeight(mock.Anything).
			Return(int64(100), nil).Times(2)
		storageMock.EXPECT().ListOwners(mock.Anything).Return(nil, nil).Maybe()

		require.NoError(t, svc.Start(t.Context()))
		svc.Close()
		assert.False(t, svc.isStarted)

		require.NoError(t, svc.Start(t.Context()))
		svc.Close()
		close(tipCh)
	})
}

func TestService_NotificationLevel(t *testing.T) {
	t.Run("returns the configured level", func(t *testing.T) {
		blockchainMock := NewBlockchainMock(t)
		storageMock := NewWatchStorageMock(t)
		policyMock := NewPolicySourceMock(t)

		svc := New(blockchainMock, storageMock, WithPolicySource(policyMock))

		policyMock.EXPECT().NotificationLevel(mock.Anything, "alice").
			Return(LevelAll, nil)

		assert.Equal(t, LevelAll, svc.notificationLevel(t.Context(), "alice"))
	})

	t.Run("normalizes unknown levels", func(t *testing.T) {
		blockchainMock := NewBlockchainMock(t)
		storageMock := NewWatchStorageMock(t)
		policyMock := NewPolicySourceMock(t)

		svc := New(blockchainMock, storageMock, WithPolicySource(policyMock))

		policyMock.EXPECT().NotificationLevel(mock.Anything, "alice").
			Return(NotificationLevel("bogus"), nil)

		assert.Equal(t, LevelFirst, svc.notificationLevel(t.Context(), "alice"))
	})

	t.Run("falls back to the default when the source fails", func(t *testing.T) {
		blockchainMock := NewBlockchainMock(t)
		storageMock := NewWatchStorageMock(t)
		policyMock := NewPolicySourceMock(t)

		svc := New(blockchainMock, storageMock, WithPolicySource(policyMock))

		policyMock.EXPECT().NotificationLevel(mock.Anything, "alice").
			Return(NotificationLevel(""), assert.AnError)

		assert.Equal(t, LevelFirst, svc.notificationLevel(t.Context(), "alice"))
	})

	t.Run("defaults to first when no source is configured", func(t *testing.T) {
		blockchainMock := NewBlockchainMock(t)
		storageMock := NewWatchStorageMock(t)

		svc := New(blockchainMock, storageMock)

		assert.Equal(t, LevelFirst, svc.notificationLevel(t.Context(), "alice"))
	})
}
