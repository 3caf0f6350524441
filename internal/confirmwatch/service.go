// Package confirmwatch implements the confirmation reconciliation engine. It
// owns the per-owner sets of watched transactions, consumes tip height
// announcements from the blockchain data source, re-evaluates every watched
// transaction's confirmation count against the newest tip, applies the
// configured notification policy, and persists resulting state changes
// through WatchStorage.
package confirmwatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/txwatch/internal/pkg/logger"
	"github.com/gabapcia/txwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/txwatch/internal/pkg/types"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// defaultNotificationDedupTTL bounds how long a delivered notification claim
// is remembered by the dedup backend.
const defaultNotificationDedupTTL = 24 * time.Hour

// Service is the reconciliation engine's entrypoint. Start launches the tip
// feed consumer; Watch, Unwatch and List mutate and read the per-owner watch
// sets and are safe to call before Start and concurrently with running
// reconciliation passes.
type Service interface {
	// Start subscribes to the tip feed, fetches the initial tip, runs a
	// first reconciliation across all stored owners, and then keeps
	// consuming tip announcements until the context is canceled or Close
	// is called.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) error

	// Close stops the tip consumer and all reconciliation work. It is safe
	// to call Close even if the service was never started.
	Close()

	// Watch adds a transaction to the owner's watch set and resolves its
	// current confirmation state. See watch.go for the full contract.
	Watch(ctx context.Context, owner, txid string) (WatchedTransaction, error)

	// Unwatch removes a transaction from the owner's watch set.
	Unwatch(ctx context.Context, owner, txid string) error

	// List returns the owner's watch set, most recently added first.
	List(ctx context.Context, owner string) ([]WatchedTransaction, error)
}

// closeFunc defines a cleanup routine to stop background goroutines.
type closeFunc func()

type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool
	closeFunc closeFunc

	blockchain Blockchain
	storage    WatchStorage

	notifier Notifier
	policy   PolicySource
	dedup    NotificationDedup
	dedupTTL time.Duration
	retry    retry.Retry

	// currentTip is the newest tip height the engine has accepted. Zero
	// until the initial fetch completes.
	currentTip atomic.Int64

	ownersMu sync.Mutex
	owners   types.DefaultMap[string, *ownerWatch]
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	tipCh, err := s.blockchain.SubscribeNewTips(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribing to tip feed: %w", err)
	}

	tip, err := s.fetchTip(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("fetching initial tip height: %w", err)
	}

	s.currentTip.Store(tip)

	go func() {
		// The initial tip follows the same reconciliation path as every
		// subsequent announcement; only the trigger differs.
		s.reconcileAll(ctx, tip)
		s.consumeTips(ctx, tipCh)
	}()

	s.closeFunc = func() {
		cancel()
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.closeFunc = nil
	s.isStarted = false
}

// fetchTip fetches the current tip height, retried when a retry mechanism is
// configured.
func (s *service) fetchTip(ctx context.Context) (int64, error) {
	if s.retry == nil {
		return s.blockchain.FetchTipHeight(ctx)
	}

	var tip int64
	if errs := s.retry.Execute(ctx, func() error {
		height, err := s.blockchain.FetchTipHeight(ctx)
		if err != nil {
			return err
		}

		tip = height
		return nil
	}); errs != nil {
		return 0, errors.Join(errs...)
	}

	return tip, nil
}

// ownerWatch returns the per-owner state, creating it on first use.
func (s *service) ownerWatch(owner string) *ownerWatch {
	s.ownersMu.Lock()
	defer s.ownersMu.Unlock()

	return s.owners.Get(owner)
}

// knownOwners returns every owner with in-memory state.
func (s *service) knownOwners() []string {
	s.ownersMu.Lock()
	defer s.ownersMu.Unlock()

	owners := make([]string, 0, len(s.owners.ToMap()))
	for owner := range s.owners.ToMap() {
		owners = append(owners, owner)
	}

	return owners
}

// ensureLoaded hydrates the owner's in-memory watch set from storage on first
// use. Callers must hold ow.reconcileMu.
func (s *service) ensureLoaded(ctx context.Context, ow *ownerWatch, owner string) error {
	if ow.set.isLoaded() {
		return nil
	}

	return s.refreshOwner(ctx, ow, owner)
}

// refreshOwner reloads the owner's watch set from storage. Reconciliation
// refreshes before every pass so that entries added or removed by another
// process against the shared store are evaluated and never resurrected.
// Callers must hold ow.reconcileMu.
func (s *service) refreshOwner(ctx context.Context, ow *ownerWatch, owner string) error {
	entries, err := s.storage.ListTransactions(ctx, owner)
	if err != nil {
		return fmt.Errorf("loading watch set for owner %q: %w", owner, err)
	}

	ow.set.sync(entries)
	return nil
}

// notificationLevel fetches the owner's current policy, falling back to the
// default level when the source fails. The policy is read fresh on every
// reconciliation pass.
func (s *service) notificationLevel(ctx context.Context, owner string) NotificationLevel {
	level, err := s.policy.NotificationLevel(ctx, owner)
	if err != nil {
		logger.Warn(ctx, "failed to fetch notification level, using default",
			"owner", owner,
			"error", err,
		)
		return LevelFirst
	}

	return level.normalize()
}

type config struct {
	notifier Notifier
	policy   PolicySource
	dedup    NotificationDedup
	dedupTTL time.Duration
	retry    retry.Retry
}

// Option configures optional engine collaborators.
type Option func(*config)

// WithNotifier sets the outbound notification transport. Without it the
// engine uses a nop notifier, which suppresses all deliveries without error
// (the unconfigured-credentials case).
func WithNotifier(n Notifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// WithPolicySource sets where per-owner notification levels are read from.
// Without it every owner gets the default level, LevelFirst.
func WithPolicySource(p PolicySource) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithNotificationDedup sets the backend that de-duplicates notification
// crossings across process restarts.
func WithNotificationDedup(d NotificationDedup) Option {
	return func(c *config) {
		c.dedup = d
	}
}

// WithNotificationDedupTTL overrides how long dedup claims are retained.
func WithNotificationDedupTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.dedupTTL = ttl
	}
}

// WithRetry enables retries for remote lookups and the initial tip fetch.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// New creates the reconciliation engine on top of the given blockchain data
// source and watch set storage.
func New(blockchain Blockchain, storage WatchStorage, opts ...Option) *service {
	cfg := config{
		notifier: nopNotifier{},
		policy:   staticPolicySource(LevelFirst),
		dedup:    nopNotificationDedup{},
		dedupTTL: defaultNotificationDedupTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		blockchain: blockchain,
		storage:    storage,
		notifier:   cfg.notifier,
		policy:     cfg.policy,
		dedup:      cfg.dedup,
		dedupTTL:   cfg.dedupTTL,
		retry:      cfg.retry,
		owners: types.NewDefaultMap[string, *ownerWatch](func() *ownerWatch {
			return &ownerWatch{set: newWatchSet()}
		}),
	}
}
