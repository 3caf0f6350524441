// Package mempool implements the confirmwatch.Blockchain interface on top of
// the mempool.space REST API and its websocket block feed.
package mempool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/ratelimit"

	"github.com/gabapcia/txwatch/internal/confirmwatch"
)

const (
	// defaultRequestsPerSecond caps calls against the public REST API.
	defaultRequestsPerSecond = 10

	// defaultReconnectDelay is the pause between websocket reconnection
	// attempts.
	defaultReconnectDelay = 5 * time.Second
)

// client talks to a mempool.space compatible API.
type client struct {
	httpClient   *retryablehttp.Client
	apiBaseURL   string
	websocketURL string

	limiter        ratelimit.Limiter
	reconnectDelay time.Duration
}

// Ensure client implements the confirmwatch.Blockchain interface at compile time.
var _ confirmwatch.Blockchain = (*client)(nil)

// config holds optional settings for the mempool client.
type config struct {
	requestsPerSecond int
	reconnectDelay    time.Duration
}

// Option configures the mempool client.
type Option func(*config)

// WithRequestsPerSecond overrides the REST API rate limit.
// Default: 10 requests per second.
func WithRequestsPerSecond(n int) Option {
	return func(c *config) {
		c.requestsPerSecond = n
	}
}

// WithReconnectDelay overrides the pause between websocket reconnection
// attempts. Default: 5 seconds.
func WithReconnectDelay(d time.Duration) Option {
	return func(c *config) {
		c.reconnectDelay = d
	}
}

// NewClient creates a mempool.space client using the given HTTP client, REST
// base URL (e.g. "https://mempool.space/api") and websocket URL
// (e.g. "wss://mempool.space/api/v1/ws").
func NewClient(httpClient *retryablehttp.Client, apiBaseURL, websocketURL string, opts ...Option) *client {
	cfg := config{
		requestsPerSecond: defaultRequestsPerSecond,
		reconnectDelay:    defaultReconnectDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		httpClient:     httpClient,
		apiBaseURL:     strings.TrimRight(apiBaseURL, "/"),
		websocketURL:   websocketURL,
		limiter:        ratelimit.New(cfg.requestsPerSecond),
		reconnectDelay: cfg.reconnectDelay,
	}
}

// transactionResponse is the subset of the mempool.space transaction payload
// the engine needs.
type transactionResponse struct {
	TxID   string `json:"txid"`
	Status struct {
		Confirmed   bool   `json:"confirmed"`
		BlockHeight *int64 `json:"block_height"`
	} `json:"status"`
}

// get performs one rate-limited GET against the REST API.
func (c *client) get(ctx context.Context, path string) (*http.Response, error) {
	c.limiter.Take()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+path, nil)
	if err != nil {
		return nil, err
	}

	return c.httpClient.Do(req)
}

// FetchTransaction retrieves the confirmation detail for a single
// transaction. It returns confirmwatch.ErrTransactionNotFound when the API
// does not know the transaction id.
func (c *client) FetchTransaction(ctx context.Context, txid string) (confirmwatch.TransactionDetail, error) {
	res, err := c.get(ctx, "/tx/"+txid)
	if err != nil {
		return confirmwatch.TransactionDetail{}, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return confirmwatch.TransactionDetail{}, fmt.Errorf("%w: %s", confirmwatch.ErrTransactionNotFound, txid)
	case res.StatusCode != http.StatusOK:
		return confirmwatch.TransactionDetail{}, fmt.Errorf("mempool api returned status %d for transaction %s", res.StatusCode, txid)
	}

	var tx transactionResponse
	if err := json.NewDecoder(res.Body).Decode(&tx); err != nil {
		return confirmwatch.TransactionDetail{}, fmt.Errorf("decoding transaction %s: %w", txid, err)
	}

	detail := confirmwatch.TransactionDetail{}
	if tx.Status.Confirmed && tx.Status.BlockHeight != nil {
		detail.Confirmed = true
		detail.BlockHeight = *tx.Status.BlockHeight
	}

	return detail, nil
}

// FetchTipHeight returns the current chain tip height. The endpoint responds
// with the height as plain text.
func (c *client) FetchTipHeight(ctx context.Context) (int64, error) {
	res, err := c.get(ctx, "/blocks/tip/height")
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("mempool api returned status %d for tip height", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, fmt.Errorf("reading tip height: %w", err)
	}

	height, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing tip height %q: %w", raw, err)
	}

	return height, nil
}
