// Package telegram delivers notification messages through the Telegram Bot
// API using Markdown formatting.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/txwatch/internal/confirmwatch"
)

// defaultAPIBaseURL is the public Telegram Bot API endpoint.
const defaultAPIBaseURL = "https://api.telegram.org"

// client posts messages to a single Telegram chat.
type client struct {
	httpClient *retryablehttp.Client
	apiBaseURL string
	botToken   string
	chatID     string
}

// Ensure client implements the confirmwatch.Notifier interface at compile time.
var _ confirmwatch.Notifier = (*client)(nil)

// config holds optional settings for the Telegram client.
type config struct {
	apiBaseURL string
}

// Option configures the Telegram client.
type Option func(*config)

// WithAPIBaseURL overrides the Telegram API endpoint. Useful for tests and
// self-hosted Bot API servers.
func WithAPIBaseURL(u string) Option {
	return func(c *config) {
		c.apiBaseURL = u
	}
}

// NewClient creates a Telegram notifier that sends every message to the given
// chat using the bot identified by token.
func NewClient(httpClient *retryablehttp.Client, botToken, chatID string, opts ...Option) *client {
	cfg := config{
		apiBaseURL: defaultAPIBaseURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		httpClient: httpClient,
		apiBaseURL: strings.TrimRight(cfg.apiBaseURL, "/"),
		botToken:   botToken,
		chatID:     chatID,
	}
}

// sendMessageRequest is the payload of the Bot API sendMessage method.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// sendMessageResponse carries the fields of the Bot API response needed to
// surface failures.
type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Notify sends the message to the configured chat as Markdown. The owner is
// part of the engine contract but plays no routing role here: all messages of
// this notifier share one chat.
func (c *client) Notify(ctx context.Context, owner, message string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      message,
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("encoding telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBaseURL, c.botToken)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var body sendMessageResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return fmt.Errorf("decoding telegram response: %w", err)
	}

	if !body.OK {
		return fmt.Errorf("telegram api rejected message: %s", body.Description)
	}

	return nil
}
