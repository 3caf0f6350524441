package mempool

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gabapcia/txwatch/internal/pkg/logger"
	"github.com/gabapcia/txwatch/internal/pkg/x/chflow"
)

// tipChannelBuffer bounds how many announcements can pile up while the
// consumer is busy. The engine coalesces to the newest height anyway, so a
// small buffer is enough.
const tipChannelBuffer = 16

// wantMessage is the subscription request the mempool.space websocket expects
// right after connecting.
type wantMessage struct {
	Action string   `json:"action"`
	Data   []string `json:"data"`
}

// blockEvent carries the fields of a websocket frame the stream cares about.
// A new tip arrives either as a single "block" object or, on the initial
// snapshot, as a "blocks" array.
type blockEvent struct {
	Block  *blockInfo  `json:"block"`
	Blocks []blockInfo `json:"blocks"`
}

type blockInfo struct {
	Height int64 `json:"height"`
}

// SubscribeNewTips opens the websocket block feed and streams tip heights into
// the returned channel. The connection is re-established after transport
// failures; the channel is closed once ctx is canceled.
func (c *client) SubscribeNewTips(ctx context.Context) (<-chan int64, error) {
	heights := make(chan int64, tipChannelBuffer)

	go func() {
		defer close(heights)

		for {
			if err := c.streamTips(ctx, heights); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn(ctx, "block feed interrupted, reconnecting",
					"url", c.websocketURL,
					"delay", c.reconnectDelay.String(),
					"error", err)
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(c.reconnectDelay):
			}
		}
	}()

	return heights, nil
}

// streamTips runs a single websocket session: connect, subscribe to block
// announcements, and forward heights until the connection drops or ctx is
// canceled.
func (c *client) streamTips(ctx context.Context, heights chan<- int64) error {
	conn, res, err := websocket.DefaultDialer.DialContext(ctx, c.websocketURL, nil)
	if err != nil {
		return err
	}
	if res != nil && res.Body != nil {
		res.Body.Close()
	}
	defer conn.Close()

	// ReadMessage has no context support. Closing the connection from a
	// watcher goroutine is the documented way to unblock it.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	if err := conn.WriteJSON(wantMessage{Action: "want", Data: []string{"blocks"}}); err != nil {
		return err
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			return err
		}

		var event blockEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			logger.Warn(ctx, "discarding malformed block feed frame", "error", err)
			continue
		}

		for _, height := range extractHeights(event) {
			if !chflow.Send(ctx, heights, height) {
				return ctx.Err()
			}
		}
	}
}

// extractHeights flattens a frame into the tip heights it announces, in the
// order they appear.
func extractHeights(event blockEvent) []int64 {
	out := make([]int64, 0, len(event.Blocks)+1)
	for _, block := range event.Blocks {
		if block.Height > 0 {
			out = append(out, block.Height)
		}
	}

	if event.Block != nil && event.Block.Height > 0 {
		out = append(out, event.Block.Height)
	}

	return out
}
