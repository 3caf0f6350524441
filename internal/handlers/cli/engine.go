package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txwatch/internal/confirmwatch"

	"github.com/urfave/cli/v3"
)

// startEngineCommand returns a CLI command that starts the confirmation
// reconciliation engine: the tip feed subscription, the initial tip fetch, and
// the per-owner reconciliation passes.
//
// Usage example:
//
//	txwatch start
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func startEngineCommand(cw confirmwatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the confirmation reconciliation engine, consuming tip announcements and notifying owners.",
		Usage:       "Initializes and runs the engine. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			if err := cw.Start(ctx); err != nil {
				return err
			}
			defer cw.Close()

			<-quit
			return nil
		},
	}
}
