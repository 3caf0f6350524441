package cli

import (
	"context"
	"os"

	"github.com/gabapcia/txwatch/internal/confirmwatch"
	"github.com/gabapcia/txwatch/internal/settings"
	"github.com/gabapcia/txwatch/internal/txregistry"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the txwatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the confirmation reconciliation engine.
//   - `watch`: Registers a transaction for confirmation tracking.
//   - `unwatch`: Unregisters a transaction from confirmation tracking.
//   - `list`: Prints an owner's watched transactions.
//   - `set-level`: Sets an owner's notification level.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - tr: The txregistry service implementation used by transaction commands.
//   - st: The settings service implementation used by the set-level command.
//   - cw: The confirmwatch service implementation used by the engine command.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, tr txregistry.Service, st settings.Service, cw confirmwatch.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txwatch",
		Description:           "Command-line interface for managing and running the txwatch confirmation engine.",
		Usage:                 "txwatch [command] [flags]",
		Commands: []*cli.Command{
			startEngineCommand(cw),
			startWatchingTransactionCommand(tr),
			stopWatchingTransactionCommand(tr),
			listWatchedTransactionsCommand(tr),
			setNotificationLevelCommand(st),
		},
	}

	return app.Run(ctx, os.Args)
}
