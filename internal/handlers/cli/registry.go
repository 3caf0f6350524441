package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/txwatch/internal/confirmwatch"
	"github.com/gabapcia/txwatch/internal/txregistry"

	"github.com/urfave/cli/v3"
)

// startWatchingTransactionCommand returns a CLI command that allows users to
// register a transaction id for confirmation tracking on behalf of an owner.
//
// Usage example:
//
//	txwatch watch --owner alice --txid 4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b
func startWatchingTransactionCommand(tr txregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register a transaction to be tracked until it accumulates confirmations.",
		Usage:       "Registers a transaction id for watching. Must provide both owner and txid.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "owner",
				Usage:    "Owner the transaction is watched for",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "txid",
				Usage:    "Transaction id to start watching (64 hex characters)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				owner = c.String("owner")
				txid  = c.String("txid")
			)

			tx, err := tr.StartWatching(ctx, owner, txid)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.Writer, formatWatchedTransaction(tx))
			return nil
		},
	}
}

// stopWatchingTransactionCommand returns a CLI command that allows users to
// unregister a transaction id from confirmation tracking.
//
// Usage example:
//
//	txwatch unwatch --owner alice --txid 4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b
func stopWatchingTransactionCommand(tr txregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Unregister a transaction from confirmation tracking.",
		Usage:       "Stops watching a transaction id. Must provide both owner and txid.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "owner",
				Usage:    "Owner the transaction is watched for",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "txid",
				Usage:    "Transaction id to stop watching",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				owner = c.String("owner")
				txid  = c.String("txid")
			)

			return tr.StopWatching(ctx, owner, txid)
		},
	}
}

// listWatchedTransactionsCommand returns a CLI command that prints every
// transaction an owner currently watches, most recently added first.
//
// Usage example:
//
//	txwatch list --owner alice
func listWatchedTransactionsCommand(tr txregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List the transactions watched for an owner, most recently added first.",
		Usage:       "Prints the owner's watch set. Must provide the owner.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "owner",
				Usage:    "Owner whose watch set is listed",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			txs, err := tr.ListWatched(ctx, c.String("owner"))
			if err != nil {
				return err
			}

			for _, tx := range txs {
				fmt.Fprintln(c.Writer, formatWatchedTransaction(tx))
			}
			return nil
		},
	}
}

// formatWatchedTransaction renders one watch set entry as a single output line.
func formatWatchedTransaction(tx confirmwatch.WatchedTransaction) string {
	if tx.Status != confirmwatch.StatusConfirmed || tx.BlockHeight == nil {
		return fmt.Sprintf("%s\t%s", tx.ID, tx.Status)
	}

	return fmt.Sprintf("%s\t%s\tconfirmations=%d\tblock=%d", tx.ID, tx.Status, tx.Confirmations, *tx.BlockHeight)
}
