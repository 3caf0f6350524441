package cli

import (
	"context"

	"github.com/gabapcia/txwatch/internal/settings"

	"github.com/urfave/cli/v3"
)

// setNotificationLevelCommand returns a CLI command that sets which
// confirmation transitions produce a notification for an owner.
//
// Usage example:
//
//	txwatch set-level --owner alice --level first_two
func setNotificationLevelCommand(st settings.Service) *cli.Command {
	return &cli.Command{
		Name:        "set-level",
		Description: "Set the owner's notification level: none, first, first_two or all.",
		Usage:       "Stores the notification level applied on the owner's next reconciliation pass.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "owner",
				Usage:    "Owner the level applies to",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "level",
				Usage:    "Notification level (none, first, first_two, all)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				owner = c.String("owner")
				level = c.String("level")
			)

			return st.SetNotificationLevel(ctx, owner, level)
		},
	}
}
