package cli

import (
	"testing"

	settingstest "github.com/gabapcia/txwatch/internal/settings/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

func TestSetNotificationLevelCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		mockService := settingstest.NewService(t)

		cmd := setNotificationLevelCommand(mockService)

		assert.Equal(t, "set-level", cmd.Name)
		assert.Len(t, cmd.Flags, 2)

		ownerFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "owner", ownerFlag.Name)
		assert.True(t, ownerFlag.Required)

		levelFlag := cmd.Flags[1].(*cli.StringFlag)
		assert.Equal(t, "level", levelFlag.Name)
		assert.True(t, levelFlag.Required)
	})

	t.Run("should store the requested level", func(t *testing.T) {
		mockService := settingstest.NewService(t)
		ctx := t.Context()

		mockService.EXPECT().SetNotificationLevel(mock.Anything, "alice", "all").Return(nil).Once()

		app := &cli.Command{
			Commands: []*cli.Command{setNotificationLevelCommand(mockService)},
		}

		err := app.Run(ctx, []string{"test", "set-level", "--owner", "alice", "--level", "all"})
		assert.NoError(t, err)
	})

	t.Run("should return error when service rejects the level", func(t *testing.T) {
		mockService := settingstest.NewService(t)
		ctx := t.Context()

		mockService.EXPECT().SetNotificationLevel(mock.Anything, "alice", "every_block").
			Return(assert.AnError).Once()

		app := &cli.Command{
			Commands: []*cli.Command{setNotificationLevelCommand(mockService)},
		}

		err := app.Run(ctx, []string{"test", "set-level", "--owner", "alice", "--level", "every_block"})
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("should fail when level flag is missing", func(t *testing.T) {
		mockService := settingstest.NewService(t)
		ctx := t.Context()

		app := &cli.Command{
			Commands: []*cli.Command{setNotificationLevelCommand(mockService)},
		}

		err := app.Run(ctx, []string{"test", "set-level", "--owner", "alice"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "level")
	})
}
