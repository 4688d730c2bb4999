package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/scriptsplit/internal/wire"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the persisted session",
}

var sessionSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.OrganizationService().SaveSession(ctx); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		fmt.Println("✓ Session saved")
		return nil
	},
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the persisted session and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.SessionRepository().Clear(ctx); err != nil {
			return fmt.Errorf("failed to reset session: %w", err)
		}

		fmt.Println("✓ Session cleared - the next run starts from the defaults")
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionSaveCmd)
	sessionCmd.AddCommand(sessionResetCmd)
}

// SessionCmd returns the session command
func SessionCmd() *cobra.Command {
	return sessionCmd
}
