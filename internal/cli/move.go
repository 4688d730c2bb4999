package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/scriptsplit/internal/wire"
)

var moveCmd = &cobra.Command{
	Use:   "move [file] [folder]",
	Short: "Move a file into a folder, or back to the root with --root",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		toRoot, _ := cmd.Flags().GetBool("root")

		file, err := resolveFile(ctx, args[0])
		if err != nil {
			return err
		}

		folderID := ""
		dest := "root"
		if !toRoot {
			if len(args) < 2 {
				return fmt.Errorf("destination folder required (or pass --root)")
			}
			folder, err := resolveFolder(ctx, args[1])
			if err != nil {
				return err
			}
			folderID = folder.ID
			dest = folder.Name
		}

		if err := wire.OrganizationService().MoveFile(ctx, file.ID, folderID); err != nil {
			return fmt.Errorf("failed to move file: %w", err)
		}

		fmt.Printf("✓ Moved %s to %s\n", file.Name, dest)
		return nil
	},
}

func init() {
	moveCmd.Flags().Bool("root", false, "Move the file back to the root")
}

// MoveCmd returns the move command
func MoveCmd() *cobra.Command {
	return moveCmd
}
