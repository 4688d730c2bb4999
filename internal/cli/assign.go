package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/scriptsplit/internal/models"
	"github.com/example/scriptsplit/internal/ports/primary"
	"github.com/example/scriptsplit/internal/wire"
)

var assignCmd = &cobra.Command{
	Use:   "assign [unit-name] [file]",
	Short: "Assign a script unit to a file",
	Long: `Assign a function, import, or code block to a Python file.
Functions and code blocks move atomically; imports are copied and may
live in several files at once.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		kindFlag, _ := cmd.Flags().GetString("kind")

		kind, err := parseUnitKind(kindFlag)
		if err != nil {
			return err
		}

		file, err := resolveFile(ctx, args[1])
		if err != nil {
			return err
		}

		if err := wire.OrganizationService().AssignUnit(ctx, primary.AssignRequest{
			UnitName: args[0],
			Kind:     kind,
			TargetID: file.ID,
		}); err != nil {
			return fmt.Errorf("failed to assign %s: %w", args[0], err)
		}

		fmt.Printf("✓ Assigned %s %s to %s\n", kind, args[0], file.Name)
		return nil
	},
}

var unassignCmd = &cobra.Command{
	Use:   "unassign [unit-name]",
	Short: "Remove a unit from whichever file holds it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		kindFlag, _ := cmd.Flags().GetString("kind")

		kind, err := parseUnitKind(kindFlag)
		if err != nil {
			return err
		}

		if err := wire.OrganizationService().UnassignUnit(ctx, args[0], kind); err != nil {
			return fmt.Errorf("failed to unassign %s: %w", args[0], err)
		}

		fmt.Printf("✓ Unassigned %s %s\n", kind, args[0])
		return nil
	},
}

func parseUnitKind(flag string) (models.UnitKind, error) {
	switch flag {
	case "", "function":
		return models.UnitFunction, nil
	case "import":
		return models.UnitImport, nil
	case "block", "codeBlock":
		return models.UnitCodeBlock, nil
	default:
		return "", fmt.Errorf("invalid unit kind: %s\nValid kinds: function, import, block", flag)
	}
}

func init() {
	assignCmd.Flags().StringP("kind", "k", "function", "Unit kind (function, import, block)")
	unassignCmd.Flags().StringP("kind", "k", "function", "Unit kind (function, import, block)")
}

// AssignCmd returns the assign command
func AssignCmd() *cobra.Command {
	return assignCmd
}

// UnassignCmd returns the unassign command
func UnassignCmd() *cobra.Command {
	return unassignCmd
}
