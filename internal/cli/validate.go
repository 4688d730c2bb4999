package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/scriptsplit/internal/wire"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the organized project",
	Long: `Run the validation rules against the current organization:
import coverage in main.py, data file paths, and output paths.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		derived, err := wire.OrganizationService().Derive(ctx)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		result := derived.Validation

		for _, msg := range result.Successes {
			fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint("✓"), msg)
		}
		for _, msg := range result.Warnings {
			fmt.Printf("%s %s\n", color.New(color.FgYellow).Sprint("!"), msg)
		}
		for _, msg := range result.Errors {
			fmt.Printf("%s %s\n", color.New(color.FgRed).Sprint("✗"), msg)
		}

		if result.IsValid {
			fmt.Println(color.New(color.FgGreen).Sprint("Validation passed"))
			return nil
		}
		fmt.Println(color.New(color.FgRed).Sprintf("Validation failed: %d error(s)", len(result.Errors)))
		return nil
	},
}

// ValidateCmd returns the validate command
func ValidateCmd() *cobra.Command {
	return validateCmd
}
