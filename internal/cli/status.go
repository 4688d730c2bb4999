package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/scriptsplit/internal/wire"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the project tree and stage gates",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		svc := wire.OrganizationService()

		fmt.Println("Project:")
		for _, f := range svc.RootFiles(ctx) {
			fmt.Printf("  %s\n", f.Name)
		}
		for _, fo := range svc.ListFolders(ctx) {
			fmt.Printf("  %s/\n", fo.Name)
			for _, f := range svc.FilesInFolder(ctx, fo.ID) {
				fmt.Printf("    %s\n", f.Name)
			}
		}

		if unassigned := svc.UnassignedFunctions(ctx); len(unassigned) > 0 {
			fmt.Printf("\nFunctions still in main.py: %s\n", strings.Join(unassigned, ", "))
		}

		gates := svc.Gates(ctx)
		fmt.Println("\nGates:")
		printGate("finish refactor", gates.CanFinishRefactor, gates.RefactorReason)
		printGate("proceed to organize", gates.CanProceedOrganize, gates.ProceedReason)
		printGate("all user files placed", gates.AllUserFilesPlaced, gates.PlacedReason)
		printGate("finish organize", gates.CanFinishOrganize, gates.OrganizeReason)
		return nil
	},
}

func printGate(name string, open bool, reason string) {
	if open {
		fmt.Printf("  %s %s\n", color.New(color.FgGreen).Sprint("✓"), name)
		return
	}
	fmt.Printf("  %s %s: %s\n", color.New(color.FgRed).Sprint("✗"), name, reason)
}

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return statusCmd
}
