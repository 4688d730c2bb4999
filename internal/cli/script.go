package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/scriptsplit/internal/core/generate"
	"github.com/example/scriptsplit/internal/wire"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Inspect and edit the generated main script",
	Long:  "Show the main script, list its movable units, and edit its slots",
}

var scriptShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current main script",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		fmt.Println(wire.OrganizationService().MainText(ctx))
		return nil
	},
}

var scriptUnitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the script's movable units",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		svc := wire.OrganizationService()

		unassigned := make(map[string]bool)
		for _, name := range svc.UnassignedFunctions(ctx) {
			unassigned[name] = true
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tNAME\tLINES\tSTATE")
		fmt.Fprintln(w, "----\t----\t-----\t-----")
		for _, u := range svc.Units(ctx) {
			state := "assigned"
			if unassigned[u.Name] {
				state = "unassigned"
			}
			fmt.Fprintf(w, "%s\t%s\t%d-%d\t%s\n", u.Kind, u.Name, u.Range.Start+1, u.Range.End+1, state)
		}
		w.Flush()
		return nil
	},
}

var scriptEditCmd = &cobra.Command{
	Use:   "edit [slot] [value]",
	Short: "Edit one editable slot of the main script",
	Long: `Edit an editable slot and regenerate the main script.

Slots:
  filesList       comma-separated file list, e.g. "a.nd2, b.tiff"
  loadPrefix      path prefix inside load_file(f"...{filename}")
  comparisonPath  path prefix of the comparison output
  overviewPath    path of the overview output (without .png)
  importModule    module name of the import template line
  importItems     imported names of the import template line`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		kind, err := parseSlotKind(args[0])
		if err != nil {
			return err
		}

		if err := wire.OrganizationService().EditSlot(ctx, kind, args[1]); err != nil {
			return fmt.Errorf("failed to edit slot: %w", err)
		}

		fmt.Printf("✓ Updated slot %s\n", kind)
		return nil
	},
}

var scriptImportCmd = &cobra.Command{
	Use:   "import [line]",
	Short: "Append a custom import line to the main script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.OrganizationService().AddImportLine(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to add import: %w", err)
		}

		fmt.Printf("✓ Added import: %s\n", args[0])
		return nil
	},
}

func parseSlotKind(name string) (generate.SlotKind, error) {
	switch generate.SlotKind(name) {
	case generate.SlotFilesList, generate.SlotLoadPrefix, generate.SlotComparisonPath,
		generate.SlotOverviewPath, generate.SlotImportModule, generate.SlotImportItems:
		return generate.SlotKind(name), nil
	}
	return "", fmt.Errorf("invalid slot: %s\nValid slots: filesList, loadPrefix, comparisonPath, overviewPath, importModule, importItems", name)
}

func init() {
	scriptCmd.AddCommand(scriptShowCmd)
	scriptCmd.AddCommand(scriptUnitsCmd)
	scriptCmd.AddCommand(scriptEditCmd)
	scriptCmd.AddCommand(scriptImportCmd)
}

// ScriptCmd returns the script command
func ScriptCmd() *cobra.Command {
	return scriptCmd
}
