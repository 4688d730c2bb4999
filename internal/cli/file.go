package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/scriptsplit/internal/ports/primary"
	"github.com/example/scriptsplit/internal/wire"
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Manage files in the working set",
	Long:  "Create, list, rename, and delete the Python files the script is split into",
}

var fileCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new Python file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		file, err := wire.OrganizationService().CreateFile(ctx, primary.CreateFileRequest{BaseName: args[0]})
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}

		fmt.Printf("✓ Created file %s: %s\n", file.ID, file.Name)
		return nil
	},
}

var fileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all files",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		derived, err := wire.OrganizationService().Derive(ctx)
		if err != nil {
			return fmt.Errorf("failed to derive locations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tLOCATION\tHOLDS")
		fmt.Fprintln(w, "--\t----\t----\t--------\t-----")
		for _, f := range wire.OrganizationService().ListFiles(ctx) {
			loc := "./"
			if l, ok := derived.Locations[f.ID]; ok {
				loc = l.Path
			}
			holds := holdsSummary(f.AssignedFunctions, f.AssignedImports, f.AssignedCodeBlocks)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", f.ID, f.Name, f.Type.Label(), loc, holds)
		}
		w.Flush()
		return nil
	},
}

var fileShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show file details and generated content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		file, err := resolveFile(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("File: %s (%s)\n", file.Name, file.ID)
		fmt.Printf("  Type: %s\n", file.Type.Label())
		if file.Description != "" {
			fmt.Printf("  Description: %s\n", file.Description)
		}
		if len(file.AssignedFunctions) > 0 {
			fmt.Printf("  Functions: %s\n", strings.Join(file.AssignedFunctions, ", "))
		}
		if len(file.AssignedImports) > 0 {
			fmt.Printf("  Imports: %s\n", strings.Join(file.AssignedImports, ", "))
		}
		if len(file.AssignedCodeBlocks) > 0 {
			fmt.Printf("  Code blocks: %s\n", strings.Join(file.AssignedCodeBlocks, ", "))
		}

		content := file.Content
		if file.IsMain() {
			content = wire.OrganizationService().MainText(ctx)
		}
		if content != "" {
			fmt.Println()
			fmt.Println(content)
		}
		return nil
	},
}

var fileRenameCmd = &cobra.Command{
	Use:   "rename [file] [new-name]",
	Short: "Rename a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		file, err := resolveFile(ctx, args[0])
		if err != nil {
			return err
		}

		if err := wire.OrganizationService().RenameFile(ctx, primary.RenameFileRequest{
			FileID:   file.ID,
			BaseName: args[1],
		}); err != nil {
			return fmt.Errorf("failed to rename file: %w", err)
		}

		fmt.Printf("✓ Renamed file %s\n", file.ID)
		return nil
	},
}

var fileDeleteCmd = &cobra.Command{
	Use:   "delete [file]",
	Short: "Delete a file (its functions return to the unassigned pool)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		file, err := resolveFile(ctx, args[0])
		if err != nil {
			return err
		}

		if err := wire.OrganizationService().DeleteFile(ctx, file.ID); err != nil {
			return fmt.Errorf("failed to delete file: %w", err)
		}

		fmt.Printf("✓ Deleted file %s\n", file.Name)
		return nil
	},
}

func holdsSummary(functions, imports, blocks []string) string {
	var parts []string
	if n := len(functions); n > 0 {
		parts = append(parts, fmt.Sprintf("%d fn", n))
	}
	if n := len(imports); n > 0 {
		parts = append(parts, fmt.Sprintf("%d imp", n))
	}
	if n := len(blocks); n > 0 {
		parts = append(parts, fmt.Sprintf("%d blk", n))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func init() {
	fileCmd.AddCommand(fileCreateCmd)
	fileCmd.AddCommand(fileListCmd)
	fileCmd.AddCommand(fileShowCmd)
	fileCmd.AddCommand(fileRenameCmd)
	fileCmd.AddCommand(fileDeleteCmd)
}

// FileCmd returns the file command
func FileCmd() *cobra.Command {
	return fileCmd
}
