package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/scriptsplit/internal/ports/primary"
	"github.com/example/scriptsplit/internal/wire"
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage folders",
	Long:  "Create, list, and delete the folders files are organized into",
}

var folderCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		folder, err := wire.OrganizationService().CreateFolder(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to create folder: %w", err)
		}

		fmt.Printf("✓ Created folder %s: %s\n", folder.ID, folder.Name)
		return nil
	},
}

var folderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List folders and their contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		svc := wire.OrganizationService()

		folders := svc.ListFolders(ctx)
		if len(folders) == 0 {
			fmt.Println("No folders yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tFILES")
		fmt.Fprintln(w, "--\t----\t-----")
		for _, fo := range folders {
			fmt.Fprintf(w, "%s\t%s\t%d\n", fo.ID, fo.Name, len(svc.FilesInFolder(ctx, fo.ID)))
		}
		w.Flush()
		return nil
	},
}

var folderDeleteCmd = &cobra.Command{
	Use:   "delete [folder]",
	Short: "Delete a folder (its files move back to the root)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		force, _ := cmd.Flags().GetBool("force")

		folder, err := resolveFolder(ctx, args[0])
		if err != nil {
			return err
		}

		if err := wire.OrganizationService().DeleteFolder(ctx, primary.DeleteFolderRequest{
			FolderID:  folder.ID,
			Confirmed: force,
		}); err != nil {
			return fmt.Errorf("failed to delete folder: %w\nHint: pass --force to confirm", err)
		}

		fmt.Printf("✓ Deleted folder %s\n", folder.Name)
		return nil
	},
}

func init() {
	folderDeleteCmd.Flags().BoolP("force", "f", false, "Confirm the deletion")

	folderCmd.AddCommand(folderCreateCmd)
	folderCmd.AddCommand(folderListCmd)
	folderCmd.AddCommand(folderDeleteCmd)
}

// FolderCmd returns the folder command
func FolderCmd() *cobra.Command {
	return folderCmd
}
