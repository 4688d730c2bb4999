package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/scriptsplit/internal/cli"
	"github.com/example/scriptsplit/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "scriptsplit",
		Short:   "scriptsplit - split a monolithic analysis script into a project",
		Version: version.String(),
		Long: `scriptsplit is a CLI for refactoring a single-file microscopy analysis
script into modules and folders. Assign functions to files, organize
files into folders, and validate that main.py still finds everything.`,
	}

	rootCmd.AddCommand(cli.FileCmd())
	rootCmd.AddCommand(cli.AssignCmd())
	rootCmd.AddCommand(cli.UnassignCmd())
	rootCmd.AddCommand(cli.FolderCmd())
	rootCmd.AddCommand(cli.MoveCmd())
	rootCmd.AddCommand(cli.ScriptCmd())
	rootCmd.AddCommand(cli.ValidateCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.SessionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
