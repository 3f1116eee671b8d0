// Package cli provides the command-line interface for pdfmeta.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/pdfmeta/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:])
}

func run(rootCmd *cobra.Command, args []string) int {
	commands.ExitCode = 0
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors stops cobra from printing it
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	globals := &commands.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "pdfmeta",
		Short: "Read typed metadata from PDF documents",
		Long: `pdfmeta reads the metadata of PDF documents and turns it into typed values.

Reports come from poppler's pdfinfo when it is installed, or from a
built-in reader otherwise. Dates, yes/no flags, page counts and the
file size are converted to timestamps, booleans and integers.

EXTRACTORS:
  pdfinfo is searched for in order:
    1. Same directory as the pdfmeta binary
    2. ~/.pdfmeta/bin/
    3. Anywhere in PATH`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	globals.AddFlags(rootCmd)

	rootCmd.AddCommand(commands.NewShowCommand(globals))
	rootCmd.AddCommand(commands.NewTitleCommand(globals))
	rootCmd.AddCommand(commands.NewYearCommand(globals))
	rootCmd.AddCommand(commands.NewParseCommand(globals))
	rootCmd.AddCommand(commands.NewDiagnoseCommand(globals))
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
