package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTitleCommand creates the title command.
func NewTitleCommand(g *GlobalOptions) *cobra.Command {
	var (
		ex  extractFlags
		def string
	)

	cmd := &cobra.Command{
		Use:   "title <file|glob>...",
		Short: "Print the title of PDF documents",
		Long: `Print the title of each document.

The title recorded in the document wins. Otherwise the --default value is
used, or a title derived from the file name ("annual_report.pdf" gives
"Annual Report"). With several documents each line is prefixed with the
document path.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ExitCode = 0

			ctx, rt, err := setup(cmd, g)
			if err != nil {
				return err
			}
			extractor, err := ex.build(rt)
			if err != nil {
				return err
			}
			parsers, _, err := openAll(ctx, rt, extractor, args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, p := range parsers {
				if len(parsers) > 1 {
					fmt.Fprintf(w, "%s: %s\n", p.Source(), p.Title(def))
				} else {
					fmt.Fprintln(w, p.Title(def))
				}
				if len(p.Errors()) > 0 {
					ExitCode = 1
				}
			}
			return nil
		},
	}

	ex.add(cmd)
	cmd.Flags().StringVar(&def, "default", "", "Title used when the document has none")

	return cmd
}
