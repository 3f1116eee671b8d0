package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewYearCommand creates the year command.
func NewYearCommand(g *GlobalOptions) *cobra.Command {
	var ex extractFlags

	cmd := &cobra.Command{
		Use:   "year <file|glob>...",
		Short: "Print the year PDF documents were created",
		Long: `Print the creation year of each document, falling back to the
modification year. Documents with neither date print "unknown".`,
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
				year := "unknown"
				if y := p.Year(); y != 0 {
					year = strconv.Itoa(y)
				}
				if len(parsers) > 1 {
					fmt.Fprintf(w, "%s: %s\n", p.Source(), year)
				} else {
					fmt.Fprintln(w, year)
				}
				if len(p.Errors()) > 0 {
					ExitCode = 1
				}
			}
			return nil
		},
	}

	ex.add(cmd)

	return cmd
}
