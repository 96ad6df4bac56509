package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func generationsCmd() *cobra.Command {
	var (
		limit int
		stats bool
	)
	cmd := &cobra.Command{
		Use:   "generations",
		Short: "Show the Content Provider journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			if stats {
				rows, err := journal.GenerationStats(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "KIND\tTOTAL\tOK\tEMPTY\tFAILED\tINVALID\tCANCELLED\tAVG MS")
				for _, s := range rows {
					fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
						s.Kind, s.Total, s.OK, s.Empty, s.Failed, s.Invalid, s.Cancelled, s.AvgLatencyMS)
				}
				return nil
			}

			gens, err := journal.ListGenerations(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "ID\tWHEN\tKIND\tTOPIC\tSTATUS\tITEMS\tLATENCY\tERROR")
			for _, g := range gens {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
					g.ID, g.CreatedAt.Local().Format(time.DateTime), g.Kind, g.Topic, g.Status,
					g.Items, g.Latency.Round(time.Millisecond), g.Error)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries")
	cmd.Flags().BoolVar(&stats, "stats", false, "show per-kind totals instead")
	return cmd
}
