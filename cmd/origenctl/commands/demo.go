package commands

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/origenlab/backend/internal/domain/topic"
	"github.com/origenlab/backend/internal/simulation"
)

func demoCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "demo [topic]",
		Short: "Run a scripted walkthrough of every mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if all {
				return demoAll(cmd, out)
			}

			t := topic.UreyMiller
			if len(args) == 1 {
				var err error
				if t, err = topic.Parse(args[0]); err != nil {
					return fmt.Errorf("%w: %s", err, args[0])
				}
			}

			rep, err := simulation.Run(cmd.Context(), engine, t, out)
			if err != nil {
				return err
			}
			printSummary(out, rep)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "walk through every topic, one concurrent session each")
	return cmd
}

// demoAll runs one session per topic in parallel and prints each
// transcript in catalog order once all are done.
func demoAll(cmd *cobra.Command, out io.Writer) error {
	catalog := topic.Catalog()
	transcripts := make([]bytes.Buffer, len(catalog))
	reports := make([]*simulation.Report, len(catalog))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.FetchWorkers)
	for i, t := range catalog {
		g.Go(func() error {
			rep, err := simulation.Run(ctx, engine, t.ID, &transcripts[i])
			if err != nil {
				return fmt.Errorf("%s: %w", t.ID, err)
			}
			reports[i] = rep
			return nil
		})
	}
	err := g.Wait()

	for i := range catalog {
		out.Write(transcripts[i].Bytes())
		if reports[i] != nil {
			printSummary(out, reports[i])
		}
		fmt.Fprintln(out)
	}
	return err
}

func printSummary(out io.Writer, rep *simulation.Report) {
	fmt.Fprintf(out, "Done %s: quiz %d/%d, %d pairs matched, hangman won=%t\n",
		rep.Topic, rep.QuizScore, rep.QuizTotal, rep.MatchedPairs, rep.HangmanWon)
}
