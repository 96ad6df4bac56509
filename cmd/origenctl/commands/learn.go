package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/origenlab/backend/internal/domain/topic"
	"github.com/origenlab/backend/internal/service"
)

func learnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "learn <topic>",
		Short: "Print the definitions of a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := topic.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s (see `origenctl topics`)", err, args[0])
			}

			id := engine.Create().ID
			defer engine.Delete(id)

			if _, err := dispatch(id, service.SelectTopic{Topic: t}); err != nil {
				return err
			}
			snap, err := settle(cmd, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", snap.Topic.Title)
			if len(snap.Learn) == 0 {
				fmt.Fprintln(out, "No definitions available right now. Try again.")
				return nil
			}
			for i, it := range snap.Learn {
				fmt.Fprintf(out, "%2d. %s\n    %s\n", i+1, it.Prompt, it.Answer)
			}
			return nil
		},
	}
}
