package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/origenlab/backend/internal/domain/topic"
)

func topicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the study topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, t := range topic.Catalog() {
				fmt.Fprintf(out, "%-16s %s\n", t.ID, t.Title)
				fmt.Fprintf(out, "%-16s %s\n", "", t.Description)
			}
			return nil
		},
	}
}
