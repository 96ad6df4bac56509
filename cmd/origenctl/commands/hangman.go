package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/origenlab/backend/internal/domain/navigation"
	"github.com/origenlab/backend/internal/service"
)

func hangmanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hangman",
		Short: "Play hangman interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := engine.Create().ID
			defer engine.Delete(id)

			if _, err := dispatch(id, service.OpenArcade{}); err != nil {
				return err
			}
			if _, err := dispatch(id, service.OpenArcadeGame{Game: navigation.Hangman}); err != nil {
				return err
			}
			snap, err := settle(cmd, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			in := bufio.NewScanner(cmd.InOrStdin())
			h := snap.Hangman
			for h != nil && !h.Won && !h.Lost {
				fmt.Fprintf(out, "\n%s   (%s)\nMistakes %d/%d  Guessed: %s\n> ",
					h.Masked, h.Hint, h.Mistakes, h.MaxMistakes, strings.Join(h.Guessed, " "))
				if !in.Scan() {
					return nil
				}
				snap, applied, err := engine.Dispatch(id, service.Guess{Letter: in.Text()})
				if err != nil {
					return err
				}
				if !applied {
					fmt.Fprintln(out, "Type one new letter.")
				}
				h = snap.Hangman
			}

			if h == nil {
				return fmt.Errorf("hangman did not start")
			}
			if h.Won {
				fmt.Fprintf(out, "\nYou won! The word was %s\n", h.Word)
			} else {
				fmt.Fprintf(out, "\nOut of attempts. The word was %s\n", h.Word)
			}
			return nil
		},
	}
}
