package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/origenlab/backend/internal/domain/navigation"
	"github.com/origenlab/backend/internal/domain/topic"
	"github.com/origenlab/backend/internal/service"
)

func quizCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quiz <topic>",
		Short: "Take a topic quiz interactively",
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
			if _, err := dispatch(id, service.SwitchTab{Tab: navigation.Quiz}); err != nil {
				return err
			}
			snap, err := settle(cmd, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			in := bufio.NewScanner(cmd.InOrStdin())
			if snap.Quiz == nil || snap.Quiz.Total == 0 {
				fmt.Fprintln(out, "Could not load the quiz. Try again.")
				return nil
			}

			for snap.Quiz.Question != nil {
				q := snap.Quiz.Question
				fmt.Fprintf(out, "\n[%d/%d] %s\n", snap.Quiz.Position+1, snap.Quiz.Total, q.Prompt)
				for i, opt := range q.Options {
					fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
				}

				option, ok := readOption(in, out, len(q.Options))
				if !ok {
					return nil
				}
				answered, err := dispatch(id, service.SubmitAnswer{Option: option})
				if err != nil {
					return err
				}
				if fb := answered.Quiz.Feedback; fb != nil {
					if fb.Correct {
						fmt.Fprintln(out, "Correct!")
					} else {
						fmt.Fprintf(out, "Incorrect. Answer: %s\n", q.Options[fb.CorrectIndex])
					}
					if fb.Explanation != "" {
						fmt.Fprintf(out, "  %s\n", fb.Explanation)
					}
				}

				if snap, err = settle(cmd, id); err != nil {
					return err
				}
			}

			fmt.Fprintf(out, "\nScore: %d/%d\n", snap.Quiz.Score, snap.Quiz.Total)
			return nil
		},
	}
}

// readOption prompts until a valid 1-based option is entered and returns it
// 0-based. It reports false at end of input.
func readOption(in *bufio.Scanner, out io.Writer, n int) (int, bool) {
	for {
		fmt.Fprintf(out, "> ")
		if !in.Scan() {
			return 0, false
		}
		choice, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err == nil && choice >= 1 && choice <= n {
			return choice - 1, true
		}
		fmt.Fprintf(out, "Enter a number between 1 and %d\n", n)
	}
}
