// Package simulation plays one scripted study session against the engine,
// from topic selection through the quiz, an activity, the arcade and the
// game show. It backs the CLI demo and exercises the engine end to end.
package simulation

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/origenlab/backend/internal/domain/material"
	"github.com/origenlab/backend/internal/domain/navigation"
	"github.com/origenlab/backend/internal/domain/topic"
	"github.com/origenlab/backend/internal/service"
)

// Report summarizes a walkthrough.
type Report struct {
	SessionID      string
	Topic          topic.ID
	Definitions    int
	QuizScore      int
	QuizTotal      int
	MatchedPairs   int
	HangmanWord    string
	HangmanWon     bool
	GameShowScores [2]int
}

// hangmanGuesses orders the alphabet roughly by letter frequency in Spanish.
const hangmanGuesses = "EAOSRNIDLCTUMPBGVYQHFZJÑXKW"

type runner struct {
	ctx    context.Context
	engine *service.Engine
	out    io.Writer
	id     string
}

// Run creates a session, walks it through every mode and deletes it.
func Run(ctx context.Context, engine *service.Engine, t topic.ID, out io.Writer) (*Report, error) {
	r := &runner{ctx: ctx, engine: engine, out: out, id: engine.Create().ID}
	defer engine.Delete(r.id)

	rep := &Report{SessionID: r.id, Topic: t}
	fmt.Fprintf(out, "Session started: %s\n", r.id)

	steps := []func(*Report) error{r.learn, r.quiz, r.matching, r.hangman, r.gameShow}
	for _, step := range steps {
		if err := step(rep); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

func (r *runner) do(a service.Action) (service.Snapshot, error) {
	snap, _, err := r.engine.Dispatch(r.id, a)
	if err != nil {
		return snap, fmt.Errorf("%s: %w", a.ActionType(), err)
	}
	return snap, nil
}

// settle waits for fetches and timers and returns the fresh snapshot.
func (r *runner) settle() (service.Snapshot, error) {
	if err := r.engine.WaitForSession(r.ctx, r.id); err != nil {
		return service.Snapshot{}, err
	}
	return r.engine.Get(r.id)
}

func (r *runner) learn(rep *Report) error {
	if _, err := r.do(service.SelectTopic{Topic: rep.Topic}); err != nil {
		return err
	}
	snap, err := r.settle()
	if err != nil {
		return err
	}
	rep.Definitions = len(snap.Learn)
	fmt.Fprintf(r.out, "Learn %s: %d definitions\n", snap.Topic.Title, len(snap.Learn))
	for _, it := range snap.Learn {
		fmt.Fprintf(r.out, "  - %s: %s\n", it.Prompt, it.Answer)
	}
	return nil
}

func (r *runner) quiz(rep *Report) error {
	if _, err := r.do(service.SwitchTab{Tab: navigation.Quiz}); err != nil {
		return err
	}
	snap, err := r.settle()
	if err != nil {
		return err
	}

	for snap.Quiz != nil && snap.Quiz.Question != nil {
		q := snap.Quiz.Question
		answered, err := r.do(service.SubmitAnswer{Option: 0})
		if err != nil {
			return err
		}
		if fb := answered.Quiz.Feedback; fb != nil {
			mark := "x"
			if fb.Correct {
				mark = "ok"
			}
			fmt.Fprintf(r.out, "  [%s] %s -> %s\n", mark, q.Prompt, q.Options[fb.CorrectIndex])
		}
		if snap, err = r.settle(); err != nil {
			return err
		}
	}

	if snap.Quiz != nil {
		rep.QuizScore, rep.QuizTotal = snap.Quiz.Score, snap.Quiz.Total
	}
	fmt.Fprintf(r.out, "Quiz: %d/%d\n", rep.QuizScore, rep.QuizTotal)
	return nil
}

func (r *runner) matching(rep *Report) error {
	if _, err := r.do(service.SwitchTab{Tab: navigation.Activities}); err != nil {
		return err
	}
	if _, err := r.do(service.OpenActivity{N: 2}); err != nil {
		return err
	}
	snap, err := r.settle()
	if err != nil {
		return err
	}
	if snap.Matching == nil {
		return fmt.Errorf("matching board missing")
	}

	for _, h := range snap.Matching.Halves {
		key, ok := strings.CutSuffix(h.ID, "-q")
		if !ok {
			continue
		}
		if _, err := r.do(service.SelectHalf{HalfID: h.ID}); err != nil {
			return err
		}
		if snap, err = r.do(service.SelectHalf{HalfID: key + "-a"}); err != nil {
			return err
		}
	}

	rep.MatchedPairs = snap.Matching.Matched
	fmt.Fprintf(r.out, "Matching: %d/%d pairs\n", snap.Matching.Matched, snap.Matching.Pairs)

	_, err = r.do(service.Exit{})
	return err
}

func (r *runner) hangman(rep *Report) error {
	if _, err := r.do(service.OpenArcade{}); err != nil {
		return err
	}
	if _, err := r.do(service.OpenArcadeGame{Game: navigation.Hangman}); err != nil {
		return err
	}
	snap, err := r.settle()
	if err != nil {
		return err
	}

	for _, l := range hangmanGuesses {
		if snap.Hangman == nil || snap.Hangman.Won || snap.Hangman.Lost {
			break
		}
		if snap, err = r.do(service.Guess{Letter: string(l)}); err != nil {
			return err
		}
	}

	if snap.Hangman != nil {
		rep.HangmanWord, rep.HangmanWon = snap.Hangman.Word, snap.Hangman.Won
		fmt.Fprintf(r.out, "Hangman: %s (%d mistakes, won=%t)\n", snap.Hangman.Word, snap.Hangman.Mistakes, snap.Hangman.Won)
	}

	_, err = r.do(service.Exit{})
	return err
}

func (r *runner) gameShow(rep *Report) error {
	if _, err := r.do(service.OpenGameShow{}); err != nil {
		return err
	}
	snap, err := r.settle()
	if err != nil {
		return err
	}

	if gs := snap.GameShow; gs != nil && gs.Question != nil {
		fmt.Fprintf(r.out, "Game show: %s\n", gs.Question.Prompt)
		answers := gs.Question.Answers
		for i := range answers {
			// Team A takes the first half of the board, team B the rest.
			if i == (len(answers)+1)/2 {
				for range 3 {
					if _, err := r.do(service.AddStrike{}); err != nil {
						return err
					}
				}
			}
			if snap, err = r.do(service.Reveal{Index: i}); err != nil {
				return err
			}
		}
		printAnswers(r.out, snap.GameShow.Question.Answers)
		rep.GameShowScores = snap.GameShow.Scores
	}
	fmt.Fprintf(r.out, "Scores: A=%d B=%d\n", rep.GameShowScores[0], rep.GameShowScores[1])

	_, err = r.do(service.Exit{})
	return err
}

func printAnswers(out io.Writer, answers []material.Answer) {
	for _, a := range answers {
		fmt.Fprintf(out, "  %-24s %3d\n", a.Text, a.Points)
	}
}
