// Package material holds the shapes of generated study content and the
// checks applied before any of it reaches a game.
package material

import (
	"errors"
	"strings"

	"github.com/origenlab/backend/internal/id"
)

var (
	ErrEmptyPrompt            = errors.New("question prompt is empty")
	ErrTooFewOptions          = errors.New("question needs at least two options")
	ErrCorrectIndexOutOfRange = errors.New("correct index out of range")
	ErrInvalidWord            = errors.New("word must contain only alphabet letters")
)

// Item is a term/definition pair. It backs the learn view, flashcards and
// the matching game.
type Item struct {
	ID     string `json:"id"`
	Prompt string `json:"question"`
	Answer string `json:"answer"`
}

type Question struct {
	Prompt       string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return ErrEmptyPrompt
	}
	if len(q.Options) < 2 {
		return ErrTooFewOptions
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ErrCorrectIndexOutOfRange
	}
	return nil
}

// ValidateQuestions reports the first invalid question, if any.
func ValidateQuestions(qs []Question) error {
	for _, q := range qs {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type Answer struct {
	Text     string `json:"text"`
	Points   int    `json:"points"`
	Revealed bool   `json:"revealed"`
}

type ShowQuestion struct {
	Prompt  string   `json:"question"`
	Answers []Answer `json:"answers"`
}

// PointTotal sums the answer values. Providers are asked for 100 but the
// total is never enforced.
func (q ShowQuestion) PointTotal() int {
	total := 0
	for _, a := range q.Answers {
		total += a.Points
	}
	return total
}

// Hidden returns a copy with every answer unrevealed.
func (q ShowQuestion) Hidden() ShowQuestion {
	answers := make([]Answer, len(q.Answers))
	for i, a := range q.Answers {
		a.Revealed = false
		answers[i] = a
	}
	return ShowQuestion{Prompt: q.Prompt, Answers: answers}
}

type Word struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}

// Alphabet is the hangman keyboard.
const Alphabet = "ABCDEFGHIJKLMNÑOPQRSTUVWXYZ"

var (
	FallbackWord         = Word{Word: "CIENCIA", Hint: "Estudio de la naturaleza"}
	FallbackShowQuestion = ShowQuestion{Prompt: "Error cargando pregunta", Answers: []Answer{}}
)

// IsLetter reports whether r is on the hangman keyboard.
func IsLetter(r rune) bool {
	return strings.ContainsRune(Alphabet, r)
}

// NormalizeWord uppercases the word, trims both fields and rejects words
// that cannot be played.
func NormalizeWord(w Word) (Word, error) {
	word := strings.ToUpper(strings.TrimSpace(w.Word))
	if word == "" {
		return Word{}, ErrInvalidWord
	}
	for _, r := range word {
		if !IsLetter(r) {
			return Word{}, ErrInvalidWord
		}
	}
	return Word{Word: word, Hint: strings.TrimSpace(w.Hint)}, nil
}

// NormalizeItems drops items without a prompt or answer and gives a fresh
// id to items whose id is empty or already taken.
func NormalizeItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Prompt) == "" || strings.TrimSpace(it.Answer) == "" {
			continue
		}
		if it.ID == "" || seen[it.ID] {
			it.ID = id.GenerateID()
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}
