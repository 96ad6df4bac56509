package hangman

import (
	"strings"
	"unicode/utf8"

	"github.com/origenlab/backend/internal/domain/material"
)

const MaxMistakes = 6

type State struct {
	Word     string
	Hint     string
	Guessed  map[rune]bool
	Mistakes int
}

// New starts a game for an already normalized word.
func New(w material.Word) State {
	return State{Word: w.Word, Hint: w.Hint, Guessed: map[rune]bool{}}
}

func (s State) Won() bool {
	if s.Word == "" {
		return false
	}
	for _, r := range s.Word {
		if !s.Guessed[r] {
			return false
		}
	}
	return true
}

func (s State) Lost() bool {
	return s.Mistakes >= MaxMistakes
}

func (s State) Over() bool {
	return s.Won() || s.Lost()
}

// Letters returns the guessed letters in keyboard order.
func (s State) Letters() []string {
	out := make([]string, 0, len(s.Guessed))
	for _, r := range material.Alphabet {
		if s.Guessed[r] {
			out = append(out, string(r))
		}
	}
	return out
}

// Masked shows guessed letters and "_" for the rest. A lost game shows the
// whole word.
func (s State) Masked() string {
	var b strings.Builder
	for i, r := range s.Word {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s.Guessed[r] || s.Lost() {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Guess plays one letter. Letters off the keyboard, repeated letters and
// guesses after the game is decided are ignored.
func Guess(s State, letter string) (State, bool) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if utf8.RuneCountInString(letter) != 1 {
		return s, false
	}
	r, _ := utf8.DecodeRuneInString(letter)
	if !material.IsLetter(r) || s.Guessed[r] || s.Word == "" || s.Over() {
		return s, false
	}

	guessed := make(map[rune]bool, len(s.Guessed)+1)
	for k := range s.Guessed {
		guessed[k] = true
	}
	guessed[r] = true
	s.Guessed = guessed

	if !strings.ContainsRune(s.Word, r) && s.Mistakes < MaxMistakes {
		s.Mistakes++
	}
	return s, true
}
