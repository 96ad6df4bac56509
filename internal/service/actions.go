package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/origenlab/backend/internal/domain/gameshow"
	"github.com/origenlab/backend/internal/domain/navigation"
	"github.com/origenlab/backend/internal/domain/topic"
)

// ErrUnknownAction is returned by DecodeAction for an unrecognised type tag.
var ErrUnknownAction = errors.New("unknown action")

// Action is a user intent addressed to one session. Actions that do not fit
// the session's current state are ignored.
type Action interface {
	ActionType() string
}

// Navigation.

type SelectTopic struct {
	Topic topic.ID `json:"topic"`
}

type SwitchTab struct {
	Tab navigation.Mode `json:"tab"`
}

type OpenArcade struct{}

type OpenGameShow struct{}

// Exit returns to Home and discards all sub-state.
type Exit struct{}

type OpenActivity struct {
	N int `json:"n"`
}

type CloseActivity struct{}

type OpenArcadeGame struct {
	Game navigation.ArcadeGame `json:"game"`
}

type CloseArcadeGame struct{}

// Retry re-fetches the material of the visible view.
type Retry struct{}

// Exercises.

type SubmitAnswer struct {
	Option int `json:"option"`
}

type FlipCard struct{}

type NextCard struct{}

type PrevCard struct{}

type SelectHalf struct {
	HalfID string `json:"halfId"`
}

type Guess struct {
	Letter string `json:"letter"`
}

type NewWord struct{}

type PlayCell struct {
	Cell int `json:"cell"`
}

type ResetBoard struct{}

type SelectClue struct {
	Category string `json:"category"`
	Points   int    `json:"points"`
}

type AnswerClue struct {
	Correct bool `json:"correct"`
}

// StartRound fetches a new game show question. An empty TopicText uses
// DefaultShowTopic.
type StartRound struct {
	TopicText string `json:"topicText"`
}

type Reveal struct {
	Index int `json:"index"`
}

type AddStrike struct{}

type SetTeam struct {
	Team gameshow.Team `json:"team"`
}

func (SelectTopic) ActionType() string     { return "select_topic" }
func (SwitchTab) ActionType() string       { return "switch_tab" }
func (OpenArcade) ActionType() string      { return "open_arcade" }
func (OpenGameShow) ActionType() string    { return "open_gameshow" }
func (Exit) ActionType() string            { return "exit" }
func (OpenActivity) ActionType() string    { return "open_activity" }
func (CloseActivity) ActionType() string   { return "close_activity" }
func (OpenArcadeGame) ActionType() string  { return "open_arcade_game" }
func (CloseArcadeGame) ActionType() string { return "close_arcade_game" }
func (Retry) ActionType() string           { return "retry" }
func (SubmitAnswer) ActionType() string    { return "submit_answer" }
func (FlipCard) ActionType() string        { return "flip_card" }
func (NextCard) ActionType() string        { return "next_card" }
func (PrevCard) ActionType() string        { return "prev_card" }
func (SelectHalf) ActionType() string      { return "select_half" }
func (Guess) ActionType() string           { return "guess" }
func (NewWord) ActionType() string         { return "new_word" }
func (PlayCell) ActionType() string        { return "play_cell" }
func (ResetBoard) ActionType() string      { return "reset_board" }
func (SelectClue) ActionType() string      { return "select_clue" }
func (AnswerClue) ActionType() string      { return "answer_clue" }
func (StartRound) ActionType() string      { return "start_round" }
func (Reveal) ActionType() string          { return "reveal" }
func (AddStrike) ActionType() string       { return "add_strike" }
func (SetTeam) ActionType() string         { return "set_team" }

var actionDecoders = map[string]func(json.RawMessage) (Action, error){
	"select_topic":      decodeSelectTopic,
	"switch_tab":        decodeAs[SwitchTab],
	"open_arcade":       decodeAs[OpenArcade],
	"open_gameshow":     decodeAs[OpenGameShow],
	"exit":              decodeAs[Exit],
	"open_activity":     decodeAs[OpenActivity],
	"close_activity":    decodeAs[CloseActivity],
	"open_arcade_game":  decodeAs[OpenArcadeGame],
	"close_arcade_game": decodeAs[CloseArcadeGame],
	"retry":             decodeAs[Retry],
	"submit_answer":     decodeAs[SubmitAnswer],
	"flip_card":         decodeAs[FlipCard],
	"next_card":         decodeAs[NextCard],
	"prev_card":         decodeAs[PrevCard],
	"select_half":       decodeAs[SelectHalf],
	"guess":             decodeAs[Guess],
	"new_word":          decodeAs[NewWord],
	"play_cell":         decodeAs[PlayCell],
	"reset_board":       decodeAs[ResetBoard],
	"select_clue":       decodeAs[SelectClue],
	"answer_clue":       decodeAs[AnswerClue],
	"start_round":       decodeAs[StartRound],
	"reveal":            decodeAs[Reveal],
	"add_strike":        decodeAs[AddStrike],
	"set_team":          decodeAs[SetTeam],
}

// DecodeAction reads a tagged action such as
//
//	{"type": "select_topic", "topic": "pasteur"}
func DecodeAction(raw json.RawMessage) (Action, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}
	decode, ok := actionDecoders[tag.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, tag.Type)
	}
	a, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", tag.Type, err)
	}
	return a, nil
}

// ActionTypes lists the accepted type tags in sorted order.
func ActionTypes() []string {
	return slices.Sorted(maps.Keys(actionDecoders))
}

func decodeAs[T Action](raw json.RawMessage) (Action, error) {
	var a T
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	return a, nil
}

func decodeSelectTopic(raw json.RawMessage) (Action, error) {
	var a SelectTopic
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	id, err := topic.Parse(string(a.Topic))
	if err != nil {
		return nil, err
	}
	return SelectTopic{Topic: id}, nil
}
