package flashcard

import "github.com/origenlab/backend/internal/domain/material"

type Deck struct {
	Cards   []material.Item
	Index   int
	Flipped bool
}

func New(cards []material.Item) Deck {
	return Deck{Cards: cards}
}

func (d Deck) Current() (material.Item, bool) {
	if d.Index >= len(d.Cards) {
		return material.Item{}, false
	}
	return d.Cards[d.Index], true
}

func Flip(d Deck) (Deck, bool) {
	if len(d.Cards) == 0 {
		return d, false
	}
	d.Flipped = !d.Flipped
	return d, true
}

func Next(d Deck) (Deck, bool) {
	if d.Index >= len(d.Cards)-1 {
		return d, false
	}
	d.Index++
	d.Flipped = false
	return d, true
}

func Prev(d Deck) (Deck, bool) {
	if d.Index == 0 {
		return d, false
	}
	d.Index--
	d.Flipped = false
	return d, true
}
