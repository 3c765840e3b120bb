package card

import (
	"errors"
	"fmt"
)

// ErrNotJokerSuit is returned by Joker for one of the four regular suits
var ErrNotJokerSuit = errors.New("suit has no joker card")

// Card represents a playing card. Cards are plain values: copy them freely and
// compare them with ==.
type Card struct {
	Suit Suit
	Rank Rank
}

// New creates a card without checking that suit and rank belong together.
// Use Joker for the two joker cards.
func New(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Default returns the placeholder card used where a zero value is needed
func Default() Card {
	return Card{Suit: Hearts, Rank: Two}
}

// Joker returns the single card of a joker suit
func Joker(suit Suit) (Card, error) {
	switch suit {
	case QueenSuit:
		return Card{Suit: QueenSuit, Rank: QueenJoker}, nil
	case KingSuit:
		return Card{Suit: KingSuit, Rank: KingJoker}, nil
	}
	return Card{}, fmt.Errorf("%w: %s", ErrNotJokerSuit, suit.EnglishName())
}

// String renders the card as "<suit> <rank>", e.g. "红心 A"
func (c Card) String() string {
	return c.Suit.Name() + " " + c.Rank.Name()
}

// EnglishString renders the card with the English suit name, e.g. "hearts A"
func (c Card) EnglishString() string {
	return c.Suit.EnglishName() + " " + c.Rank.Name()
}

// IsJoker reports whether the card sits in a joker suit
func (c Card) IsJoker() bool {
	return c.Suit.IsJoker()
}

// Valid reports whether the card can appear in a well-formed deck: regular
// suits carry A..K and each joker suit carries only its own joker rank.
func (c Card) Valid() bool {
	switch c.Suit {
	case Plum, Square, Hearts, Spades:
		return c.Rank >= Ace && c.Rank <= King
	case QueenSuit:
		return c.Rank == QueenJoker
	case KingSuit:
		return c.Rank == KingJoker
	}
	return false
}

// Compare orders cards by rank, then by suit
func (c Card) Compare(other Card) int {
	if n := c.Rank.Compare(other.Rank); n != 0 {
		return n
	}
	switch {
	case c.Suit < other.Suit:
		return -1
	case c.Suit > other.Suit:
		return 1
	}
	return 0
}
