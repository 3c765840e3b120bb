package card

import (
	"errors"
	"fmt"
	"strings"
)

// Suit represents the suit of a card
type Suit int

const (
	Plum      Suit = iota // 梅花
	Square                // 方块
	Hearts                // 红心
	Spades                // 黑桃
	QueenSuit             // 小王
	KingSuit              // 大王
)

// ErrUnknownSuit is returned when a suit name cannot be resolved
var ErrUnknownSuit = errors.New("unknown suit")

// Name returns the Chinese label of the suit
func (s Suit) Name() string {
	switch s {
	case Plum:
		return "梅花"
	case Square:
		return "方块"
	case Hearts:
		return "红心"
	case Spades:
		return "黑桃"
	case QueenSuit:
		return "小王"
	case KingSuit:
		return "大王"
	}
	return "?"
}

// EnglishName returns the English label of the suit
func (s Suit) EnglishName() string {
	switch s {
	case Plum:
		return "plum"
	case Square:
		return "square"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	case QueenSuit:
		return "queen"
	case KingSuit:
		return "king"
	}
	return "?"
}

func (s Suit) String() string {
	return s.Name()
}

// IsJoker reports whether the suit only ever holds a single joker card
func (s Suit) IsJoker() bool {
	return s == QueenSuit || s == KingSuit
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Square || s == Hearts || s == KingSuit
}

// StandardSuits returns the four regular suits in construction order
func StandardSuits() []Suit {
	return []Suit{Plum, Square, Hearts, Spades}
}

// AllSuits returns every suit, jokers last
func AllSuits() []Suit {
	return []Suit{Plum, Square, Hearts, Spades, QueenSuit, KingSuit}
}

// ParseSuit resolves a suit from its English or Chinese name.
// English names are matched case-insensitively; "clubs" and "diamonds" are
// accepted as aliases of plum and square.
func ParseSuit(name string) (Suit, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "clubs", "club":
		return Plum, nil
	case "diamonds", "diamond":
		return Square, nil
	}
	for _, s := range AllSuits() {
		if strings.EqualFold(name, s.EnglishName()) || name == s.Name() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSuit, name)
}
