package deck

import (
	"fmt"
	"iter"
	"strings"

	"github.com/tanqiangyes/board-game/internal/card"
	"github.com/tanqiangyes/board-game/internal/validator"
)

const (
	// StandardSize is the number of cards built by Standard
	StandardSize = 52
	// JokerSize is the number of cards built by WithJokers
	JokerSize = 54
)

// Deck represents an ordered pack of playing cards. A Deck is not safe for
// concurrent use; confine it to one goroutine or guard it with a mutex.
type Deck struct {
	cards    []card.Card
	rnd      Source
	shuffled bool
}

// Option configures a Deck at construction time
type Option func(*Deck)

// WithSource makes the deck shuffle with src instead of a fresh
// crypto-seeded source.
func WithSource(src Source) Option {
	return func(d *Deck) {
		d.rnd = src
	}
}

// Standard builds the 52-card deck: for A through K, one card of each of
// plum, square, hearts and spades in that order.
func Standard(opts ...Option) *Deck {
	d := newDeck(StandardSize, opts)
	d.appendStandard()
	return d
}

// WithJokers builds the 54-card deck: the small and big jokers first,
// followed by the same 52 cards as Standard.
func WithJokers(opts ...Option) *Deck {
	d := newDeck(JokerSize, opts)
	d.cards = append(d.cards,
		card.New(card.QueenSuit, card.QueenJoker),
		card.New(card.KingSuit, card.KingJoker),
	)
	d.appendStandard()
	return d
}

// New builds a deck in an explicit order. The cards must form a complete 52
// or 54 card deck; otherwise a *validator.CompositionError is returned.
func New(cards []card.Card, opts ...Option) (*Deck, error) {
	if err := validator.Check(cards); err != nil {
		return nil, err
	}
	d := newDeck(len(cards), opts)
	d.cards = append(d.cards, cards...)
	return d, nil
}

func newDeck(size int, opts []Option) *Deck {
	d := &Deck{cards: make([]card.Card, 0, size)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Deck) appendStandard() {
	for _, rank := range card.StandardRanks() {
		for _, suit := range card.StandardSuits() {
			d.cards = append(d.cards, card.New(suit, rank))
		}
	}
}

// Shuffle reorders the deck uniformly at random in place and returns it.
// A deck without a configured source gets a crypto-seeded one on first use.
func (d *Deck) Shuffle() *Deck {
	if d.rnd == nil {
		d.rnd = NewSource()
	}
	return d.ShuffleWith(d.rnd)
}

// ShuffleWith reorders the deck using src and returns it
func (d *Deck) ShuffleWith(src Source) *Deck {
	src.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.shuffled = true
	return d
}

// Shuffled reports whether the deck has been shuffled since it was built
func (d *Deck) Shuffled() bool {
	return d.shuffled
}

// Duplicate returns an independent copy of the deck. The copy does not share
// the random source of d; it draws its own when shuffled.
func (d *Deck) Duplicate() *Deck {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return &Deck{cards: cards, shuffled: d.shuffled}
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Card returns the card at position i; it panics if i is out of range
func (d *Deck) Card(i int) card.Card {
	return d.cards[i]
}

// Cards returns a copy of the cards in their current order
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// All iterates over the cards in their current order
func (d *Deck) All() iter.Seq2[int, card.Card] {
	return func(yield func(int, card.Card) bool) {
		for i, c := range d.cards {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Equal reports whether both decks hold the same cards in the same order.
// A nil other is never equal.
func (d *Deck) Equal(other *Deck) bool {
	if other == nil || len(d.cards) != len(other.cards) {
		return false
	}
	for i := range d.cards {
		if d.cards[i] != other.cards[i] {
			return false
		}
	}
	return true
}

// String lists the deck one card per line as "<suit>  <rank>\n"
func (d *Deck) String() string {
	return d.Format(card.Suit.Name)
}

// Format lists the deck like String, naming suits with suitName
func (d *Deck) Format(suitName func(card.Suit) string) string {
	var b strings.Builder
	for _, c := range d.cards {
		b.WriteString(suitName(c.Suit))
		b.WriteString("  ")
		b.WriteString(c.Rank.Name())
		b.WriteString("\n")
	}
	return b.String()
}

// GoString keeps %#v output short
func (d *Deck) GoString() string {
	return fmt.Sprintf("deck.Deck{len: %d, shuffled: %t}", len(d.cards), d.shuffled)
}
