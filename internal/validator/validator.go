package validator

import (
	"fmt"
	"strings"

	"github.com/tanqiangyes/board-game/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Cards   []card.Card
	Results ValidationResults
}

func NewValidator(cards []card.Card) *Validator {
	return &Validator{
		Cards:   cards,
		Results: ValidationResults{},
	}
}

// Validate checks that the cards form a complete 52 or 54 card deck
func (v *Validator) Validate() ValidationResults {
	v.validateSize()
	v.validateCards()
	v.validateDuplicates()
	v.validateMissing()
	v.validateOrder()

	return v.Results
}

// CompositionError lists everything wrong with a card order
type CompositionError struct {
	Problems []string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("invalid deck composition: %s", strings.Join(e.Problems, "; "))
}

// Check validates cards and returns a *CompositionError when errors were found.
// Warnings are ignored.
func Check(cards []card.Card) error {
	results := NewValidator(cards).Validate()
	if results.Valid() {
		return nil
	}
	return &CompositionError{Problems: results.Errors}
}

func (v *Validator) hasJokers() bool {
	if len(v.Cards) == 54 {
		return true
	}
	for _, c := range v.Cards {
		if c.IsJoker() {
			return true
		}
	}
	return false
}

// expected returns the cards a deck of this kind is built from, in
// construction order
func (v *Validator) expected() []card.Card {
	cards := make([]card.Card, 0, 54)
	if v.hasJokers() {
		cards = append(cards,
			card.New(card.QueenSuit, card.QueenJoker),
			card.New(card.KingSuit, card.KingJoker),
		)
	}
	for _, rank := range card.StandardRanks() {
		for _, suit := range card.StandardSuits() {
			cards = append(cards, card.New(suit, rank))
		}
	}
	return cards
}

func (v *Validator) validateSize() {
	if n := len(v.Cards); n != 52 && n != 54 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck has %d cards (expecting 52 or 54)", n))
	}
}

// validateCards rejects cards whose suit and rank cannot go together
func (v *Validator) validateCards() {
	for i, c := range v.Cards {
		if !c.Valid() {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: %s cannot carry rank %d", i+1, c.Suit.EnglishName(), c.Rank.Ordinal()))
		}
	}
}

func (v *Validator) validateDuplicates() {
	seen := make(map[card.Card]int, len(v.Cards))
	for i, c := range v.Cards {
		if first, ok := seen[c]; ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: %s duplicates card %d", i+1, c.EnglishString(), first+1))
			continue
		}
		seen[c] = i
	}
}

func (v *Validator) validateMissing() {
	present := make(map[card.Card]bool, len(v.Cards))
	for _, c := range v.Cards {
		present[c] = true
	}

	missing := []string{}
	for _, c := range v.expected() {
		if !present[c] {
			missing = append(missing, c.EnglishString())
		}
	}

	if len(missing) > 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("missing %d cards: %s", len(missing), strings.Join(missing, ", ")))
	}
}

// validateOrder warns when the cards are still in construction order
func (v *Validator) validateOrder() {
	expected := v.expected()
	if len(expected) != len(v.Cards) {
		return
	}
	for i := range expected {
		if expected[i] != v.Cards[i] {
			return
		}
	}
	v.Results.Warnings = append(v.Results.Warnings, "cards are in construction order (never shuffled)")
}
