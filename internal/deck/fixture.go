package deck

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/tanqiangyes/board-game/internal/card"
)

// Fixture is a fixed card order read from a TOML file, used to reproduce a
// particular deal in the host application.
type Fixture struct {
	Name        string
	Description string
	Path        string
	Cards       []card.Card
}

// FixtureConfig is the on-disk layout of a fixture file
type FixtureConfig struct {
	Name        string        `toml:"name"`
	Description string        `toml:"description"`
	Cards       []FixtureCard `toml:"cards"`
}

// FixtureCard is one [[cards]] entry; Rank is the ordinal 1..15
type FixtureCard struct {
	Suit string `toml:"suit"`
	Rank int    `toml:"rank"`
}

// LoadFixture reads a fixture file. Suit names and rank ordinals are
// resolved, but the composition of the deck is not checked; use Deck or the
// validator for that.
func LoadFixture(path string) (*Fixture, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("fixture not found: %s", path)
	}

	var config FixtureConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing fixture: %w", err)
	}

	return parseFixture(path, config)
}

// DecodeFixture parses fixture TOML held in memory
func DecodeFixture(data string) (*Fixture, error) {
	var config FixtureConfig
	if _, err := toml.Decode(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing fixture: %w", err)
	}
	return parseFixture("", config)
}

func parseFixture(path string, config FixtureConfig) (*Fixture, error) {
	f := &Fixture{
		Name:        config.Name,
		Description: config.Description,
		Path:        path,
		Cards:       make([]card.Card, 0, len(config.Cards)),
	}

	for i, entry := range config.Cards {
		suit, err := card.ParseSuit(entry.Suit)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		rank, err := card.RankFromOrdinal(entry.Rank)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		f.Cards = append(f.Cards, card.New(suit, rank))
	}

	return f, nil
}

// Deck builds a deck in the fixture's order
func (f *Fixture) Deck(opts ...Option) (*Deck, error) {
	return New(f.Cards, opts...)
}
