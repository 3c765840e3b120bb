package card

import (
	"errors"
	"fmt"
)

// Rank represents the value of a card. The numeric value of a Rank is its
// ordinal, so ranks compare with the usual operators.
type Rank int

const (
	Ace        Rank = iota + 1 // A
	Two                        // 2
	Three                      // 3
	Four                       // 4
	Five                       // 5
	Six                        // 6
	Seven                      // 7
	Eight                      // 8
	Nine                       // 9
	Ten                        // 10
	Jack                       // J
	Queen                      // Q
	King                       // K
	QueenJoker                 // 小王
	KingJoker                  // 大王
)

const (
	minOrdinal = int(Ace)
	maxOrdinal = int(KingJoker)
)

// ErrInvalidRank is matched by every error returned from RankFromOrdinal
var ErrInvalidRank = errors.New("invalid rank value")

// InvalidRankError carries the ordinal that could not be converted
type InvalidRankError struct {
	Value int
}

func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("%v %d: must be between %d and %d", ErrInvalidRank, e.Value, minOrdinal, maxOrdinal)
}

// Is lets errors.Is match ErrInvalidRank
func (e *InvalidRankError) Is(target error) bool {
	return target == ErrInvalidRank
}

// RankFromOrdinal converts an ordinal in [1,15] to a Rank
func RankFromOrdinal(n int) (Rank, error) {
	if n < minOrdinal || n > maxOrdinal {
		return 0, &InvalidRankError{Value: n}
	}
	return Rank(n), nil
}

// Name returns the short display label of the rank
func (r Rank) Name() string {
	switch r {
	case Ace:
		return "A"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case QueenJoker:
		return "Queen"
	case KingJoker:
		return "King"
	}
	return "?"
}

func (r Rank) String() string {
	return r.Name()
}

// Ordinal returns the numeric rank, 1 for an ace up to 15 for the big joker
func (r Rank) Ordinal() int {
	return int(r)
}

// IsJoker reports whether the rank belongs to one of the joker cards
func (r Rank) IsJoker() bool {
	return r == QueenJoker || r == KingJoker
}

// Compare returns -1, 0 or 1 as r is lower than, equal to or higher than other
func (r Rank) Compare(other Rank) int {
	switch {
	case r < other:
		return -1
	case r > other:
		return 1
	}
	return 0
}

// StandardRanks returns A through K in ascending order
func StandardRanks() []Rank {
	ranks := make([]Rank, 0, int(King))
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}
