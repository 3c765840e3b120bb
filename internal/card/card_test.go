package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestSuitNames() {
	testCases := []struct {
		suit    Suit
		name    string
		english string
	}{
		{Plum, "梅花", "plum"},
		{Square, "方块", "square"},
		{Hearts, "红心", "hearts"},
		{Spades, "黑桃", "spades"},
		{QueenSuit, "小王", "queen"},
		{KingSuit, "大王", "king"},
	}

	for _, tc := range testCases {
		s.Run(tc.english, func() {
			s.Equal(tc.name, tc.suit.Name())
			s.Equal(tc.name, tc.suit.String())
			s.Equal(tc.english, tc.suit.EnglishName())
		})
	}

	s.Equal("?", Suit(42).Name())
	s.Equal("?", Suit(-1).EnglishName())
}

func (s *CardTestSuite) TestParseSuit() {
	testCases := []struct {
		input    string
		expected Suit
	}{
		{"plum", Plum},
		{"Clubs", Plum},
		{"diamonds", Square},
		{"  HEARTS ", Hearts},
		{"黑桃", Spades},
		{"小王", QueenSuit},
		{"king", KingSuit},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			suit, err := ParseSuit(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, suit)
		})
	}

	_, err := ParseSuit("cups")
	s.ErrorIs(err, ErrUnknownSuit)
}

func (s *CardTestSuite) TestRankRoundTrip() {
	for n := 1; n <= 15; n++ {
		r, err := RankFromOrdinal(n)
		s.Require().NoError(err, "ordinal %d should convert", n)
		s.Equal(n, r.Ordinal())
	}
}

func (s *CardTestSuite) TestRankFromOrdinalOutOfRange() {
	for _, n := range []int{-100, -1, 0, 16, 17, 255, 1 << 20} {
		r, err := RankFromOrdinal(n)
		s.Error(err, "ordinal %d should be rejected", n)
		s.Zero(r)
		s.True(errors.Is(err, ErrInvalidRank))

		var rankErr *InvalidRankError
		s.Require().True(errors.As(err, &rankErr))
		s.Equal(n, rankErr.Value)
	}
}

func (s *CardTestSuite) TestRankOrdering() {
	ranks := []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, QueenJoker, KingJoker}
	for i, a := range ranks {
		for j, b := range ranks {
			s.Equal(a < b, a.Ordinal() < b.Ordinal())
			switch {
			case i < j:
				s.Equal(-1, a.Compare(b))
			case i > j:
				s.Equal(1, a.Compare(b))
			default:
				s.Equal(0, a.Compare(b))
			}
		}
	}
	s.True(King < QueenJoker)
	s.True(QueenJoker < KingJoker)
}

func (s *CardTestSuite) TestRankNames() {
	expected := []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "Queen", "King"}
	for i, name := range expected {
		r, err := RankFromOrdinal(i + 1)
		s.Require().NoError(err)
		s.Equal(name, r.Name())
		s.Equal(name, r.String())
	}
	s.Equal("?", Rank(0).Name())
}

func (s *CardTestSuite) TestStandardRanks() {
	ranks := StandardRanks()
	s.Len(ranks, 13)
	s.Equal(Ace, ranks[0])
	s.Equal(King, ranks[12])
	for _, r := range ranks {
		s.False(r.IsJoker())
	}
}

func (s *CardTestSuite) TestCardString() {
	testCases := []struct {
		name     string
		card     Card
		expected string
		english  string
	}{
		{"ace of hearts", New(Hearts, Ace), "红心 A", "hearts A"},
		{"ten of square", New(Square, Ten), "方块 10", "square 10"},
		{"king of plum", New(Plum, King), "梅花 K", "plum K"},
		{"small joker", New(QueenSuit, QueenJoker), "小王 Queen", "queen Queen"},
		{"big joker", New(KingSuit, KingJoker), "大王 King", "king King"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.String())
			s.Equal(tc.english, tc.card.EnglishString())
		})
	}
}

func (s *CardTestSuite) TestDefault() {
	d := Default()
	s.Equal(Hearts, d.Suit)
	s.Equal(Two, d.Rank)
	s.Equal("红心 2", d.String())
}

func (s *CardTestSuite) TestEquality() {
	s.Equal(New(Spades, Jack), New(Spades, Jack))
	s.NotEqual(New(Spades, Jack), New(Hearts, Jack))
	s.NotEqual(New(Spades, Jack), New(Spades, Queen))

	seen := map[Card]int{}
	seen[New(Plum, Ace)]++
	seen[New(Plum, Ace)]++
	s.Equal(2, seen[Card{Suit: Plum, Rank: Ace}])
}

func (s *CardTestSuite) TestJoker() {
	q, err := Joker(QueenSuit)
	s.Require().NoError(err)
	s.Equal(New(QueenSuit, QueenJoker), q)

	k, err := Joker(KingSuit)
	s.Require().NoError(err)
	s.Equal(New(KingSuit, KingJoker), k)

	for _, suit := range StandardSuits() {
		_, err := Joker(suit)
		s.ErrorIs(err, ErrNotJokerSuit)
	}
}

func (s *CardTestSuite) TestValid() {
	s.True(New(Hearts, Ace).Valid())
	s.True(New(Spades, King).Valid())
	s.True(New(QueenSuit, QueenJoker).Valid())
	s.True(New(KingSuit, KingJoker).Valid())

	s.False(New(Hearts, QueenJoker).Valid())
	s.False(New(Plum, KingJoker).Valid())
	s.False(New(QueenSuit, KingJoker).Valid())
	s.False(New(KingSuit, Ace).Valid())
	s.False(New(Hearts, Rank(0)).Valid())
	s.False(New(Suit(9), Ace).Valid())
}

func (s *CardTestSuite) TestCompare() {
	s.Equal(-1, New(Spades, Two).Compare(New(Plum, Three)))
	s.Equal(1, New(Plum, KingJoker).Compare(New(Plum, QueenJoker)))
	s.Equal(-1, New(Plum, Ace).Compare(New(Square, Ace)))
	s.Equal(0, New(Hearts, Nine).Compare(New(Hearts, Nine)))
}
