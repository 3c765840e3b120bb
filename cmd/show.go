package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tanqiangyes/board-game/internal/card"
	"github.com/tanqiangyes/board-game/internal/logging"
)

var showCmd = &cobra.Command{
	Use:   "show [suit] [rank]",
	Short: "Display a single card",
	Long: `Show draws a card face and lists its names in both locales.
The suit is an English or Chinese suit name and the rank is its ordinal,
1 for an ace through 13 for a king, 14 and 15 for the small and big jokers.

Examples:
  board-game show hearts 1
  board-game show 黑桃 13
  board-game show king 15`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		suit, err := card.ParseSuit(args[0])
		if err != nil {
			return err
		}

		ordinal, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("rank must be a number: %q", args[1])
		}
		rank, err := card.RankFromOrdinal(ordinal)
		if err != nil {
			logging.Default.LogError(err)
			return err
		}

		c := card.New(suit, rank)
		if !c.Valid() {
			logging.Default.Warn("%s never appears in a well-formed deck", c.EnglishString())
		}

		p := newPrinter(cmd.OutOrStdout(), cfg)
		p.displayCard(c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// infoLines describes the card in both locales
func (p *printer) infoLines(c card.Card) []string {
	joker := "no"
	if c.IsJoker() {
		joker = "yes"
	}
	suitColor := p.suitColor(c.Suit)

	return []string{
		p.label("Card:  ") + suitColor.Sprint(c.String()),
		p.label("Name:  ") + c.EnglishString(),
		p.label("Suit:  ") + fmt.Sprintf("%s · %s", c.Suit.Name(), c.Suit.EnglishName()),
		p.label("Rank:  ") + fmt.Sprintf("%s (%d)", c.Rank.Name(), c.Rank.Ordinal()),
		p.label("Joker: ") + joker,
	}
}

// displayCard prints the face with the info to its right, or below it when
// the terminal is too narrow
func (p *printer) displayCard(c card.Card) {
	face := faceLines(c, p.locale)
	faceWidth := displayWidth(face[0])
	if p.color {
		face = paintFace(face, c)
	}
	info := p.infoLines(c)

	infoWidth := 0
	for _, line := range info {
		infoWidth = max(infoWidth, displayWidth(line))
	}

	spacing := 4
	if terminalWidth(p.out) < 2+faceWidth+spacing+infoWidth {
		for _, line := range face {
			fmt.Fprintln(p.out, "  "+line)
		}
		fmt.Fprintln(p.out)
		for _, line := range info {
			fmt.Fprintln(p.out, "  "+line)
		}
		return
	}

	for i := 0; i < max(len(face), len(info)); i++ {
		var b strings.Builder
		b.WriteString("  ")
		if i < len(face) {
			b.WriteString(face[i])
		} else {
			b.WriteString(strings.Repeat(" ", faceWidth))
		}
		if i < len(info) {
			b.WriteString(strings.Repeat(" ", spacing))
			b.WriteString(info[i])
		}
		fmt.Fprintln(p.out, b.String())
	}
}
