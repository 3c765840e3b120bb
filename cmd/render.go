package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/tanqiangyes/board-game/internal/card"
	"github.com/tanqiangyes/board-game/internal/config"
	"github.com/tanqiangyes/board-game/internal/deck"
)

// Card face palette
var (
	paperColor = mustHex("#fdf6e3")
	redInk     = mustHex("#c0392b")
	blackInk   = mustHex("#1c1c1c")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// printer writes decks and cards in the configured locale, with colour
// only when writing to a terminal
type printer struct {
	out    io.Writer
	locale string
	color  bool
}

func newPrinter(out io.Writer, cfg *config.Config) *printer {
	return &printer{
		out:    out,
		locale: cfg.Locale,
		color:  cfg.Color && isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or 80 when it is not a terminal
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

func (p *printer) suitColor(s card.Suit) *colorize.Color {
	c := colorize.New(colorize.FgHiWhite)
	if s.IsRed() {
		c = colorize.New(colorize.FgRed)
	}
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (p *printer) label(s string) string {
	c := colorize.New(colorize.FgCyan)
	if !p.color {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.Sprint(s)
}

// printDeck lists the deck one card per line, the same layout as Deck.String
func (p *printer) printDeck(d *deck.Deck) {
	suitName := config.SuitName(p.locale)
	if !p.color {
		fmt.Fprint(p.out, d.Format(suitName))
		return
	}
	for _, c := range d.All() {
		fmt.Fprintf(p.out, "%s  %s\n", p.suitColor(c.Suit).Sprint(suitName(c.Suit)), c.Rank.Name())
	}
}

const faceInner = 9

// faceLines draws the card face as plain text, frame included
func faceLines(c card.Card, locale string) []string {
	rank := c.Rank.Name()
	suit := config.SuitName(locale)(c.Suit)
	blank := strings.Repeat(" ", faceInner)

	lines := []string{
		"╭" + strings.Repeat("─", faceInner) + "╮",
		"│" + padRight(rank, faceInner) + "│",
		"│" + blank + "│",
		"│" + center(suit, faceInner) + "│",
		"│" + blank + "│",
		"│" + padLeft(rank, faceInner) + "│",
		"╰" + strings.Repeat("─", faceInner) + "╯",
	}
	return lines
}

// paintFace colours the face lines: ink on paper inside, a shaded frame
func paintFace(lines []string, c card.Card) []string {
	ink := blackInk
	if c.Suit.IsRed() {
		ink = redInk
	}
	frame := paperColor.BlendLab(ink, 0.35)

	painted := make([]string, len(lines))
	for i, line := range lines {
		runes := []rune(line)
		first, middle, last := string(runes[0]), string(runes[1:len(runes)-1]), string(runes[len(runes)-1])
		if i == 0 || i == len(lines)-1 {
			painted[i] = ansiColorString(line, frame, paperColor)
			continue
		}
		painted[i] = ansiColorString(first, frame, paperColor) +
			ansiColorString(middle, ink, paperColor) +
			ansiColorString(last, frame, paperColor)
	}
	return painted
}

// ansiColorString wraps s in 24-bit foreground and background escapes
func ansiColorString(s string, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s\x1b[0m",
		r1, g1, b1, r2, g2, b2, s)
}

// displayWidth counts terminal columns, two for each Han character
func displayWidth(s string) int {
	width := 0
	for _, r := range stripAnsi(s) {
		if unicode.Is(unicode.Han, r) {
			width += 2
		} else {
			width++
		}
	}
	return width
}

func padRight(s string, width int) string {
	if n := width - displayWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := width - displayWidth(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func center(s string, width int) string {
	n := width - displayWidth(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n/2) + s + strings.Repeat(" ", n-n/2)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
