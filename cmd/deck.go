package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanqiangyes/board-game/internal/config"
	"github.com/tanqiangyes/board-game/internal/deck"
	"github.com/tanqiangyes/board-game/internal/logging"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Build and shuffle decks",
	Long:  `Commands for building, shuffling and listing playing-card decks.`,
}

// deckNewCmd represents the deck new command
var deckNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Print a freshly built deck",
	Long: `New builds the 52-card deck, or the 54-card deck with --jokers, and prints it
one card per line. Pass --shuffle to shuffle it first and --seed to make the
shuffle reproducible.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shuffle, _ := cmd.Flags().GetBool("shuffle")
		return runDeck(cmd, shuffle)
	},
}

// deckShuffleCmd represents the deck shuffle command
var deckShuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print a shuffled deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDeck(cmd, true)
	},
}

// deckSetLocaleCmd represents the deck set-locale command
var deckSetLocaleCmd = &cobra.Command{
	Use:       "set-locale [zh|en]",
	Short:     "Set the default locale for suit names",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{config.LocaleChinese, config.LocaleEnglish},
	RunE: func(cmd *cobra.Command, args []string) error {
		locale, err := config.SetLocale(args[0])
		if err != nil {
			return fmt.Errorf("error setting locale: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default locale set to: %s\n", locale)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file and fixture library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetFixtureLibraryPath()

		// Create the fixture library directory if it doesn't exist
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating fixture library: %w", err)
		}

		fmt.Fprintln(out, "Fixture library initialized at:", libraryPath)
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// buildDeck constructs the deck described by the command's flags
func buildDeck(cmd *cobra.Command, shuffle bool) *deck.Deck {
	jokers := cfg.Jokers
	if cmd.Flags().Changed("jokers") {
		jokers, _ = cmd.Flags().GetBool("jokers")
	}

	var opts []deck.Option
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		logging.Default.Debug("shuffling with seed %d", seed)
		opts = append(opts, deck.WithSource(deck.Seeded(seed)))
	}

	var d *deck.Deck
	if jokers {
		d = deck.WithJokers(opts...)
	} else {
		d = deck.Standard(opts...)
	}

	if shuffle {
		d.Shuffle()
	}
	return d
}

func runDeck(cmd *cobra.Command, shuffle bool) error {
	d := buildDeck(cmd, shuffle)
	logging.Default.Debug("built %d cards (shuffled: %t)", d.Len(), d.Shuffled())

	newPrinter(cmd.OutOrStdout(), cfg).printDeck(d)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{deckNewCmd, deckShuffleCmd} {
		c.Flags().BoolP("jokers", "j", false, "Include the small and big jokers (54 cards)")
		c.Flags().Uint64P("seed", "s", 0, "Seed the shuffle for a reproducible order")
	}
	deckNewCmd.Flags().Bool("shuffle", false, "Shuffle the deck before printing")

	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckNewCmd)
	deckCmd.AddCommand(deckShuffleCmd)
	deckCmd.AddCommand(deckSetLocaleCmd)
	deckCmd.AddCommand(deckInitCmd)
}
