package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tanqiangyes/board-game/internal/config"
	"github.com/tanqiangyes/board-game/internal/deck"
	"github.com/tanqiangyes/board-game/internal/logging"
	"github.com/tanqiangyes/board-game/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [fixture]",
	Short: "Validate a deck fixture",
	Long: `Validate checks that a fixture file lists a complete 52 or 54 card deck:
every card present exactly once and jokers only in the joker suits.
The fixture is looked up in the fixture library (XDG_DATA_HOME/board-game/fixtures)
first, then as a path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fixturePath, err := config.GetFixturePath(args[0])
		if err != nil {
			return err
		}

		f, err := deck.LoadFixture(fixturePath)
		if err != nil {
			logging.Default.LogError(err)
			return fmt.Errorf("error loading fixture: %w", err)
		}

		results := validator.NewValidator(f.Cards).Validate()

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ Fixture '%s' is a complete %d card deck.\n", fixturePath, len(f.Cards))
		} else {
			fmt.Fprintf(out, "❌ Fixture '%s' has %d validation errors:\n", fixturePath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if list, _ := cmd.Flags().GetBool("list"); list {
			d, err := f.Deck()
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			newPrinter(out, cfg).printDeck(d)
		}

		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("list", false, "Print the fixture's cards after validating")
}
