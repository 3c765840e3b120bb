package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tanqiangyes/board-game/internal/config"
	"github.com/tanqiangyes/board-game/internal/logging"
)

// cfg is loaded before any subcommand runs
var cfg *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "board-game",
	Short: "Tool for building and shuffling playing-card decks",
	Long: `board-game builds the 52-card deck and the 54-card deck with both jokers,
shuffles them, and prints the resulting order in Chinese or English.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		if localeFlag, _ := cmd.Flags().GetString("locale"); localeFlag != "" {
			locale, err := config.ParseLocale(localeFlag)
			if err != nil {
				return err
			}
			cfg.Locale = locale
		}

		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logging.Default.SetLevel(level)
		logging.Default.Debug("config loaded from %s", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringP("locale", "l", "", "Suit names to print: zh or en (defaults to the config)")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
