package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "connectfour",
		Short: "Two-player Connect Four in the terminal",
		Long: `connectfour is a two-player Connect Four game.

Players take turns dropping tokens into a 7 column by 6 row grid. The first
player to line up four tokens horizontally, vertically or diagonally wins.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app = factory.New(factory.Config{Logger: logger})
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerOne, "player-one", cfg.PlayerOne, "First player's name (env: C4_PLAYER_ONE)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerTwo, "player-two", cfg.PlayerTwo, "Second player's name (env: C4_PLAYER_TWO)")
	rootCmd.PersistentFlags().StringVar(&cfg.DisplayToken, "display-token", cfg.DisplayToken, "Character drawn for tokens (env: C4_DISPLAY_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colour output (env: C4_NO_COLOR)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: C4_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newReplayCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
