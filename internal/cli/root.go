// Package cli provides the command-line interface for the pattern examples.
package cli

import (
	"fmt"

	"github.com/goliatone/go-patterns/internal/logging"
	"github.com/goliatone/go-patterns/pkg/di"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared between the root command and its subcommands.
type app struct {
	v         *viper.Viper
	container *di.Container
}

// NewRootCmd creates the root command. Each call gets its own viper
// instance, so commands can be built and run repeatedly in tests.
func NewRootCmd(version string) *cobra.Command {
	a := &app{v: newViper()}
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "patterns",
		Short:         "Run the design pattern examples",
		Long:          `Small runnable examples of flyweight, strategy, observer, abstract factory, factory method, prototype and singleton.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.v, configFile)
			if err != nil {
				return err
			}

			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			container, err := di.NewContainer(cfg, logger)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			a.container = container
			logger.Debug("configuration loaded",
				"log_level", cfg.LogLevel,
				"deck_size", cfg.DeckSize,
				"threshold", cfg.Strategy.Threshold,
			)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Int("threshold", 0, "Largest input the auto strategy sorts by insertion")
	flags.Int("deck-size", 0, "Default deck size, 36 or 52")

	// Errors only come from unknown flag names.
	_ = a.v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(keyThreshold, flags.Lookup("threshold"))
	_ = a.v.BindPFlag(keyDeckSize, flags.Lookup("deck-size"))

	rootCmd.AddCommand(
		newSortCmd(a),
		newFlyweightCmd(a),
		newDeckCmd(a),
		newWeatherCmd(a),
		newBookCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "patterns %s\n", version)
			},
		},
	)

	return rootCmd
}
