package cli

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-patterns/pkg/di"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI, e.g.
// PATTERNS_STRATEGY_THRESHOLD.
const EnvPrefix = "PATTERNS"

const (
	keyLogLevel  = "log_level"
	keyDeckSize  = "deck_size"
	keyThreshold = "strategy.threshold"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := di.DefaultConfig()
	v.SetDefault(keyLogLevel, defaults.LogLevel)
	v.SetDefault(keyDeckSize, defaults.DeckSize)
	v.SetDefault(keyThreshold, defaults.Strategy.Threshold)
	return v
}

// loadConfig merges defaults, the optional config file, PATTERNS_* env vars
// and flags, in increasing order of precedence.
func loadConfig(v *viper.Viper, file string) (di.Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return di.Config{}, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}

	var cfg di.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return di.Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
