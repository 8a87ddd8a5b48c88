package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-patterns/deck"
	"github.com/goliatone/go-patterns/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSortCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"auto small", []string{"sort", "5", "3", "1", "4"}, "insertion: [1 3 4 5]\n"},
		{"library", []string{"sort", "-s", "library", "5", "3", "1", "4"}, "library: [1 3 4 5]\n"},
		{"alias", []string{"sort", "-s", "short", "2", "1"}, "insertion: [1 2]\n"},
		{"reverse", []string{"sort", "--op", "reverse_sort", "5", "3", "1", "4"}, "insertion: [5 4 3 1]\n"},
		{"evens", []string{"sort", "--op", "evens", "5", "3", "1", "4"}, "insertion: [5 1]\n"},
		{"odds", []string{"sort", "--op", "odds", "5", "3", "1", "4"}, "insertion: [3 4]\n"},
		{"threshold flag", []string{"--threshold", "2", "sort", "3", "2", "1"}, "library: [1 2 3]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSortCommandErrors(t *testing.T) {
	_, _, err := run(t, "sort", "-s", "bogo", "1")
	assert.ErrorIs(t, err, strategy.ErrUnknownStrategy)

	_, _, err = run(t, "sort", "--op", "shuffle", "1")
	assert.ErrorIs(t, err, strategy.ErrUnsupportedOperation)

	_, _, err = run(t, "sort", "1", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)

	_, _, err = run(t, "--threshold", "-1", "sort", "1")
	assert.ErrorIs(t, err, strategy.ErrInvalidConfig)
}

func TestThresholdFromEnv(t *testing.T) {
	t.Setenv("PATTERNS_STRATEGY_THRESHOLD", "2")

	out, _, err := run(t, "sort", "3", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "library: [1 2 3]\n", out)

	// flags win over the environment
	out, _, err = run(t, "--threshold", "10", "sort", "3", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "insertion: [1 2 3]\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	content := "deck_size: 36\nstrategy:\n  threshold: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, _, err := run(t, "--config", path, "sort", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "library: [1 2]\n", out)

	out, _, err = run(t, "--config", path, "deck")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "36 cards: 6 of spades"), out)
}

func TestConfigFileMissing(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "version")
	require.Error(t, err)
}

func TestFlyweightCommand(t *testing.T) {
	out, _, err := run(t, "flyweight", "Ace", "spades", "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, "Ace of spades: 4 of 4 requests shared one instance (constructions=1 hits=3)\n", out)

	_, _, err = run(t, "flyweight", "Ace", "stars")
	assert.ErrorIs(t, err, deck.ErrUnknownSuit)
}

func TestDeckCommand(t *testing.T) {
	out, _, err := run(t, "deck")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "52 cards: 2 of spades, 3 of spades"), out)

	out, _, err = run(t, "--deck-size", "36", "deck", "--suit", "hearts")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "9 cards: 6 of hearts"), out)

	_, _, err = run(t, "deck", "--size", "40")
	assert.ErrorIs(t, err, deck.ErrUnknownDeck)

	_, _, err = run(t, "deck", "--suit", "shamrocks")
	assert.ErrorIs(t, err, deck.ErrUnknownSuit)
}

func TestDeckSubcommands(t *testing.T) {
	out, _, err := run(t, "deck", "aces")
	require.NoError(t, err)
	assert.Equal(t, "4 cards: Ace of spades, Ace of hearts, Ace of diamonds, Ace of clubs\n", out)

	out, _, err = run(t, "deck", "pair", "Queen", "spades")
	require.NoError(t, err)
	assert.Equal(t, "2 cards: Queen of spades, Queen of hearts\n", out)
}

func TestWeatherCommand(t *testing.T) {
	out, _, err := run(t, "weather", "-c", "2", "20.5", "18")
	require.NoError(t, err)
	assert.Equal(t, "client 1: 20.5\nclient 2: 20.5\nclient 1: 18\nclient 2: 18\n", out)

	_, _, err = run(t, "weather", "warm")
	require.Error(t, err)
}

func TestBookCommand(t *testing.T) {
	out, _, err := run(t, "book", "--name", "Through the Looking-Glass", "--price", "12.5")
	require.NoError(t, err)
	assert.Equal(t,
		"prototype: <Lewis Carroll> \"Alice in Wonderland\", 100$\n"+
			"clone:     <Lewis Carroll> \"Through the Looking-Glass\", 12.5$\n",
		out)
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := run(t, "--log-level", "debug", "sort", "2", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "configuration loaded")
	assert.Contains(t, errOut, "strategy selected")

	_, errOut, err = run(t, "sort", "2", "1")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "patterns test\n", out)
}

func TestCountFlagsMustBePositive(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
	}{
		{"negative clients", []string{"weather", "-c", "-1", "20"}, "--clients"},
		{"zero clients", []string{"weather", "-c", "0", "20"}, "--clients"},
		{"zero repeat", []string{"flyweight", "Ace", "spades", "-n", "0"}, "--repeat"},
		{"negative repeat", []string{"flyweight", "Ace", "spades", "-n", "-3"}, "--repeat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.flag)
			assert.Empty(t, out)
		})
	}
}
