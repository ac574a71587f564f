package cmd

import (
	"log/slog"
	"os"

	"github.com/MeKo-Tech/figmatokens/internal/tokens"
	"github.com/spf13/viper"
)

var logger *slog.Logger

// initLogging installs a text logger on stderr. --verbose lowers the level to debug.
func initLogging() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadTokens returns the token table named by --tokens, or the embedded one.
func loadTokens() (*tokens.Set, error) {
	if logger == nil {
		initLogging()
	}

	path := viper.GetString("tokens")
	if path == "" {
		logger.Debug("Using embedded design tokens")
		return tokens.Default()
	}

	logger.Debug("Loading design tokens", "path", path)
	return tokens.LoadFile(path)
}
