package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/skillprompt/internal/compose"
)

// Config holds process-level settings for the CLI and tool server.
type Config struct {
	DBPath             string
	LogLevel           slog.Level
	LogUseCases        bool
	StatsTTL           time.Duration
	ComposeKeywordsMax int
	RulesFile          string // empty means the embedded tables
}

// DefaultConfig returns the settings used when no environment overrides are set.
// DBPath falls back to a relative file when the home directory is unknown.
func DefaultConfig() Config {
	dbPath := filepath.Join(".skillprompt", "elements.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".skillprompt", "elements.db")
	}
	return Config{
		DBPath:             dbPath,
		LogLevel:           slog.LevelWarn,
		LogUseCases:        false,
		StatsTTL:           300 * time.Second,
		ComposeKeywordsMax: compose.DefaultKeywordsLimit,
	}
}

// Load reads configuration from environment variables,
// falling back to defaults for any unset or unparsable values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SKILLPROMPT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SKILLPROMPT_LOG_LEVEL"); v != "" {
		if lvl, ok := parseLevel(v); ok {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("SKILLPROMPT_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SKILLPROMPT_STATS_TTL_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.StatsTTL = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("SKILLPROMPT_COMPOSE_KEYWORDS_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ComposeKeywordsMax = n
		}
	}
	if v := os.Getenv("SKILLPROMPT_RULES_FILE"); v != "" {
		cfg.RulesFile = v
	}

	return cfg
}

func parseLevel(s string) (slog.Level, bool) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, false
	}
	return lvl, true
}
