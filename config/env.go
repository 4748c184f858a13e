package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix for environment variable overrides.
const envPrefix = "KICKER_"

// ApplyEnv overrides cfg fields from KICKER_* environment variables.
// Example: KICKER_SILENT=true, KICKER_NOTIFY_MIN_INTERVAL=5s.
func ApplyEnv(cfg *Config) error {
	k := koanf.New(".")

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("loading environment overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("applying environment overrides: %w", err)
	}

	return nil
}

// envTransform converts environment variable names to config keys.
// Example: KICKER_CLEAR_CONSOLE -> clear_console.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}
