// Package config provides configuration management for kicker.
package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Config carries the process-wide execution flags. It is passed explicitly
// to the components that consult it; there is no package-level state.
//
// Config is owned by the surrounding application and read from a single
// execution thread. It is not safe for concurrent mutation.
type Config struct {
	// Silent suppresses live console echo and before-notifications.
	// Full output is still dumped after a failure.
	Silent bool `koanf:"silent" yaml:"silent"`

	// Quiet suppresses timestamp prefixes in log lines.
	Quiet bool `koanf:"quiet" yaml:"quiet"`

	// ClearConsole enables clearing the console before a job when the
	// should-clear toggle is set.
	ClearConsole bool `koanf:"clear_console" yaml:"clear_console"`

	// NotifyEnabled turns on desktop notification delivery.
	NotifyEnabled bool `koanf:"notify_enabled" yaml:"notify_enabled"`

	// NotifyMinInterval is the minimum interval between delivered
	// notifications. Zero disables throttling.
	NotifyMinInterval time.Duration `koanf:"notify_min_interval" yaml:"notify_min_interval" validate:"min=0"`

	// shouldClear is the mutable clear-screen toggle. It is armed by the
	// surrounding application on each trigger and consumed by the first
	// console clear of a run, so repeated jobs in one run don't re-clear.
	shouldClear bool
}

// Default returns the default configuration. The clear-screen toggle
// starts armed so the first job of a run clears the console when
// ClearConsole is on.
func Default() *Config {
	return &Config{
		Silent:            false,
		Quiet:             false,
		ClearConsole:      false,
		NotifyEnabled:     false,
		NotifyMinInterval: 2 * time.Second,
		shouldClear:       true,
	}
}

// MarkClearScreen arms the clear-screen toggle. The surrounding watcher
// calls this on each trigger event.
func (c *Config) MarkClearScreen() {
	c.shouldClear = true
}

// ConsumeClearScreen reports whether the clear-screen toggle is armed and
// disarms it. At most one caller observes true per arming.
func (c *Config) ConsumeClearScreen() bool {
	armed := c.shouldClear
	c.shouldClear = false
	return armed
}

// Validate validates the configuration and clamps out-of-range values.
func (c *Config) Validate() error {
	if c.NotifyMinInterval < 0 {
		c.NotifyMinInterval = 0
	}

	validate := validator.New()
	return validate.Struct(c)
}
