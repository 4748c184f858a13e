package config

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/victoralfred/gowritter/safepath"
)

// DefaultFileName is the configuration file kicker looks for in the
// watched directory.
const DefaultFileName = ".kicker.yml"

// Loader loads configuration from a YAML file.
type Loader struct {
	path     string
	safePath *safepath.SafePath
	config   *Config
	lastHash []byte
	lastLoad time.Time
	onChange []func(*Config)
}

// LoaderOption configures the loader.
type LoaderOption func(*Loader)

// WithOnChange adds a callback invoked when a reload observes changed
// file contents.
func WithOnChange(fn func(*Config)) LoaderOption {
	return func(l *Loader) {
		l.onChange = append(l.onChange, fn)
	}
}

// NewLoader creates a loader for the named file inside basePath.
func NewLoader(basePath, fileName string, opts ...LoaderOption) (*Loader, error) {
	sp, err := safepath.New(basePath)
	if err != nil {
		return nil, fmt.Errorf("creating safe path: %w", err)
	}

	l := &Loader{
		path:     fileName,
		safePath: sp,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// NewLoaderFromPath creates a loader from a full file path.
func NewLoaderFromPath(path string, opts ...LoaderOption) (*Loader, error) {
	return NewLoader(filepath.Dir(path), filepath.Base(path), opts...)
}

// Load reads and parses the configuration file. Unchanged file contents
// return the previously loaded configuration.
func (l *Loader) Load() (*Config, error) {
	data, err := l.safePath.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	hash := sha256.Sum256(data)
	if l.config != nil && string(hash[:]) == string(l.lastHash) {
		return l.config, nil
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), kyaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	l.config = cfg
	l.lastHash = hash[:]
	l.lastLoad = time.Now()

	for _, fn := range l.onChange {
		fn(cfg)
	}

	return cfg, nil
}

// Get returns the most recently loaded configuration without reloading,
// or nil if Load has not succeeded yet.
func (l *Loader) Get() *Config {
	return l.config
}

// LoadOrDefault loads the named file if it exists, otherwise returns
// defaults with environment overrides applied in both cases.
func LoadOrDefault(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loader, err := NewLoaderFromPath(path)
			if err != nil {
				return nil, err
			}
			cfg, err = loader.Load()
			if err != nil {
				return nil, err
			}
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
