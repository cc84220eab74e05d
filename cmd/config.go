package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration file.
type Config struct {
	LedgerFile string        `toml:"ledger_file"`
	Chart      ChartConfig   `toml:"chart"`
	Display    DisplayConfig `toml:"display"`
	Prompt     PromptConfig  `toml:"prompt"`
}

type ChartConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type DisplayConfig struct {
	Style string `toml:"style"` // glamour style name, or "auto"
}

type PromptConfig struct {
	AssumeYes bool `toml:"assume_yes"`
}

// DefaultConfig returns the configuration used when there is no file.
func DefaultConfig() Config {
	return Config{
		Chart:   ChartConfig{Width: 80, Height: 16},
		Display: DisplayConfig{Style: "auto"},
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig. An empty path
// or a missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no config file at %q, using defaults", path)
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("could not read config file %q: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("warning, unknown config key %q in %q", key.String(), path)
	}
	return cfg, nil
}
