package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerhands/internal/deck"
)

// DefaultLogLevel is used when the file does not set log_level
const DefaultLogLevel = "info"

// Config describes the hands to evaluate in a showdown
type Config struct {
	LogLevel string       `hcl:"log_level,optional"`
	Hands    []HandConfig `hcl:"hand,block"`
}

// HandConfig is a labelled list of cards, e.g.
//
//	hand "straight-flush" {
//	  cards = "4d 5d 6d 7d 8d"
//	}
type HandConfig struct {
	Label string `hcl:"label,label"`
	Cards string `hcl:"cards"`
}

// Default returns the built-in sample showdown
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Hands: []HandConfig{
			{Label: "straight-flush", Cards: "4d 5d 6d 7d 8d"},
			{Label: "full-house", Cards: "7d 7d 7d 2d 2d"},
		},
	}
}

// Load reads an HCL config file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &cfg, nil
}

// Validate checks the log level, hand labels and card notation
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	if len(c.Hands) == 0 {
		return errors.New("at least one hand block is required")
	}

	labels := make(map[string]bool, len(c.Hands))
	for i, h := range c.Hands {
		if h.Label == "" {
			return fmt.Errorf("hand %d: empty label", i+1)
		}
		if labels[h.Label] {
			return fmt.Errorf("hand %q: duplicate label", h.Label)
		}
		labels[h.Label] = true

		if _, err := deck.ParseCards(h.Cards); err != nil {
			return fmt.Errorf("hand %q: %w", h.Label, err)
		}
	}
	return nil
}

// Cards returns the parsed cards of every hand, in file order
func (c *Config) Cards() ([][]deck.Card, error) {
	lists := make([][]deck.Card, len(c.Hands))
	for i, h := range c.Hands {
		cards, err := deck.ParseCards(h.Cards)
		if err != nil {
			return nil, fmt.Errorf("hand %q: %w", h.Label, err)
		}
		lists[i] = cards
	}
	return lists, nil
}

// Labels returns the hand labels, in file order
func (c *Config) Labels() []string {
	labels := make([]string, len(c.Hands))
	for i, h := range c.Hands {
		labels[i] = h.Label
	}
	return labels
}
