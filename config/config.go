package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/promptfit/tokens"
)

// Sentinel errors for configuration loading.
var (
	// ErrNotFound is returned when the configuration file does not exist.
	ErrNotFound = errors.New("config file not found")

	// ErrUnsupported is returned for file extensions other than
	// .yaml/.yml/.toml.
	ErrUnsupported = errors.New("unsupported config format")

	// ErrParse is returned when a configuration file fails to parse.
	ErrParse = errors.New("config parse error")
)

// Allocation splits a context window into percentage shares. The shares
// are relative weights; they do not need to sum to 100.
type Allocation struct {
	System   int `yaml:"system" toml:"system" json:"system"`
	Record   int `yaml:"record" toml:"record" json:"record"`
	User     int `yaml:"user" toml:"user" json:"user"`
	Reserved int `yaml:"reserved" toml:"reserved" json:"reserved"`
}

// Config holds the settings that drive record fitting.
type Config struct {
	// Model names the tokenizer profile. Provider prefixes are allowed
	// ("azure/gpt-4o").
	Model string `yaml:"model" toml:"model" json:"model"`

	// MaxTokens is the record token budget. Zero derives the budget from
	// the model's context window and the allocation.
	MaxTokens int `yaml:"max_tokens" toml:"max_tokens" json:"max_tokens,omitempty"`

	// PriorityGroups lists field names in descending priority buckets.
	PriorityGroups [][]string `yaml:"priority_groups" toml:"priority_groups" json:"priority_groups"`

	// Marker overrides the elision marker. Empty keeps the default.
	Marker string `yaml:"marker" toml:"marker" json:"marker,omitempty"`

	// Allocation controls how a context window is split when MaxTokens
	// is zero.
	Allocation Allocation `yaml:"allocation" toml:"allocation" json:"allocation"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Model: "gpt-4o",
		Allocation: Allocation{
			System:   tokens.DefaultSystemPercent,
			Record:   tokens.DefaultRecordPercent,
			User:     tokens.DefaultUserPercent,
			Reserved: tokens.DefaultReservedPercent,
		},
	}
}

// Load reads a configuration file, dispatching on the file extension.
// Fields not present in the file keep their Default() values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	return cfg, nil
}

// Budget returns the record token budget: MaxTokens when set, otherwise the
// record share of the model's context window under the allocation.
func (c *Config) Budget() int {
	if c.MaxTokens > 0 {
		return c.MaxTokens
	}
	b := tokens.NewBudgetWithAllocation(
		tokens.ContextWindow(c.Model),
		c.Allocation.System,
		c.Allocation.Record,
		c.Allocation.User,
		c.Allocation.Reserved,
	)
	return b.Record
}
