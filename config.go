package chopsticks

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tkahng/chopsticks/sticks"
)

const (
	DefaultMaxPlies    = 200
	DefaultConcurrency = 4
)

// Config is the complete HCL configuration:
//
//	rules {
//	  hands           = 2
//	  modulus         = 5
//	  starting_player = "A"
//	}
//
//	match {
//	  max_plies   = 200
//	  concurrency = 4
//	}
//
// Both blocks and every attribute are optional.
type Config struct {
	Rules *RulesConfig `hcl:"rules,block"`
	Match *MatchConfig `hcl:"match,block"`
}

// RulesConfig describes the board a game starts from.
type RulesConfig struct {
	Hands          int    `hcl:"hands,optional"`
	Modulus        int    `hcl:"modulus,optional"`
	StartingPlayer string `hcl:"starting_player,optional"`
}

// MatchConfig controls how the runner plays games.
type MatchConfig struct {
	MaxPlies    int `hcl:"max_plies,optional"`
	Concurrency int `hcl:"concurrency,optional"`
}

// DefaultConfig returns standard play with the default match settings
func DefaultConfig() *Config {
	return &Config{
		Rules: &RulesConfig{
			Hands:          sticks.DefaultHands,
			Modulus:        sticks.DefaultModulus,
			StartingPlayer: sticks.A.String(),
		},
		Match: &MatchConfig{
			MaxPlies:    DefaultMaxPlies,
			Concurrency: DefaultConcurrency,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(src, filename)
}

// ParseConfig decodes HCL source, fills in defaults and validates the result.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// applyDefaults fills zero values, so an explicit 0 also means "default".
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Rules == nil {
		c.Rules = defaults.Rules
	}
	if c.Match == nil {
		c.Match = defaults.Match
	}

	if c.Rules.Hands == 0 {
		c.Rules.Hands = defaults.Rules.Hands
	}
	if c.Rules.Modulus == 0 {
		c.Rules.Modulus = defaults.Rules.Modulus
	}
	if c.Rules.StartingPlayer == "" {
		c.Rules.StartingPlayer = defaults.Rules.StartingPlayer
	}
	if c.Match.MaxPlies == 0 {
		c.Match.MaxPlies = defaults.Match.MaxPlies
	}
	if c.Match.Concurrency == 0 {
		c.Match.Concurrency = defaults.Match.Concurrency
	}
}

func (c *Config) Validate() error {
	if _, err := c.GameRules(); err != nil {
		return err
	}
	if c.Match.MaxPlies < 0 {
		return fmt.Errorf("%w: max_plies must not be negative, got %d", sticks.ErrInvalidConfiguration, c.Match.MaxPlies)
	}
	if c.Match.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative, got %d", sticks.ErrInvalidConfiguration, c.Match.Concurrency)
	}
	return nil
}

// GameRules converts the rules block into an engine configuration.
func (c *Config) GameRules() (sticks.Config, error) {
	start, err := sticks.ParsePlayer(c.Rules.StartingPlayer)
	if err != nil {
		return sticks.Config{}, err
	}
	rules := sticks.Config{
		NumHands: c.Rules.Hands,
		Modulus:  c.Rules.Modulus,
		Start:    start,
	}
	return rules, rules.Validate()
}
