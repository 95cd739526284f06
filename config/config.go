package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/risksim/risk"
	"github.com/rustyeddy/risksim/sim"
)

// Config represents one complete simulation scenario
type Config struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// SimulationConfig contains the engine parameters plus the RNG seed
type SimulationConfig struct {
	StartBalance float64 `json:"start_balance" yaml:"start_balance"`
	RiskPercent  float64 `json:"risk_percent" yaml:"risk_percent"`
	RewardRisk   float64 `json:"reward_risk" yaml:"reward_risk"`
	Trades       int     `json:"trades" yaml:"trades"`
	WinRatePct   float64 `json:"win_rate_pct" yaml:"win_rate_pct"`
	Seed         int64   `json:"seed,omitempty" yaml:"seed,omitempty"` // 0 = time-based
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type           string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TrajectoryFile string `json:"trajectory_file,omitempty" yaml:"trajectory_file,omitempty"`
	OutcomesFile   string `json:"outcomes_file,omitempty" yaml:"outcomes_file,omitempty"`
	DBPath         string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Params returns the engine parameter set for this scenario.
func (c *Config) Params() sim.Params {
	return sim.Params{
		StartBalance: c.Simulation.StartBalance,
		RiskPct:      c.Simulation.RiskPercent,
		RewardRisk:   c.Simulation.RewardRisk,
		Trades:       c.Simulation.Trades,
		WinRatePct:   c.Simulation.WinRatePct,
	}
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. Simulation parameters
// go through the risk bounds; the first violation is reported.
func (c *Config) Validate() error {
	if d := risk.Evaluate(c.Params()); !d.Allowed {
		return fmt.Errorf("simulation: %s", d.Violations[0].Msg)
	}

	switch c.Journal.Type {
	case "", "none":
		// print-only run, nothing to check
	case "csv":
		if c.Journal.TrajectoryFile == "" || c.Journal.OutcomesFile == "" {
			return fmt.Errorf("journal trajectory_file and outcomes_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}

	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			StartBalance: 1000,
			RiskPercent:  2,
			RewardRisk:   2,
			Trades:       100,
			WinRatePct:   50,
		},
		Journal: JournalConfig{
			Type:           "csv",
			TrajectoryFile: "./trajectory.csv",
			OutcomesFile:   "./outcomes.csv",
		},
	}
}
