package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestValidateJournal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"none type", func(c *Config) { c.Journal = JournalConfig{Type: "none"} }, ""},
		{"empty type", func(c *Config) { c.Journal = JournalConfig{} }, ""},
		{"csv missing files", func(c *Config) { c.Journal = JournalConfig{Type: "csv"} }, "trajectory_file"},
		{"sqlite missing path", func(c *Config) { c.Journal = JournalConfig{Type: "sqlite"} }, "db_path"},
		{"unknown type", func(c *Config) { c.Journal.Type = "redis" }, "journal.type"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateRejectsOutOfBoundsParams(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Simulation.RiskPercent = 99

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "risk per trade")
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	body := `
simulation:
  start_balance: 500
  risk_percent: 5
  reward_risk: 3
  trades: 50
  win_rate_pct: 40
  seed: 7
journal:
  type: sqlite
  db_path: ./runs.db
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.InDelta(t, 500.0, cfg.Simulation.StartBalance, 1e-9)
	assert.InDelta(t, 5.0, cfg.Simulation.RiskPercent, 1e-9)
	assert.Equal(t, 50, cfg.Simulation.Trades)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, "sqlite", cfg.Journal.Type)

	p := cfg.Params()
	assert.InDelta(t, 3.0, p.RewardRisk, 1e-9)
	assert.InDelta(t, 40.0, p.WinRatePct, 1e-9)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenario.json")
	body := `{
  "simulation": {
    "start_balance": 2000,
    "risk_percent": 1,
    "reward_risk": 2,
    "trades": 200,
    "win_rate_pct": 55
  },
  "journal": {"type": "none"}
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, cfg.Simulation.StartBalance, 1e-9)
	assert.Equal(t, 200, cfg.Simulation.Trades)
}

func TestLoadFromFileInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	body := `
simulation:
  start_balance: 1
  risk_percent: 2
  reward_risk: 2
  trades: 100
  win_rate_pct: 50
journal:
  type: none
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Simulation.Seed = 99

	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
