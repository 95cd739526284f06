package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/risksim/sim"
)

func validParams() sim.Params {
	return sim.Params{
		StartBalance: 1000,
		RiskPct:      2,
		RewardRisk:   2,
		Trades:       100,
		WinRatePct:   50,
	}
}

func TestEvaluateAllowsValidParams(t *testing.T) {
	t.Parallel()

	d := Evaluate(validParams())
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Violations)
}

func TestEvaluateFieldViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*sim.Params)
		code   string
	}{
		{"balance too low", func(p *sim.Params) { p.StartBalance = 5 }, "START_BALANCE_RANGE"},
		{"balance too high", func(p *sim.Params) { p.StartBalance = 20000 }, "START_BALANCE_RANGE"},
		{"risk too low", func(p *sim.Params) { p.RiskPct = 0.1 }, "RISK_PCT_RANGE"},
		{"risk too high", func(p *sim.Params) { p.RiskPct = 50 }, "RISK_PCT_RANGE"},
		{"rr too low", func(p *sim.Params) { p.RewardRisk = 0.25 }, "REWARD_RISK_RANGE"},
		{"rr too high", func(p *sim.Params) { p.RewardRisk = 25 }, "REWARD_RISK_RANGE"},
		{"too few trades", func(p *sim.Params) { p.Trades = 5 }, "TRADES_RANGE"},
		{"too many trades", func(p *sim.Params) { p.Trades = 5000 }, "TRADES_RANGE"},
		{"win rate too low", func(p *sim.Params) { p.WinRatePct = 0 }, "WIN_RATE_RANGE"},
		{"win rate too high", func(p *sim.Params) { p.WinRatePct = 100 }, "WIN_RATE_RANGE"},
		{"non-finite balance", func(p *sim.Params) { p.StartBalance = math.NaN() }, "START_BALANCE_RANGE"},
		{"infinite rr", func(p *sim.Params) { p.RewardRisk = math.Inf(1) }, "REWARD_RISK_RANGE"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := validParams()
			tt.mutate(&p)

			d := Evaluate(p)
			assert.False(t, d.Allowed)

			codes := make([]string, 0, len(d.Violations))
			for _, v := range d.Violations {
				codes = append(codes, v.Code)
			}
			assert.Contains(t, codes, tt.code)
		})
	}
}

func TestEvaluateCollectsAllViolations(t *testing.T) {
	t.Parallel()

	d := Evaluate(sim.Params{})
	assert.False(t, d.Allowed)
	assert.Len(t, d.Violations, 5)
}
