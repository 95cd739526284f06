package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq returns a RandSource that replays draws in order and then
// repeats the last one.
func seq(draws ...float64) RandSource {
	i := 0
	return func() float64 {
		d := draws[i]
		if i < len(draws)-1 {
			i++
		}
		return d
	}
}

func baseParams() Params {
	return Params{
		StartBalance: 100,
		RiskPct:      10,
		RewardRisk:   4,
		Trades:       1,
		WinRatePct:   50,
	}
}

func TestSimulateSingleWin(t *testing.T) {
	t.Parallel()

	traj, err := Simulate(baseParams(), seq(0.0))
	require.NoError(t, err)

	require.Len(t, traj, 2)
	assert.Equal(t, Point{Index: 0, Balance: 100, Outcome: NoTrade}, traj[0])
	assert.Equal(t, 1, traj[1].Index)
	assert.Equal(t, Win, traj[1].Outcome)
	assert.InDelta(t, 140.0, traj[1].Balance, 1e-9) // 100 * (1 + 0.1*4)
}

func TestSimulateSingleLoss(t *testing.T) {
	t.Parallel()

	traj, err := Simulate(baseParams(), seq(0.999))
	require.NoError(t, err)

	require.Len(t, traj, 2)
	assert.Equal(t, Loss, traj[1].Outcome)
	assert.InDelta(t, 90.0, traj[1].Balance, 1e-9) // 100 * (1 - 0.1)
}

func TestSimulateDeterministic(t *testing.T) {
	t.Parallel()

	p := baseParams()
	p.Trades = 50

	a, err := Simulate(p, NewRand(42))
	require.NoError(t, err)
	b, err := Simulate(p, NewRand(42))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSimulateLengthInvariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		trades int
		rng    RandSource
	}{
		{"short all wins", 10, seq(0.0)},
		{"long all losses", 250, seq(0.999)},
		{"seeded mix", 100, NewRand(7)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := baseParams()
			p.Trades = tt.trades

			traj, err := Simulate(p, tt.rng)
			require.NoError(t, err)
			assert.Len(t, traj, tt.trades+1)
		})
	}
}

func TestSimulateRuinAbsorbing(t *testing.T) {
	t.Parallel()

	// 45% risk, all losses: balance decays below the floor well before
	// the run ends.
	p := Params{
		StartBalance: 100,
		RiskPct:      45,
		RewardRisk:   2,
		Trades:       30,
		WinRatePct:   50,
	}

	traj, err := Simulate(p, seq(0.999))
	require.NoError(t, err)
	require.Len(t, traj, 31)

	ruined := false
	for _, pt := range traj {
		if ruined {
			assert.Equal(t, 0.0, pt.Balance, "index %d", pt.Index)
			assert.Equal(t, Loss, pt.Outcome, "index %d", pt.Index)
			continue
		}
		if pt.Balance == 0 {
			ruined = true
		}
	}
	assert.True(t, ruined, "expected the account to hit ruin")
}

func TestSimulateFullRiskRuinsAtFirstTrade(t *testing.T) {
	t.Parallel()

	p := Params{
		StartBalance: 100,
		RiskPct:      100,
		RewardRisk:   2,
		Trades:       10,
		WinRatePct:   50,
	}

	// Draws at/above the win probability lose every trade.
	traj, err := Simulate(p, seq(0.5))
	require.NoError(t, err)
	require.Len(t, traj, 11)

	for i := 1; i <= 10; i++ {
		assert.Equal(t, 0.0, traj[i].Balance, "index %d", i)
		assert.Equal(t, Loss, traj[i].Outcome, "index %d", i)
	}
}

func TestSimulateRuinStopsDrawingRandomness(t *testing.T) {
	t.Parallel()

	draws := 0
	counting := func() float64 {
		draws++
		return 0.999
	}

	p := Params{
		StartBalance: 100,
		RiskPct:      100,
		RewardRisk:   2,
		Trades:       500,
		WinRatePct:   50,
	}

	_, err := Simulate(p, counting)
	require.NoError(t, err)
	assert.Equal(t, 1, draws, "ruin at trade 1 must not consume further draws")
}

func TestSimulateRejectsBadParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero balance", func(p *Params) { p.StartBalance = 0 }},
		{"negative balance", func(p *Params) { p.StartBalance = -5 }},
		{"zero risk", func(p *Params) { p.RiskPct = 0 }},
		{"risk over 100", func(p *Params) { p.RiskPct = 101 }},
		{"negative reward", func(p *Params) { p.RewardRisk = -1 }},
		{"zero trades", func(p *Params) { p.Trades = 0 }},
		{"win rate over 100", func(p *Params) { p.WinRatePct = 120 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := baseParams()
			tt.mutate(&p)

			_, err := Simulate(p, seq(0.5))
			require.Error(t, err)

			var pe *PrecondError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestSimulateRejectsBadDraws(t *testing.T) {
	t.Parallel()

	for _, bad := range []float64{-0.1, 1.0, 1.5} {
		_, err := Simulate(baseParams(), seq(bad))
		require.Error(t, err, "draw %v", bad)

		var pe *PrecondError
		assert.ErrorAs(t, err, &pe)
	}

	_, err := Simulate(baseParams(), nil)
	assert.Error(t, err)
}
