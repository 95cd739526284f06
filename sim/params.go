package sim

import (
	"fmt"
	"math"
)

// Params is one complete set of simulation inputs. Values are copied
// in; nothing in this package retains or mutates them.
type Params struct {
	StartBalance float64 // account balance before the first trade, > 0
	RiskPct      float64 // percent of current balance risked per trade, (0,100]
	RewardRisk   float64 // reward as a multiple of risked capital, >= 0
	Trades       int     // number of trades to simulate, > 0
	WinRatePct   float64 // assumed win rate percent, [0,100]; used only by Simulate
}

// PrecondError reports a Params field (or an injected random draw)
// outside its declared domain. The engine fails fast instead of
// clamping or letting NaN propagate into results.
type PrecondError struct {
	Field  string
	Reason string
}

func (e *PrecondError) Error() string {
	return fmt.Sprintf("precondition violated: %s: %s", e.Field, e.Reason)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Check validates the engine preconditions. The tighter field bounds
// for interactive input live in the risk package; this is the last
// line of defense, not the primary validation.
func (p Params) Check() error {
	if !finite(p.StartBalance) || p.StartBalance <= 0 {
		return &PrecondError{"start_balance", "must be finite and positive"}
	}
	if !finite(p.RiskPct) || p.RiskPct <= 0 || p.RiskPct > 100 {
		return &PrecondError{"risk_pct", "must be in (0,100]"}
	}
	if !finite(p.RewardRisk) || p.RewardRisk < 0 {
		return &PrecondError{"reward_risk", "must be finite and non-negative"}
	}
	if p.Trades <= 0 {
		return &PrecondError{"trades", "must be a positive integer"}
	}
	if !finite(p.WinRatePct) || p.WinRatePct < 0 || p.WinRatePct > 100 {
		return &PrecondError{"win_rate_pct", "must be in [0,100]"}
	}
	return nil
}

// WinMultiplier is the factor applied to the balance on a winning
// trade: risking RiskPct% to make RewardRisk times the risk.
func WinMultiplier(p Params) float64 {
	return 1 + p.RiskPct/100*p.RewardRisk
}

// LossMultiplier is the factor applied on a losing trade. It stays in
// [0,1) for any valid RiskPct, so a single loss can never take the
// balance negative.
func LossMultiplier(p Params) float64 {
	return 1 - p.RiskPct/100
}
