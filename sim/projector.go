package sim

import "math"

// WinRateSweep is the fixed set of win rates (percent) the outcome
// table is computed over.
var WinRateSweep = []int{10, 20, 30, 40, 50, 60, 70, 80, 90}

// Row is one line of the expected-outcome table.
type Row struct {
	WinRatePct     int
	Expected       float64
	AboveBreakEven bool
}

// Table holds one Row per WinRateSweep entry, ascending.
type Table []Row

// BreakEvenWinRate returns the win percentage at which the expected
// per-trade multiplier equals 1: winRate*rr = 1-winRate. A zero or
// negative reward multiple degenerates to 100 — with nothing to win,
// only a perfect record avoids losing money.
func BreakEvenWinRate(rewardRisk float64) float64 {
	if rewardRisk <= 0 {
		return 100
	}
	return 100 / (rewardRisk + 1)
}

// ProjectOutcomes computes, for each sweep win rate, the balance
// expected after Trades trades: the win-rate-weighted average of the
// two per-trade multipliers, raised to the Trades power. Multipliers
// are i.i.d. across trades, so the product's expectation factors and
// the formula is the exact expected final balance, not an
// approximation. p.WinRatePct is ignored here; the sweep supplies the
// win rates.
func ProjectOutcomes(p Params) (Table, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}

	winMult := WinMultiplier(p)
	lossMult := LossMultiplier(p)
	breakEven := BreakEvenWinRate(p.RewardRisk)

	table := make(Table, 0, len(WinRateSweep))
	for _, wr := range WinRateSweep {
		prob := float64(wr) / 100
		avg := prob*winMult + (1-prob)*lossMult

		table = append(table, Row{
			WinRatePct:     wr,
			Expected:       p.StartBalance * math.Pow(avg, float64(p.Trades)),
			AboveBreakEven: float64(wr) >= breakEven,
		})
	}
	return table, nil
}
