package risk

import (
	"fmt"
	"math"

	"github.com/rustyeddy/risksim/sim"
)

// Limit is an inclusive [Min,Max] range for one input field.
type Limit struct {
	Min float64
	Max float64
}

func (l Limit) contains(v float64) bool {
	return v >= l.Min && v <= l.Max
}

// Bounds are the interactive-surface limits on simulation inputs. The
// sim package only enforces its looser mathematical preconditions;
// these keep user input in a range where the output stays meaningful.
var Bounds = struct {
	StartBalance Limit
	RiskPct      Limit
	RewardRisk   Limit
	Trades       Limit
	WinRatePct   Limit
}{
	StartBalance: Limit{10, 10000},
	RiskPct:      Limit{0.5, 45},
	RewardRisk:   Limit{0.5, 20},
	Trades:       Limit{10, 1000},
	WinRatePct:   Limit{1, 99},
}

type Violation struct {
	Code string
	Msg  string
}

type Decision struct {
	Allowed    bool
	Violations []Violation
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate checks a full parameter set against Bounds and returns a
// field-level decision. Callers should refuse to simulate until
// Allowed is true.
func Evaluate(p sim.Params) Decision {
	d := Decision{Allowed: true}

	checkRange(&d, "START_BALANCE_RANGE", "start balance", p.StartBalance, Bounds.StartBalance)
	checkRange(&d, "RISK_PCT_RANGE", "risk per trade %", p.RiskPct, Bounds.RiskPct)
	checkRange(&d, "REWARD_RISK_RANGE", "reward/risk ratio", p.RewardRisk, Bounds.RewardRisk)
	checkRange(&d, "TRADES_RANGE", "trade count", float64(p.Trades), Bounds.Trades)
	checkRange(&d, "WIN_RATE_RANGE", "win rate %", p.WinRatePct, Bounds.WinRatePct)

	return d
}

func checkRange(d *Decision, code, label string, v float64, l Limit) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		d.add(code, fmt.Sprintf("%s must be a finite number", label))
		return
	}
	if !l.contains(v) {
		d.add(code, fmt.Sprintf("%s %g outside [%g, %g]", label, v, l.Min, l.Max))
	}
}
