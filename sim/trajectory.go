package sim

import (
	"fmt"
	"math"
)

// Outcome of a single simulated trade. Index 0 of a trajectory carries
// NoTrade: it is the starting balance before anything happened.
type Outcome int

const (
	NoTrade Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return ""
	}
}

// Point is one balance snapshot along a simulated path.
type Point struct {
	Index   int
	Balance float64
	Outcome Outcome
}

// Trajectory is the full path of one simulation run, ordered by Index
// ascending, always exactly Params.Trades+1 points long.
type Trajectory []Point

// RuinFloor is the balance at or below which the account is treated as
// wiped out. Compounding fractional losses never reaches exactly zero
// in floating point, so the floor makes ruin an explicit state.
const RuinFloor = 0.01

// Simulate runs a single stochastic trade sequence. Each trade draws
// from rng; a draw below WinRatePct/100 is a win. Wins multiply the
// balance by WinMultiplier, losses by LossMultiplier. Once the balance
// falls to RuinFloor or below it is set to exactly 0 and ruin becomes
// absorbing: no further draws are consumed and the remaining points
// are padded out as zero-balance losses, so the result is always
// Trades+1 points regardless of when the account died.
func Simulate(p Params, rng RandSource) (Trajectory, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, &PrecondError{"rand_source", "random source is required"}
	}

	winMult := WinMultiplier(p)
	lossMult := LossMultiplier(p)
	winProb := p.WinRatePct / 100

	traj := make(Trajectory, 0, p.Trades+1)
	traj = append(traj, Point{Index: 0, Balance: p.StartBalance, Outcome: NoTrade})

	balance := p.StartBalance
	for i := 1; i <= p.Trades; i++ {
		r := rng()
		if math.IsNaN(r) || r < 0 || r >= 1 {
			return nil, &PrecondError{"rand_source", fmt.Sprintf("draw %v outside [0,1)", r)}
		}

		out := Loss
		if r < winProb {
			out = Win
			balance *= winMult
		} else {
			balance *= lossMult
		}

		if balance <= RuinFloor {
			traj = append(traj, Point{Index: i, Balance: 0, Outcome: out})
			for j := i + 1; j <= p.Trades; j++ {
				traj = append(traj, Point{Index: j, Balance: 0, Outcome: Loss})
			}
			return traj, nil
		}

		traj = append(traj, Point{Index: i, Balance: balance, Outcome: out})
	}

	return traj, nil
}
