// journal/journal.go
package journal

import (
	"time"

	"github.com/rustyeddy/risksim/sim"
)

// RunRecord summarizes one completed simulation run: the inputs it was
// launched with and the aggregates derived from its trajectory.
type RunRecord struct {
	RunID   string
	Created time.Time

	StartBalance float64
	RiskPct      float64
	RewardRisk   float64
	Trades       int
	WinRatePct   float64
	Seed         int64

	FinalBalance float64
	NetPL        float64
	ReturnPct    float64
	Wins         int
	Losses       int
	MaxDDPct     float64
	Ruined       bool
}

// PointRecord is one trajectory row keyed by run.
type PointRecord struct {
	RunID   string
	Index   int
	Balance float64
	Outcome string // "", "win" or "loss"
}

// OutcomeRecord is one expected-value sweep row keyed by run.
type OutcomeRecord struct {
	RunID          string
	WinRatePct     int
	Expected       float64
	AboveBreakEven bool
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordPoint(PointRecord) error
	RecordOutcome(OutcomeRecord) error
	Close() error
}

// NewRunRecord builds the run summary for a finished trajectory.
func NewRunRecord(runID string, p sim.Params, seed int64, s sim.Summary) RunRecord {
	return RunRecord{
		RunID:   runID,
		Created: time.Now().UTC(),

		StartBalance: p.StartBalance,
		RiskPct:      p.RiskPct,
		RewardRisk:   p.RewardRisk,
		Trades:       p.Trades,
		WinRatePct:   p.WinRatePct,
		Seed:         seed,

		FinalBalance: s.FinalBalance,
		NetPL:        s.NetPL,
		ReturnPct:    s.ReturnPct,
		Wins:         s.Wins,
		Losses:       s.Losses,
		MaxDDPct:     s.MaxDDPct,
		Ruined:       s.Ruined,
	}
}

// RecordTrajectory writes every point of a trajectory to j.
func RecordTrajectory(j Journal, runID string, traj sim.Trajectory) error {
	for _, pt := range traj {
		rec := PointRecord{
			RunID:   runID,
			Index:   pt.Index,
			Balance: pt.Balance,
			Outcome: pt.Outcome.String(),
		}
		if err := j.RecordPoint(rec); err != nil {
			return err
		}
	}
	return nil
}

// RecordTable writes every row of an outcome table to j.
func RecordTable(j Journal, runID string, table sim.Table) error {
	for _, row := range table {
		rec := OutcomeRecord{
			RunID:          runID,
			WinRatePct:     row.WinRatePct,
			Expected:       row.Expected,
			AboveBreakEven: row.AboveBreakEven,
		}
		if err := j.RecordOutcome(rec); err != nil {
			return err
		}
	}
	return nil
}
