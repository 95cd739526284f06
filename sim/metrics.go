package sim

import (
	"strconv"
	"strings"
)

// Summary aggregates a finished trajectory into the headline numbers
// for a run.
type Summary struct {
	FinalBalance float64
	NetPL        float64
	ReturnPct    float64
	Wins         int
	Losses       int
	MaxDDPct     float64 // worst peak-to-trough drop, percent of peak
	Ruined       bool
}

// Summarize derives the run aggregates from a trajectory produced by
// Simulate with the same Params.
func Summarize(p Params, traj Trajectory) Summary {
	s := Summary{}
	if len(traj) == 0 {
		return s
	}

	peak := traj[0].Balance
	for _, pt := range traj {
		switch pt.Outcome {
		case Win:
			s.Wins++
		case Loss:
			s.Losses++
		}
		if pt.Balance > peak {
			peak = pt.Balance
		}
		if peak > 0 {
			dd := (peak - pt.Balance) / peak * 100
			if dd > s.MaxDDPct {
				s.MaxDDPct = dd
			}
		}
	}

	s.FinalBalance = traj[len(traj)-1].Balance
	s.NetPL = s.FinalBalance - p.StartBalance
	s.ReturnPct = PnLPercent(p.StartBalance, s.FinalBalance)
	s.Ruined = s.FinalBalance == 0
	return s
}

// PnLPercent returns the net profit or loss as a percent of the
// starting balance. Zero start yields 0 rather than a division blowup.
func PnLPercent(start, final float64) float64 {
	if start == 0 {
		return 0
	}
	return (final - start) / start * 100
}

// FormatUSD renders a dollar amount with thousands separators,
// e.g. 1234567.891 -> "$1,234,567.89".
func FormatUSD(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("$")
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(",")
		}
		b.WriteRune(d)
	}
	b.WriteString(".")
	b.WriteString(cents)
	return b.String()
}
