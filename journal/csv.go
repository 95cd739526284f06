// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVJournal writes the trajectory and the outcome sweep to two flat
// files, one row per record. Run summaries are not written here; the
// CLI prints them and the SQLite journal is the place to keep them.
type CSVJournal struct {
	points   *csv.Writer
	outcomes *csv.Writer
	pf, of   *os.File
}

func NewCSV(trajectoryPath, outcomesPath string) (*CSVJournal, error) {
	pf, err := os.Create(trajectoryPath)
	if err != nil {
		return nil, err
	}
	of, err := os.Create(outcomesPath)
	if err != nil {
		return nil, err
	}

	pw := csv.NewWriter(pf)
	ow := csv.NewWriter(of)

	if err := pw.Write([]string{"run_id", "trade_index", "balance", "outcome"}); err != nil {
		return nil, err
	}
	if err := ow.Write([]string{"run_id", "win_rate_pct", "expected", "above_break_even"}); err != nil {
		return nil, err
	}

	pw.Flush()
	if err := pw.Error(); err != nil {
		return nil, err
	}
	ow.Flush()
	if err := ow.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{pw, ow, pf, of}, nil
}

func (j *CSVJournal) RecordRun(RunRecord) error {
	return nil
}

func (j *CSVJournal) RecordPoint(p PointRecord) error {
	err := j.points.Write([]string{
		p.RunID,
		strconv.Itoa(p.Index),
		f(p.Balance),
		p.Outcome,
	})
	if err != nil {
		return err
	}

	j.points.Flush()
	return j.points.Error()
}

func (j *CSVJournal) RecordOutcome(o OutcomeRecord) error {
	err := j.outcomes.Write([]string{
		o.RunID,
		strconv.Itoa(o.WinRatePct),
		f(o.Expected),
		strconv.FormatBool(o.AboveBreakEven),
	})
	if err != nil {
		return err
	}

	j.outcomes.Flush()
	return j.outcomes.Error()
}

func (j *CSVJournal) Close() error {
	j.points.Flush()
	if err := j.points.Error(); err != nil {
		return err
	}
	j.outcomes.Flush()
	if err := j.outcomes.Error(); err != nil {
		return err
	}

	if err := j.pf.Close(); err != nil {
		return err
	}
	if err := j.of.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
