package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, start_balance, risk_pct, reward_risk, trades, win_rate_pct, seed,
		 final_balance, net_pl, return_pct, wins, losses, max_dd_pct, ruined)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.StartBalance, r.RiskPct, r.RewardRisk, r.Trades,
		r.WinRatePct, r.Seed, r.FinalBalance, r.NetPL, r.ReturnPct,
		r.Wins, r.Losses, r.MaxDDPct, r.Ruined,
	)
	return err
}

func (j *SQLite) RecordPoint(p PointRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trajectory
		(run_id, trade_index, balance, outcome)
		VALUES (?, ?, ?, ?)`,
		p.RunID, p.Index, p.Balance, p.Outcome,
	)
	return err
}

func (j *SQLite) RecordOutcome(o OutcomeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO outcomes
		(run_id, win_rate_pct, expected, above_break_even)
		VALUES (?, ?, ?, ?)`,
		o.RunID, o.WinRatePct, o.Expected, o.AboveBreakEven,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
