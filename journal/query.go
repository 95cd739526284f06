package journal

import (
	"database/sql"
	"fmt"
)

// GetRun returns a single run summary by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, created, start_balance, risk_pct, reward_risk, trades, win_rate_pct, seed,
		       final_balance, net_pl, return_pct, wins, losses, max_dd_pct, ruined
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Created,
		&rec.StartBalance,
		&rec.RiskPct,
		&rec.RewardRisk,
		&rec.Trades,
		&rec.WinRatePct,
		&rec.Seed,
		&rec.FinalBalance,
		&rec.NetPL,
		&rec.ReturnPct,
		&rec.Wins,
		&rec.Losses,
		&rec.MaxDDPct,
		&rec.Ruined,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRuns returns the most recent run summaries, newest first.
func (j *SQLite) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, created, start_balance, risk_pct, reward_risk, trades, win_rate_pct, seed,
		       final_balance, net_pl, return_pct, wins, losses, max_dd_pct, ruined
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Created,
			&rec.StartBalance,
			&rec.RiskPct,
			&rec.RewardRisk,
			&rec.Trades,
			&rec.WinRatePct,
			&rec.Seed,
			&rec.FinalBalance,
			&rec.NetPL,
			&rec.ReturnPct,
			&rec.Wins,
			&rec.Losses,
			&rec.MaxDDPct,
			&rec.Ruined,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPoints returns the full trajectory of a run ordered by trade index.
func (j *SQLite) ListPoints(runID string) ([]PointRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, trade_index, balance, outcome
		FROM trajectory
		WHERE run_id = ?
		ORDER BY trade_index ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PointRecord
	for rows.Next() {
		var rec PointRecord
		if err := rows.Scan(&rec.RunID, &rec.Index, &rec.Balance, &rec.Outcome); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListOutcomes returns the expected-value sweep of a run ordered by win rate.
func (j *SQLite) ListOutcomes(runID string) ([]OutcomeRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, win_rate_pct, expected, above_break_even
		FROM outcomes
		WHERE run_id = ?
		ORDER BY win_rate_pct ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OutcomeRecord
	for rows.Next() {
		var rec OutcomeRecord
		if err := rows.Scan(&rec.RunID, &rec.WinRatePct, &rec.Expected, &rec.AboveBreakEven); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
