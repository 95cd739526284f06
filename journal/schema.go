// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	start_balance REAL NOT NULL,
	risk_pct REAL NOT NULL,
	reward_risk REAL NOT NULL,
	trades INTEGER NOT NULL,
	win_rate_pct REAL NOT NULL,
	seed INTEGER NOT NULL,
	final_balance REAL NOT NULL,
	net_pl REAL NOT NULL,
	return_pct REAL NOT NULL,
	wins INTEGER NOT NULL,
	losses INTEGER NOT NULL,
	max_dd_pct REAL NOT NULL,
	ruined INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trajectory (
	run_id TEXT NOT NULL,
	trade_index INTEGER NOT NULL,
	balance REAL NOT NULL,
	outcome TEXT NOT NULL,
	PRIMARY KEY (run_id, trade_index)
);

CREATE TABLE IF NOT EXISTS outcomes (
	run_id TEXT NOT NULL,
	win_rate_pct INTEGER NOT NULL,
	expected REAL NOT NULL,
	above_break_even INTEGER NOT NULL,
	PRIMARY KEY (run_id, win_rate_pct)
);

CREATE INDEX IF NOT EXISTS idx_trajectory_run ON trajectory(run_id);
`
