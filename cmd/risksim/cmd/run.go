package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/risksim/config"
	"github.com/rustyeddy/risksim/journal"
	"github.com/rustyeddy/risksim/pkg/id"
	"github.com/rustyeddy/risksim/risk"
	"github.com/rustyeddy/risksim/sim"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a randomized balance trajectory",
	Long: `Run one randomized balance trajectory for a risk profile.

Parameters come from a scenario file, from flags, or both (flags win).
The trajectory and its expected-outcome sweep are journaled according
to the scenario's journal settings.

Examples:
  risksim run --risk 2 --rr 3 --trades 200 --winrate 40
  risksim run -f scenario.yaml --seed 42 -v`,
	RunE: runRun,
}

var (
	runConfigPath string
	runBalance    float64
	runRiskPct    float64
	runRewardRisk float64
	runTrades     int
	runWinRate    float64
	runSeed       int64
	runVerbose    bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to scenario file (YAML or JSON)")
	runCmd.Flags().Float64Var(&runBalance, "balance", 1000, "starting account balance")
	runCmd.Flags().Float64Var(&runRiskPct, "risk", 2, "percent of balance risked per trade")
	runCmd.Flags().Float64Var(&runRewardRisk, "rr", 2, "reward as a multiple of risk")
	runCmd.Flags().IntVar(&runTrades, "trades", 100, "number of trades to simulate")
	runCmd.Flags().Float64Var(&runWinRate, "winrate", 50, "assumed win rate percent")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "RNG seed (0 = time-based)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "print every trade")
}

// loadScenario merges the optional scenario file with flag overrides.
func loadScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		// No file means no journal unless asked for one.
		cfg.Journal = config.JournalConfig{Type: "none"}
	}

	flags := cmd.Flags()
	if flags.Changed("balance") {
		cfg.Simulation.StartBalance = runBalance
	}
	if flags.Changed("risk") {
		cfg.Simulation.RiskPercent = runRiskPct
	}
	if flags.Changed("rr") {
		cfg.Simulation.RewardRisk = runRewardRisk
	}
	if flags.Changed("trades") {
		cfg.Simulation.Trades = runTrades
	}
	if flags.Changed("winrate") {
		cfg.Simulation.WinRatePct = runWinRate
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed = runSeed
	}

	return cfg, nil
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "csv":
		return journal.NewCSV(jc.TrajectoryFile, jc.OutcomesFile)
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	default:
		return nil, nil
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	params := cfg.Params()
	if d := risk.Evaluate(params); !d.Allowed {
		for _, v := range d.Violations {
			fmt.Printf("  ✗ %s: %s\n", v.Code, v.Msg)
		}
		return fmt.Errorf("invalid parameters (%d violations)", len(d.Violations))
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("Simulating %d trades: %s start, %.1f%% risk at %.1f:1, assumed win rate %.1f%%\n",
		params.Trades, sim.FormatUSD(params.StartBalance), params.RiskPct, params.RewardRisk, params.WinRatePct)
	fmt.Printf("  Break-even win rate: %.2f%%\n", sim.BreakEvenWinRate(params.RewardRisk))
	fmt.Printf("  Seed: %d\n\n", seed)

	traj, err := sim.Simulate(params, sim.NewRand(seed))
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	table, err := sim.ProjectOutcomes(params)
	if err != nil {
		return fmt.Errorf("project outcomes: %w", err)
	}

	if runVerbose {
		for _, pt := range traj[1:] {
			fmt.Printf("  #%-4d %-4s %s\n", pt.Index, pt.Outcome, sim.FormatUSD(pt.Balance))
		}
		fmt.Println()
	}

	summary := sim.Summarize(params, traj)
	runID := id.New()

	fmt.Printf("Final Results (run %s):\n", runID)
	fmt.Printf("  Balance: %s\n", sim.FormatUSD(summary.FinalBalance))
	fmt.Printf("  Net P/L: %s (%.2f%%)\n", sim.FormatUSD(summary.NetPL), summary.ReturnPct)
	fmt.Printf("  Wins/Losses: %d/%d\n", summary.Wins, summary.Losses)
	fmt.Printf("  Max Drawdown: %.2f%%\n", summary.MaxDDPct)
	if summary.Ruined {
		fmt.Println("  Account was wiped out before the last trade.")
	}

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	if err := j.RecordRun(journal.NewRunRecord(runID, params, seed, summary)); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	if err := journal.RecordTrajectory(j, runID, traj); err != nil {
		return fmt.Errorf("record trajectory: %w", err)
	}
	if err := journal.RecordTable(j, runID, table); err != nil {
		return fmt.Errorf("record outcomes: %w", err)
	}

	if cfg.Journal.Type == "csv" {
		fmt.Printf("\nResults saved to:\n  - %s\n  - %s\n", cfg.Journal.TrajectoryFile, cfg.Journal.OutcomesFile)
	} else {
		fmt.Printf("\nResults saved to: %s\n", cfg.Journal.DBPath)
	}

	return nil
}
