package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/risksim/risk"
	"github.com/rustyeddy/risksim/sim"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Print the expected-outcome table across win rates",
	Long: `Compute the deterministic expected final balance for win rates from
10% to 90%, using the win-rate-weighted per-trade multiplier raised to
the trade count.

Example:
  risksim project --balance 1000 --risk 2 --rr 3 --trades 200`,
	RunE: runProject,
}

var (
	projBalance    float64
	projRiskPct    float64
	projRewardRisk float64
	projTrades     int
)

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.Flags().Float64Var(&projBalance, "balance", 1000, "starting account balance")
	projectCmd.Flags().Float64Var(&projRiskPct, "risk", 2, "percent of balance risked per trade")
	projectCmd.Flags().Float64Var(&projRewardRisk, "rr", 2, "reward as a multiple of risk")
	projectCmd.Flags().IntVar(&projTrades, "trades", 100, "number of trades")
}

func runProject(cmd *cobra.Command, args []string) error {
	params := sim.Params{
		StartBalance: projBalance,
		RiskPct:      projRiskPct,
		RewardRisk:   projRewardRisk,
		Trades:       projTrades,
		// the sweep supplies win rates; keep the assumption in bounds
		WinRatePct: 50,
	}

	if d := risk.Evaluate(params); !d.Allowed {
		for _, v := range d.Violations {
			fmt.Printf("  ✗ %s: %s\n", v.Code, v.Msg)
		}
		return fmt.Errorf("invalid parameters (%d violations)", len(d.Violations))
	}

	table, err := sim.ProjectOutcomes(params)
	if err != nil {
		return fmt.Errorf("project outcomes: %w", err)
	}

	breakEven := sim.BreakEvenWinRate(params.RewardRisk)

	fmt.Printf("Expected balance after %d trades (%s start, %.1f%% risk at %.1f:1)\n",
		params.Trades, sim.FormatUSD(params.StartBalance), params.RiskPct, params.RewardRisk)
	fmt.Printf("Break-even win rate: %.2f%%\n\n", breakEven)

	fmt.Printf("%-7s | %-18s | %-10s\n", "Win %", "Expected Balance", "Profitable")
	fmt.Println(strings.Repeat("-", 42))
	for _, row := range table {
		marker := ""
		if row.AboveBreakEven {
			marker = "yes"
		}
		fmt.Printf("%6d%% | %-18s | %-10s\n", row.WinRatePct, sim.FormatUSD(row.Expected), marker)
	}

	return nil
}
