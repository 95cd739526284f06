package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "risksim",
	Short: "A fixed-fractional trading account simulator",
	Long: `Risksim simulates a trading account's balance under fixed fractional
position sizing with Bernoulli win/loss trades.

It provides tools for:
  - Simulating randomized balance trajectories from a risk profile
  - Projecting expected final balances across a win-rate sweep
  - Computing break-even win rates for a reward/risk ratio
  - Journaling runs to CSV or SQLite and exporting org-mode reports

Complete documentation is available at https://github.com/rustyeddy/risksim`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
