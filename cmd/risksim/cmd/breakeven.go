package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/risksim/sim"
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven <reward-risk>",
	Short: "Print the break-even win rate for a reward/risk ratio",
	Long: `Compute the win percentage at which the expected per-trade multiplier
equals 1 for the given reward/risk ratio.

Example:
  risksim breakeven 3     # -> 25.00%`,
	Args: cobra.ExactArgs(1),
	RunE: runBreakeven,
}

func init() {
	rootCmd.AddCommand(breakevenCmd)
}

func runBreakeven(cmd *cobra.Command, args []string) error {
	rr, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parse reward/risk ratio: %w", err)
	}

	be := sim.BreakEvenWinRate(rr)
	fmt.Printf("Break-even win rate for %.2f:1 reward/risk: %.2f%%\n", rr, be)
	if rr <= 0 {
		fmt.Println("With no reward per win, only a perfect record avoids losing money.")
	}
	return nil
}
