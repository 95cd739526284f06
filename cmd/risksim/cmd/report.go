package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/risksim/journal"
	"github.com/rustyeddy/risksim/sim"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export an org-mode report for a journaled run",
	Long: `Load a run from a SQLite journal and render it as an org-mode research
note. Without --run, the most recent run is used.

Examples:
  risksim report --db runs.db
  risksim report --db runs.db --run 01JF... -o run.org`,
	RunE: runReport,
}

var (
	reportDBPath string
	reportRunID  string
	reportOutput string
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportDBPath, "db", "", "path to SQLite journal (required)")
	reportCmd.Flags().StringVar(&reportRunID, "run", "", "run ID (default: most recent)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "write the report to a file instead of stdout")
	reportCmd.MarkFlagRequired("db")
}

func runReport(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(reportDBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	runID := reportRunID
	if runID == "" {
		runs, err := j.ListRuns(1)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(runs) == 0 {
			return fmt.Errorf("journal %s has no runs", reportDBPath)
		}
		runID = runs[0].RunID
	}

	run, err := j.GetRun(runID)
	if err != nil {
		return fmt.Errorf("load run: %w", err)
	}
	outcomes, err := j.ListOutcomes(runID)
	if err != nil {
		return fmt.Errorf("load outcomes: %w", err)
	}

	rep := &journal.Report{
		Run:       run,
		Outcomes:  outcomes,
		BreakEven: sim.BreakEvenWinRate(run.RewardRisk),
	}

	if reportOutput != "" {
		if err := rep.WriteOrg(reportOutput); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("✓ Report written to %s\n", reportOutput)
		return nil
	}

	out, err := rep.Org()
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	fmt.Print(out)
	return nil
}
