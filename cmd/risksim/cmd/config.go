package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/risksim/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate scenario files",
	Long: `Manage scenario files for simulations.

Subcommands:
  init     - Generate a default scenario file
  validate - Validate an existing scenario file

Examples:
  risksim config init -o scenario.yaml
  risksim config validate -f scenario.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default scenario file",
	Long: `Create a new scenario file with default settings.

Example:
  risksim config init -o scenario.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario file",
	Long: `Check if a scenario file is valid and can be loaded.

Example:
  risksim config validate -f scenario.yaml`,
	RunE: runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "scenario.yaml", "output scenario file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to scenario file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ Created default scenario: %s\n", configInitOutput)
	fmt.Println("\nEdit the file and run with:")
	fmt.Printf("  risksim run -f %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Scenario valid: %s\n", configValidatePath)
	fmt.Printf("  Balance: $%.2f, Risk: %.1f%%, R:R %.1f, Trades: %d\n",
		cfg.Simulation.StartBalance, cfg.Simulation.RiskPercent,
		cfg.Simulation.RewardRisk, cfg.Simulation.Trades)
	fmt.Printf("  Journal: %s\n", cfg.Journal.Type)
	return nil
}
