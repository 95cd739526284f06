package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the risksim CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("risksim version %s\n", version)
		fmt.Println("A fixed-fractional trading account simulator")
		fmt.Println("https://github.com/rustyeddy/risksim")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
